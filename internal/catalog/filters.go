package catalog

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GenreFilter(genre string) bson.D {
	return bson.D{{Key: "genre", Value: genre}}
}

func PublishedAfterFilter(year int) bson.D {
	return bson.D{{Key: "published_year", Value: bson.D{{Key: "$gt", Value: year}}}}
}

func AuthorFilter(author string) bson.D {
	return bson.D{{Key: "author", Value: author}}
}

func TitleFilter(title string) bson.D {
	return bson.D{{Key: "title", Value: title}}
}

func InStockPublishedAfterFilter(year int) bson.D {
	return bson.D{
		{Key: "in_stock", Value: true},
		{Key: "published_year", Value: bson.D{{Key: "$gt", Value: year}}},
	}
}

func GenreInFilter(genres []string) bson.D {
	if genres == nil {
		genres = []string{}
	}
	return bson.D{{Key: "genre", Value: bson.D{{Key: "$in", Value: genres}}}}
}

func AuthorNotFilter(author string) bson.D {
	return bson.D{{Key: "author", Value: bson.D{{Key: "$ne", Value: author}}}}
}

func MissingPriceFilter() bson.D {
	return bson.D{{Key: "price", Value: bson.D{{Key: "$exists", Value: false}}}}
}

// TitlePrefixFilter matches titles starting with prefix, ignoring case.
// The prefix is matched literally.
func TitlePrefixFilter(prefix string) bson.D {
	return bson.D{{Key: "title", Value: primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(prefix),
		Options: "i",
	}}}
}

func SetPriceUpdate(price float64) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{{Key: "price", Value: price}}}}
}

// SummaryProjection keeps title, author and price and drops _id.
func SummaryProjection() bson.D {
	return bson.D{
		{Key: "title", Value: 1},
		{Key: "author", Value: 1},
		{Key: "price", Value: 1},
		{Key: "_id", Value: 0},
	}
}

func PriceSort(ascending bool) bson.D {
	dir := -1
	if ascending {
		dir = 1
	}
	return bson.D{{Key: "price", Value: dir}}
}
