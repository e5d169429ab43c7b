package catalog

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AveragePriceByGenrePipeline groups by genre with the mean price and member
// count, highest mean first. $avg skips documents without a price.
func AveragePriceByGenrePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genre"},
			{Key: "averagePrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "averagePrice", Value: -1}}}},
	}
}

func TopAuthorPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$author"},
			{Key: "bookCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "bookCount", Value: -1}}}},
		{{Key: "$limit", Value: 1}},
	}
}

// BooksByDecadePipeline groups on floor(published_year/10), then projects a
// "<decade>s" label. The final sort is on that string label.
func BooksByDecadePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$floor", Value: bson.D{
				{Key: "$divide", Value: bson.A{"$published_year", 10}},
			}}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "decade", Value: bson.D{{Key: "$concat", Value: bson.A{
				bson.D{{Key: "$toString", Value: bson.D{
					{Key: "$multiply", Value: bson.A{"$_id", 10}},
				}}},
				"s",
			}}}},
			{Key: "count", Value: 1},
			{Key: "_id", Value: 0},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "decade", Value: 1}}}},
	}
}

func TitleIndex() mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{{Key: "title", Value: 1}}}
}

func AuthorYearIndex() mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{
		{Key: "author", Value: 1},
		{Key: "published_year", Value: -1},
	}}
}
