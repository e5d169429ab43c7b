package catalog

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"plp-bookstore/internal/models"
)

const DefaultTimeout = 10 * time.Second

// Catalog runs the book queries against a single collection.
type Catalog struct {
	Books   *mongo.Collection
	Timeout time.Duration
}

func New(books *mongo.Collection, timeout time.Duration) *Catalog {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Catalog{Books: books, Timeout: timeout}
}

func (c *Catalog) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (c *Catalog) findBooks(ctx context.Context, filter any, opts ...*options.FindOptions) ([]models.Book, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	cursor, err := c.Books.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer cursor.Close(ctx)

	books := []models.Book{}
	if err = cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}
	return books, nil
}

func aggregate[T any](ctx context.Context, c *Catalog, pipeline mongo.Pipeline) ([]T, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	cursor, err := c.Books.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err = cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode aggregate: %w", err)
	}
	return out, nil
}

func (c *Catalog) ByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	return c.findBooks(ctx, GenreFilter(genre))
}

func (c *Catalog) PublishedAfter(ctx context.Context, year int) ([]models.Book, error) {
	return c.findBooks(ctx, PublishedAfterFilter(year))
}

func (c *Catalog) ByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	return c.findBooks(ctx, AuthorFilter(author))
}

// SetPrice sets the price of the first book titled title. No match, including
// an empty title, is not an error; both counts come back as zero.
func (c *Catalog) SetPrice(ctx context.Context, title string, price float64) (models.UpdateCount, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	result, err := c.Books.UpdateOne(ctx, TitleFilter(title), SetPriceUpdate(price))
	if err != nil {
		return models.UpdateCount{}, fmt.Errorf("update %q: %w", title, err)
	}
	return models.UpdateCount{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

func (c *Catalog) DeleteByTitle(ctx context.Context, title string) (models.DeleteCount, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	result, err := c.Books.DeleteOne(ctx, TitleFilter(title))
	if err != nil {
		return models.DeleteCount{}, fmt.Errorf("delete %q: %w", title, err)
	}
	return models.DeleteCount{Deleted: result.DeletedCount}, nil
}

func (c *Catalog) InStockPublishedAfter(ctx context.Context, year int) ([]models.Book, error) {
	return c.findBooks(ctx, InStockPublishedAfterFilter(year))
}

func (c *Catalog) SummariesByGenre(ctx context.Context, genre string) ([]models.BookSummary, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	cursor, err := c.Books.Find(ctx, GenreFilter(genre), options.Find().SetProjection(SummaryProjection()))
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := []models.BookSummary{}
	if err = cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("decode summaries: %w", err)
	}
	return summaries, nil
}

func (c *Catalog) SortedByPrice(ctx context.Context, ascending bool) ([]models.Book, error) {
	return c.findBooks(ctx, bson.D{}, options.Find().SetSort(PriceSort(ascending)))
}

// Page returns the 1-based page of books in natural order.
func (c *Catalog) Page(ctx context.Context, page, size int) ([]models.Book, error) {
	if page < 1 || size < 1 {
		return nil, ErrInvalidPage
	}
	opts := options.Find().
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size))
	return c.findBooks(ctx, bson.D{}, opts)
}

func (c *Catalog) AveragePriceByGenre(ctx context.Context) ([]models.GenrePrice, error) {
	return aggregate[models.GenrePrice](ctx, c, AveragePriceByGenrePipeline())
}

// TopAuthor returns the author with the most books, or nil for an empty
// collection. Which author wins a tie is up to the server.
func (c *Catalog) TopAuthor(ctx context.Context) (*models.AuthorCount, error) {
	top, err := aggregate[models.AuthorCount](ctx, c, TopAuthorPipeline())
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return nil, nil
	}
	return &top[0], nil
}

func (c *Catalog) BooksByDecade(ctx context.Context) ([]models.DecadeCount, error) {
	return aggregate[models.DecadeCount](ctx, c, BooksByDecadePipeline())
}

func (c *Catalog) createIndex(ctx context.Context, model mongo.IndexModel) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	name, err := c.Books.Indexes().CreateOne(ctx, model)
	if err != nil {
		return "", fmt.Errorf("create index: %w", err)
	}
	return name, nil
}

// EnsureTitleIndex creates the ascending title index if it does not exist
// and returns its name.
func (c *Catalog) EnsureTitleIndex(ctx context.Context) (string, error) {
	return c.createIndex(ctx, TitleIndex())
}

func (c *Catalog) EnsureAuthorYearIndex(ctx context.Context) (string, error) {
	return c.createIndex(ctx, AuthorYearIndex())
}

// ExplainTitleLookup runs explain with executionStats verbosity for a title
// lookup. The executionStats section is returned when the server includes
// it, otherwise the whole plan document.
func (c *Catalog) ExplainTitleLookup(ctx context.Context, title string) (bson.D, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	cmd := bson.D{
		{Key: "explain", Value: bson.D{
			{Key: "find", Value: c.Books.Name()},
			{Key: "filter", Value: TitleFilter(title)},
		}},
		{Key: "verbosity", Value: "executionStats"},
	}

	var plan bson.D
	if err := c.Books.Database().RunCommand(ctx, cmd).Decode(&plan); err != nil {
		return nil, fmt.Errorf("explain %q: %w", title, err)
	}

	for _, elem := range plan {
		if elem.Key != "executionStats" {
			continue
		}
		if stats, ok := elem.Value.(bson.D); ok {
			return stats, nil
		}
	}
	return plan, nil
}

func (c *Catalog) GenreIn(ctx context.Context, genres []string) ([]models.Book, error) {
	return c.findBooks(ctx, GenreInFilter(genres))
}

func (c *Catalog) AuthorNot(ctx context.Context, author string) ([]models.Book, error) {
	return c.findBooks(ctx, AuthorNotFilter(author))
}

func (c *Catalog) MissingPrice(ctx context.Context) ([]models.Book, error) {
	return c.findBooks(ctx, MissingPriceFilter())
}

func (c *Catalog) TitlePrefix(ctx context.Context, prefix string) ([]models.Book, error) {
	return c.findBooks(ctx, TitlePrefixFilter(prefix))
}
