package catalog

import (
	"context"
	"fmt"
)

// Params carries the literals each canned query is run with.
type Params struct {
	Genre           string
	AfterYear       int
	Author          string
	PriceTitle      string
	NewPrice        float64
	DeleteTitle     string
	RecentAfterYear int
	PageSize        int
	Genres          []string
	ExcludedAuthor  string
	TitlePrefix     string
	ExplainTitle    string
}

func DefaultParams() Params {
	return Params{
		Genre:           "Fiction",
		AfterYear:       1950,
		Author:          "George Orwell",
		PriceTitle:      "1984",
		NewPrice:        13.99,
		DeleteTitle:     "Moby Dick",
		RecentAfterYear: 2010,
		PageSize:        5,
		Genres:          []string{"Fiction", "Dystopian"},
		ExcludedAuthor:  "George Orwell",
		TitlePrefix:     "The",
		ExplainTitle:    "1984",
	}
}

// Step is one labelled catalog operation.
type Step struct {
	Name string
	Run  func(ctx context.Context) (any, error)
}

// Steps lists the catalog in its fixed execution order. The update runs
// before the delete so both act on the state the earlier reads observed.
func Steps(c *Catalog, p Params) []Step {
	return []Step{
		{fmt.Sprintf("Books in %s genre", p.Genre), func(ctx context.Context) (any, error) {
			return c.ByGenre(ctx, p.Genre)
		}},
		{fmt.Sprintf("Books published after %d", p.AfterYear), func(ctx context.Context) (any, error) {
			return c.PublishedAfter(ctx, p.AfterYear)
		}},
		{fmt.Sprintf("Books by %s", p.Author), func(ctx context.Context) (any, error) {
			return c.ByAuthor(ctx, p.Author)
		}},
		{fmt.Sprintf("Updated price of %q", p.PriceTitle), func(ctx context.Context) (any, error) {
			return c.SetPrice(ctx, p.PriceTitle, p.NewPrice)
		}},
		{fmt.Sprintf("Deleted %q", p.DeleteTitle), func(ctx context.Context) (any, error) {
			return c.DeleteByTitle(ctx, p.DeleteTitle)
		}},
		{fmt.Sprintf("Books in stock and published after %d", p.RecentAfterYear), func(ctx context.Context) (any, error) {
			return c.InStockPublishedAfter(ctx, p.RecentAfterYear)
		}},
		{fmt.Sprintf("%s books with projection", p.Genre), func(ctx context.Context) (any, error) {
			return c.SummariesByGenre(ctx, p.Genre)
		}},
		{"Books sorted by price (ascending)", func(ctx context.Context) (any, error) {
			return c.SortedByPrice(ctx, true)
		}},
		{"Books sorted by price (descending)", func(ctx context.Context) (any, error) {
			return c.SortedByPrice(ctx, false)
		}},
		{fmt.Sprintf("Page 1 books (%d per page)", p.PageSize), func(ctx context.Context) (any, error) {
			return c.Page(ctx, 1, p.PageSize)
		}},
		{fmt.Sprintf("Page 2 books (%d per page)", p.PageSize), func(ctx context.Context) (any, error) {
			return c.Page(ctx, 2, p.PageSize)
		}},
		{"Average price by genre", func(ctx context.Context) (any, error) {
			return c.AveragePriceByGenre(ctx)
		}},
		{"Author with the most books", func(ctx context.Context) (any, error) {
			return c.TopAuthor(ctx)
		}},
		{"Books grouped by publication decade", func(ctx context.Context) (any, error) {
			return c.BooksByDecade(ctx)
		}},
		{"Created index on title", func(ctx context.Context) (any, error) {
			return c.EnsureTitleIndex(ctx)
		}},
		{"Created compound index on author and published_year", func(ctx context.Context) (any, error) {
			return c.EnsureAuthorYearIndex(ctx)
		}},
		{fmt.Sprintf("Explain plan for query on title %q", p.ExplainTitle), func(ctx context.Context) (any, error) {
			return c.ExplainTitleLookup(ctx, p.ExplainTitle)
		}},
		{fmt.Sprintf("Books in genres %v", p.Genres), func(ctx context.Context) (any, error) {
			return c.GenreIn(ctx, p.Genres)
		}},
		{fmt.Sprintf("Books not by %s", p.ExcludedAuthor), func(ctx context.Context) (any, error) {
			return c.AuthorNot(ctx, p.ExcludedAuthor)
		}},
		{"Books without a price", func(ctx context.Context) (any, error) {
			return c.MissingPrice(ctx)
		}},
		{fmt.Sprintf("Books with titles starting with %q", p.TitlePrefix), func(ctx context.Context) (any, error) {
			return c.TitlePrefix(ctx, p.TitlePrefix)
		}},
	}
}
