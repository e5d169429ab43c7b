package models

import (
	"fmt"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Book struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Author        string             `json:"author" bson:"author"`
	Genre         string             `json:"genre" bson:"genre"`
	PublishedYear int                `json:"published_year" bson:"published_year"`
	Price         *float64           `json:"price,omitempty" bson:"price,omitempty"` // absent on some documents
	InStock       bool               `json:"in_stock" bson:"in_stock"`
}

// BookSummary is the projected shape returned by the title/author/price query.
type BookSummary struct {
	Title  string   `json:"title" bson:"title"`
	Author string   `json:"author" bson:"author"`
	Price  *float64 `json:"price,omitempty" bson:"price,omitempty"`
}

type GenrePrice struct {
	Genre        string   `json:"genre" bson:"_id"`
	AveragePrice *float64 `json:"averagePrice" bson:"averagePrice"` // null when no member has a price
	Count        int64    `json:"count" bson:"count"`
}

type AuthorCount struct {
	Author    string `json:"author" bson:"_id"`
	BookCount int64  `json:"bookCount" bson:"bookCount"`
}

type DecadeCount struct {
	Decade string `json:"decade" bson:"decade"`
	Count  int64  `json:"count" bson:"count"`
}

type UpdateCount struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}

func (u UpdateCount) String() string {
	return fmt.Sprintf("matched %d, modified %d", u.Matched, u.Modified)
}

type DeleteCount struct {
	Deleted int64 `json:"deleted"`
}

func (d DeleteCount) String() string {
	return fmt.Sprintf("deleted count %d", d.Deleted)
}

// Decade returns floor(year/10)*10, the same key the decade pipeline groups on.
func Decade(year int) int {
	return int(math.Floor(float64(year)/10)) * 10
}

func DecadeLabel(year int) string {
	return strconv.Itoa(Decade(year)) + "s"
}
