package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"plp-bookstore/internal/catalog"
	"plp-bookstore/internal/utils"
)

const defaultPageSize = 5

// BookHandler exposes the read-only catalog queries over HTTP.
type BookHandler struct {
	Catalog *catalog.Catalog
}

func NewBookHandler(c *catalog.Catalog) *BookHandler {
	return &BookHandler{Catalog: c}
}

// Register mounts every route on r.
func (h *BookHandler) Register(r *mux.Router) {
	r.HandleFunc("/books", h.GetBooks).Methods("GET")
	r.HandleFunc("/books/sorted", h.SortedByPrice).Methods("GET")
	r.HandleFunc("/books/unpriced", h.MissingPrice).Methods("GET")
	r.HandleFunc("/books/genre/{genre}", h.ByGenre).Methods("GET")
	r.HandleFunc("/books/genre/{genre}/summary", h.SummariesByGenre).Methods("GET")
	r.HandleFunc("/books/author/{author}", h.ByAuthor).Methods("GET")
	r.HandleFunc("/books/published-after/{year}", h.PublishedAfter).Methods("GET")
	r.HandleFunc("/stats/genres", h.AveragePriceByGenre).Methods("GET")
	r.HandleFunc("/stats/top-author", h.TopAuthor).Methods("GET")
	r.HandleFunc("/stats/decades", h.BooksByDecade).Methods("GET")
	r.HandleFunc("/explain/{title}", h.Explain).Methods("GET")
}

func writeResult(w http.ResponseWriter, v any, err error) {
	if err != nil {
		utils.JSONError(w, "Query failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(v)
}

// GET /books?page=N&size=M, or filtered by ?genre=a&genre=b, ?not_author=x,
// ?title_prefix=p, ?in_stock_after=year.
func (h *BookHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()

	switch {
	case len(q["genre"]) > 0:
		books, err := h.Catalog.GenreIn(ctx, q["genre"])
		writeResult(w, books, err)
		return
	case q.Get("not_author") != "":
		books, err := h.Catalog.AuthorNot(ctx, q.Get("not_author"))
		writeResult(w, books, err)
		return
	case q.Get("title_prefix") != "":
		books, err := h.Catalog.TitlePrefix(ctx, q.Get("title_prefix"))
		writeResult(w, books, err)
		return
	case q.Get("in_stock_after") != "":
		year, err := strconv.Atoi(q.Get("in_stock_after"))
		if err != nil {
			utils.JSONError(w, "Invalid year", http.StatusBadRequest)
			return
		}
		books, err := h.Catalog.InStockPublishedAfter(ctx, year)
		writeResult(w, books, err)
		return
	}

	page, size := 1, defaultPageSize
	var err error
	if v := q.Get("page"); v != "" {
		if page, err = strconv.Atoi(v); err != nil {
			utils.JSONError(w, "Invalid page", http.StatusBadRequest)
			return
		}
	}
	if v := q.Get("size"); v != "" {
		if size, err = strconv.Atoi(v); err != nil {
			utils.JSONError(w, "Invalid page size", http.StatusBadRequest)
			return
		}
	}

	books, err := h.Catalog.Page(ctx, page, size)
	if errors.Is(err, catalog.ErrInvalidPage) {
		utils.JSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeResult(w, books, err)
}

// GET /books/sorted?order=asc|desc
func (h *BookHandler) SortedByPrice(w http.ResponseWriter, r *http.Request) {
	ascending := true
	switch r.URL.Query().Get("order") {
	case "", "asc":
	case "desc":
		ascending = false
	default:
		utils.JSONError(w, "order must be asc or desc", http.StatusBadRequest)
		return
	}

	books, err := h.Catalog.SortedByPrice(r.Context(), ascending)
	writeResult(w, books, err)
}

func (h *BookHandler) MissingPrice(w http.ResponseWriter, r *http.Request) {
	books, err := h.Catalog.MissingPrice(r.Context())
	writeResult(w, books, err)
}

func (h *BookHandler) ByGenre(w http.ResponseWriter, r *http.Request) {
	books, err := h.Catalog.ByGenre(r.Context(), mux.Vars(r)["genre"])
	writeResult(w, books, err)
}

func (h *BookHandler) SummariesByGenre(w http.ResponseWriter, r *http.Request) {
	books, err := h.Catalog.SummariesByGenre(r.Context(), mux.Vars(r)["genre"])
	writeResult(w, books, err)
}

func (h *BookHandler) ByAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := h.Catalog.ByAuthor(r.Context(), mux.Vars(r)["author"])
	writeResult(w, books, err)
}

func (h *BookHandler) PublishedAfter(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil {
		utils.JSONError(w, "Invalid year", http.StatusBadRequest)
		return
	}

	books, err := h.Catalog.PublishedAfter(r.Context(), year)
	writeResult(w, books, err)
}
