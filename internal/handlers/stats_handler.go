package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"plp-bookstore/internal/utils"
)

// GET /stats/genres
func (h *BookHandler) AveragePriceByGenre(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Catalog.AveragePriceByGenre(r.Context())
	writeResult(w, groups, err)
}

// GET /stats/top-author
func (h *BookHandler) TopAuthor(w http.ResponseWriter, r *http.Request) {
	top, err := h.Catalog.TopAuthor(r.Context())
	if err == nil && top == nil {
		utils.JSONError(w, "No books found", http.StatusNotFound)
		return
	}
	writeResult(w, top, err)
}

// GET /stats/decades
func (h *BookHandler) BooksByDecade(w http.ResponseWriter, r *http.Request) {
	decades, err := h.Catalog.BooksByDecade(r.Context())
	writeResult(w, decades, err)
}

// GET /explain/{title}
func (h *BookHandler) Explain(w http.ResponseWriter, r *http.Request) {
	plan, err := h.Catalog.ExplainTitleLookup(r.Context(), mux.Vars(r)["title"])
	if err != nil {
		utils.JSONError(w, "Explain failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	out, err := bson.MarshalExtJSON(plan, false, false)
	if err != nil {
		utils.JSONError(w, "Encoding plan failed", http.StatusInternalServerError)
		return
	}
	w.Write(out)
}
