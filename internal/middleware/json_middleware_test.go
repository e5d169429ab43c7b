package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"plp-bookstore/internal/middleware"
)

func TestJSONMiddleware(t *testing.T) {
	h := middleware.JSONMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := w.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, wrapped handler not called", w.Code)
	}
}
