package configs_test

import (
	"testing"
	"time"

	"plp-bookstore/configs"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "MONGO_URI", "DB_NAME", "COLLECTION_NAME", "JOURNAL_COLLECTION", "QUERY_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg, err := configs.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	if cfg.MongoURI != configs.DefaultMongoURI {
		t.Errorf("MongoURI = %q, want %q", cfg.MongoURI, configs.DefaultMongoURI)
	}
	if cfg.DBName != "plp_bookstore" {
		t.Errorf("DBName = %q, want plp_bookstore", cfg.DBName)
	}
	if cfg.CollectionName != "books" {
		t.Errorf("CollectionName = %q, want books", cfg.CollectionName)
	}
	if cfg.JournalCollection != "" {
		t.Errorf("JournalCollection = %q, want empty", cfg.JournalCollection)
	}
	if cfg.QueryTimeout != configs.DefaultQueryTimeout {
		t.Errorf("QueryTimeout = %v, want %v", cfg.QueryTimeout, configs.DefaultQueryTimeout)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27018")
	t.Setenv("DB_NAME", "shop")
	t.Setenv("COLLECTION_NAME", "novels")
	t.Setenv("JOURNAL_COLLECTION", "query_runs")
	t.Setenv("QUERY_TIMEOUT_SECONDS", "3")
	t.Setenv("PORT", "9090")

	cfg, err := configs.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	want := configs.Config{
		Port:              "9090",
		MongoURI:          "mongodb://db:27018",
		DBName:            "shop",
		CollectionName:    "novels",
		JournalCollection: "query_runs",
		QueryTimeout:      3 * time.Second,
	}
	if cfg != want {
		t.Errorf("FromEnv() = %+v, want %+v", cfg, want)
	}
}

func TestFromEnv_InvalidTimeout(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"Not a number", "soon"},
		{"Zero", "0"},
		{"Negative", "-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("QUERY_TIMEOUT_SECONDS", tt.value)
			if _, err := configs.FromEnv(); err == nil {
				t.Errorf("FromEnv() with %q: expected error", tt.value)
			}
		})
	}
}
