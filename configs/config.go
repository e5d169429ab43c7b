package configs

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultMongoURI       = "mongodb://localhost:27017"
	DefaultDBName         = "plp_bookstore"
	DefaultCollectionName = "books"
	DefaultPort           = "8080"
	DefaultQueryTimeout   = 10 * time.Second
)

type Config struct {
	Port              string
	MongoURI          string
	DBName            string
	CollectionName    string
	JournalCollection string
	QueryTimeout      time.Duration
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// FromEnv builds a Config from the process environment, falling back to the
// local bookstore defaults for anything unset.
func FromEnv() (Config, error) {
	timeout := DefaultQueryTimeout
	if val := os.Getenv("QUERY_TIMEOUT_SECONDS"); val != "" {
		var seconds int
		if _, err := fmt.Sscanf(val, "%d", &seconds); err != nil {
			return Config{}, fmt.Errorf("QUERY_TIMEOUT_SECONDS %q: %w", val, err)
		}
		if seconds <= 0 {
			return Config{}, fmt.Errorf("QUERY_TIMEOUT_SECONDS must be positive, got %d", seconds)
		}
		timeout = time.Duration(seconds) * time.Second
	}

	return Config{
		Port:              getenv("PORT", DefaultPort),
		MongoURI:          getenv("MONGO_URI", DefaultMongoURI),
		DBName:            getenv("DB_NAME", DefaultDBName),
		CollectionName:    getenv("COLLECTION_NAME", DefaultCollectionName),
		JournalCollection: os.Getenv("JOURNAL_COLLECTION"),
		QueryTimeout:      timeout,
	}, nil
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
