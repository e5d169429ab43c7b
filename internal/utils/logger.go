package utils

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"plp-bookstore/internal/catalog"
	"plp-bookstore/internal/models"
)

// Journal records one RunLog document per executed catalog step.
type Journal struct {
	Collection *mongo.Collection
}

func (j *Journal) Log(ctx context.Context, res catalog.Result) error {
	entry := models.RunLog{
		Timestamp: time.Now(),
		Operation: res.Step,
		Status:    models.StatusOK,
		TookMS:    res.Took.Milliseconds(),
	}
	if res.Err != nil {
		entry.Status = models.StatusFailed
		entry.Error = res.Err.Error()
	}
	_, err := j.Collection.InsertOne(ctx, entry)
	return err
}

// Hook adapts Log to a catalog.Runner hook. Journal failures are logged and
// never fail the run.
func (j *Journal) Hook(ctx context.Context, res catalog.Result) {
	if err := j.Log(ctx, res); err != nil {
		log.Printf("journal %q: %v", res.Step, err)
	}
}
