package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RunStatus string

const (
	StatusOK     RunStatus = "OK"
	StatusFailed RunStatus = "FAILED"
)

// RunLog is one journal entry per executed catalog step.
type RunLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Operation string             `bson:"operation" json:"operation"`
	Status    RunStatus          `bson:"status" json:"status"`
	Error     string             `bson:"error,omitempty" json:"error,omitempty"`
	TookMS    int64              `bson:"took_ms" json:"took_ms"`
}
