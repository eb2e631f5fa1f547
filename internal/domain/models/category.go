package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a top-level grouping of folders on the directory homepage.
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Weight    int                `bson:"weight"` // higher sorts first
	CreatedAt time.Time          `bson:"created_at"`
}
