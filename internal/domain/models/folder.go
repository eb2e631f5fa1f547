package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Folder is a directory section that belongs to exactly one category.
type Folder struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CategoryID primitive.ObjectID `bson:"category_id"`
	Title      string             `bson:"title"`
	Weight     int                `bson:"weight"`
	CreatedAt  time.Time          `bson:"created_at"`
}
