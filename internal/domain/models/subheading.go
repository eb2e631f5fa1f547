package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subheading is a named group of links within a folder.
type Subheading struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FolderID  primitive.ObjectID `bson:"folder_id"`
	Title     string             `bson:"title"`
	Weight    int                `bson:"weight"`
	CreatedAt time.Time          `bson:"created_at"`
}
