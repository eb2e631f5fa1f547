package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Link is a single directory entry. Both parent references are optional:
// a link with a folder but no subheading is a "direct" link of that folder,
// and a link with neither is a "general" link shown on the homepage.
type Link struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	FolderID     *primitive.ObjectID `bson:"folder_id"`
	SubheadingID *primitive.ObjectID `bson:"subheading_id"`
	Title        string              `bson:"title"`
	URL          string              `bson:"url"`
	Weight       int                 `bson:"weight"`
	CreatedAt    time.Time           `bson:"created_at"`
}

// IsGeneral returns true if the link is attached to neither a folder
// nor a subheading.
func (l *Link) IsGeneral() bool {
	return l.FolderID == nil && l.SubheadingID == nil
}
