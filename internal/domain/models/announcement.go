package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StaffAnnouncement is a selection result keyed by the applicant's
// registration number (NRP). ViewedAt records the first successful check.
type StaffAnnouncement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	NRP       string             `bson:"nrp"`
	Name      string             `bson:"name"`
	Codename  string             `bson:"codename"`
	CreatedAt time.Time          `bson:"created_at"`
	ViewedAt  *time.Time         `bson:"viewed_at,omitempty"`
}
