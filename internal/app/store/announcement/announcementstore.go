// Package announcement provides storage for staff selection announcements.
package announcement

import (
	"context"
	"time"

	"github.com/dalemusser/stratalinks/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the staff_announcements collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new announcement store.
func New(db *mongo.Database) *Store {
	return &Store{
		c: db.Collection("staff_announcements"),
	}
}

// CreateInput contains the input for creating a staff announcement.
type CreateInput struct {
	NRP      string
	Name     string
	Codename string
}

// Create creates a new staff announcement. The nrp field carries a unique
// index, so inserting a duplicate NRP fails with a duplicate-key error.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.StaffAnnouncement, error) {
	ann := models.StaffAnnouncement{
		ID:        primitive.NewObjectID(),
		NRP:       input.NRP,
		Name:      input.Name,
		Codename:  input.Codename,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.c.InsertOne(ctx, ann); err != nil {
		return nil, err
	}

	return &ann, nil
}

// GetByNRP retrieves a staff announcement by registration number.
func (s *Store) GetByNRP(ctx context.Context, nrp string) (*models.StaffAnnouncement, error) {
	var ann models.StaffAnnouncement
	if err := s.c.FindOne(ctx, bson.M{"nrp": nrp}).Decode(&ann); err != nil {
		return nil, err
	}
	return &ann, nil
}

// MarkViewed stamps viewed_at on an announcement the first time it is
// successfully checked. Later checks leave the original timestamp.
func (s *Store) MarkViewed(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "viewed_at": nil},
		bson.M{"$set": bson.M{"viewed_at": time.Now().UTC()}})
	return err
}

// ExistsByNRP reports whether an announcement exists for the given NRP.
func (s *Store) ExistsByNRP(ctx context.Context, nrp string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"nrp": nrp})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
