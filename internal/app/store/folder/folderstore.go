// Package folder provides storage for directory folders.
package folder

import (
	"context"
	"time"

	"github.com/dalemusser/stratalinks/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the folders collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new folder store.
func New(db *mongo.Database) *Store {
	return &Store{
		c: db.Collection("folders"),
	}
}

// CreateInput contains the input for creating a folder.
type CreateInput struct {
	CategoryID primitive.ObjectID
	Title      string
	Weight     int
}

// Create creates a new folder.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.Folder, error) {
	f := models.Folder{
		ID:         primitive.NewObjectID(),
		CategoryID: input.CategoryID,
		Title:      input.Title,
		Weight:     input.Weight,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := s.c.InsertOne(ctx, f); err != nil {
		return nil, err
	}

	return &f, nil
}

// GetByID retrieves a folder by ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Folder, error) {
	var f models.Folder
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Exists reports whether a folder with the given ID exists.
func (s *Store) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateInput contains the input for updating a folder.
// Nil fields are left untouched. CategoryID may be reassigned but never
// cleared; the field is non-nullable on folders.
type UpdateInput struct {
	CategoryID *primitive.ObjectID
	Title      *string
	Weight     *int
}

// Update applies the supplied fields to a folder.
// Returns mongo.ErrNoDocuments if the ID does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) error {
	set := bson.M{}

	if input.CategoryID != nil {
		set["category_id"] = *input.CategoryID
	}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Weight != nil {
		set["weight"] = *input.Weight
	}

	if len(set) == 0 {
		return s.c.FindOne(ctx, bson.M{"_id": id}).Err()
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deletes a folder.
// Returns mongo.ErrNoDocuments if the ID does not exist.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// List returns all folders ordered by weight descending.
// Pass a non-nil categoryID to restrict the result to that category.
func (s *Store) List(ctx context.Context, categoryID *primitive.ObjectID) ([]models.Folder, error) {
	filter := bson.M{}
	if categoryID != nil {
		filter["category_id"] = *categoryID
	}

	cursor, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "weight", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var folders []models.Folder
	if err := cursor.All(ctx, &folders); err != nil {
		return nil, err
	}

	return folders, nil
}

// CountByCategory returns the number of folders in a category.
func (s *Store) CountByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"category_id": categoryID})
}
