// Package subheading provides storage for folder subheadings.
package subheading

import (
	"context"
	"time"

	"github.com/dalemusser/stratalinks/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the subheadings collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new subheading store.
func New(db *mongo.Database) *Store {
	return &Store{
		c: db.Collection("subheadings"),
	}
}

// CreateInput contains the input for creating a subheading.
type CreateInput struct {
	FolderID primitive.ObjectID
	Title    string
	Weight   int
}

// Create creates a new subheading.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.Subheading, error) {
	sh := models.Subheading{
		ID:        primitive.NewObjectID(),
		FolderID:  input.FolderID,
		Title:     input.Title,
		Weight:    input.Weight,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.c.InsertOne(ctx, sh); err != nil {
		return nil, err
	}

	return &sh, nil
}

// GetByID retrieves a subheading by ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Subheading, error) {
	var sh models.Subheading
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sh); err != nil {
		return nil, err
	}
	return &sh, nil
}

// Exists reports whether a subheading with the given ID exists.
func (s *Store) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateInput contains the input for updating a subheading.
// Nil fields are left untouched. FolderID may be reassigned but never
// cleared; the field is non-nullable on subheadings.
type UpdateInput struct {
	FolderID *primitive.ObjectID
	Title    *string
	Weight   *int
}

// Update applies the supplied fields to a subheading.
// Returns mongo.ErrNoDocuments if the ID does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) error {
	set := bson.M{}

	if input.FolderID != nil {
		set["folder_id"] = *input.FolderID
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

// Delete deletes a subheading.
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

// List returns all subheadings ordered by weight descending.
func (s *Store) List(ctx context.Context) ([]models.Subheading, error) {
	return s.find(ctx, bson.M{})
}

// ListByFolder returns a folder's subheadings ordered by weight descending.
func (s *Store) ListByFolder(ctx context.Context, folderID primitive.ObjectID) ([]models.Subheading, error) {
	return s.find(ctx, bson.M{"folder_id": folderID})
}

// CountByFolder returns the number of subheadings in a folder.
func (s *Store) CountByFolder(ctx context.Context, folderID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"folder_id": folderID})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Subheading, error) {
	cursor, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "weight", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []models.Subheading
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}

	return subs, nil
}
