// Package category provides storage for directory categories.
package category

import (
	"context"
	"time"

	"github.com/dalemusser/stratalinks/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the categories collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new category store.
func New(db *mongo.Database) *Store {
	return &Store{
		c: db.Collection("categories"),
	}
}

// CreateInput contains the input for creating a category.
type CreateInput struct {
	Title  string
	Weight int
}

// Create creates a new category.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.Category, error) {
	cat := models.Category{
		ID:        primitive.NewObjectID(),
		Title:     input.Title,
		Weight:    input.Weight,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.c.InsertOne(ctx, cat); err != nil {
		return nil, err
	}

	return &cat, nil
}

// GetByID retrieves a category by ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var cat models.Category
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Exists reports whether a category with the given ID exists.
func (s *Store) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateInput contains the input for updating a category.
// Nil fields are left untouched.
type UpdateInput struct {
	Title  *string
	Weight *int
}

// Update applies the supplied fields to a category.
// Returns mongo.ErrNoDocuments if the ID does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) error {
	set := bson.M{}

	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Weight != nil {
		set["weight"] = *input.Weight
	}

	if len(set) == 0 {
		// Nothing to change; still verify the target exists.
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

// Delete deletes a category.
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

// List returns all categories ordered by weight descending.
func (s *Store) List(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "weight", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cats []models.Category
	if err := cursor.All(ctx, &cats); err != nil {
		return nil, err
	}

	return cats, nil
}
