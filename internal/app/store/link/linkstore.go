// Package link provides storage for directory links.
package link

import (
	"context"
	"time"

	"github.com/dalemusser/stratalinks/internal/app/system/patch"
	"github.com/dalemusser/stratalinks/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the links collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new link store.
func New(db *mongo.Database) *Store {
	return &Store{
		c: db.Collection("links"),
	}
}

// CreateInput contains the input for creating a link.
// FolderID and SubheadingID are independently optional.
type CreateInput struct {
	FolderID     *primitive.ObjectID
	SubheadingID *primitive.ObjectID
	Title        string
	URL          string
	Weight       int
}

// Create creates a new link.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.Link, error) {
	l := models.Link{
		ID:           primitive.NewObjectID(),
		FolderID:     input.FolderID,
		SubheadingID: input.SubheadingID,
		Title:        input.Title,
		URL:          input.URL,
		Weight:       input.Weight,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.c.InsertOne(ctx, l); err != nil {
		return nil, err
	}

	return &l, nil
}

// GetByID retrieves a link by ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Link, error) {
	var l models.Link
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateInput contains the input for updating a link.
//
// Title, URL, and Weight follow the usual nil-means-untouched convention.
// FolderID and SubheadingID are three-state patch fields: absent leaves the
// relation alone, a value reattaches it, and an explicit null detaches it
// without deleting the link.
type UpdateInput struct {
	FolderID     patch.Field[primitive.ObjectID]
	SubheadingID patch.Field[primitive.ObjectID]
	Title        *string
	URL          *string
	Weight       *int
}

// Update applies the supplied fields to a link.
// Returns mongo.ErrNoDocuments if the ID does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) error {
	set := bson.M{}

	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.URL != nil {
		set["url"] = *input.URL
	}
	if input.Weight != nil {
		set["weight"] = *input.Weight
	}
	switch {
	case input.FolderID.IsSet():
		set["folder_id"] = input.FolderID.Value
	case input.FolderID.IsClear():
		set["folder_id"] = nil
	}
	switch {
	case input.SubheadingID.IsSet():
		set["subheading_id"] = input.SubheadingID.Value
	case input.SubheadingID.IsClear():
		set["subheading_id"] = nil
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

// Delete deletes a link.
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

// List returns all links ordered by weight descending.
func (s *Store) List(ctx context.Context) ([]models.Link, error) {
	return s.find(ctx, bson.M{})
}

// ListGeneral returns links attached to no folder, ordered by weight
// descending. These appear on the directory homepage.
func (s *Store) ListGeneral(ctx context.Context) ([]models.Link, error) {
	return s.find(ctx, bson.M{"folder_id": nil})
}

// ListByFolder returns all of a folder's links ordered by weight descending,
// whether attached directly or through a subheading.
func (s *Store) ListByFolder(ctx context.Context, folderID primitive.ObjectID) ([]models.Link, error) {
	return s.find(ctx, bson.M{"folder_id": folderID})
}

// ListBySubheading returns a subheading's links ordered by weight descending.
func (s *Store) ListBySubheading(ctx context.Context, subheadingID primitive.ObjectID) ([]models.Link, error) {
	return s.find(ctx, bson.M{"subheading_id": subheadingID})
}

// ListDirect returns a folder's links that belong to no subheading,
// ordered by weight descending.
func (s *Store) ListDirect(ctx context.Context, folderID primitive.ObjectID) ([]models.Link, error) {
	return s.find(ctx, bson.M{"folder_id": folderID, "subheading_id": nil})
}

// CountByFolder returns the number of links attached to a folder.
func (s *Store) CountByFolder(ctx context.Context, folderID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"folder_id": folderID})
}

// CountBySubheading returns the number of links attached to a subheading.
func (s *Store) CountBySubheading(ctx context.Context, subheadingID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"subheading_id": subheadingID})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Link, error) {
	cursor, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "weight", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var links []models.Link
	if err := cursor.All(ctx, &links); err != nil {
		return nil, err
	}

	return links, nil
}
