// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureCategories(ctx, db); err != nil {
		problems = append(problems, "categories: "+err.Error())
	}
	if err := ensureFolders(ctx, db); err != nil {
		problems = append(problems, "folders: "+err.Error())
	}
	if err := ensureSubheadings(ctx, db); err != nil {
		problems = append(problems, "subheadings: "+err.Error())
	}
	if err := ensureLinks(ctx, db); err != nil {
		problems = append(problems, "links: "+err.Error())
	}
	if err := ensureStaffAnnouncements(ctx, db); err != nil {
		problems = append(problems, "staff_announcements: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}

func ensureCategories(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("categories")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Homepage and admin listings sort by weight descending
		{
			Keys:    bson.D{{Key: "weight", Value: -1}},
			Options: options.Index().SetName("idx_categories_weight"),
		},
	})
}

func ensureFolders(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("folders")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Filtered folder listing: category + weight sort
		{
			Keys: bson.D{
				{Key: "category_id", Value: 1},
				{Key: "weight", Value: -1},
			},
			Options: options.Index().SetName("idx_folders_category_weight"),
		},
		// Unfiltered listing by weight
		{
			Keys:    bson.D{{Key: "weight", Value: -1}},
			Options: options.Index().SetName("idx_folders_weight"),
		},
	})
}

func ensureSubheadings(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("subheadings")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Folder detail: subheadings of one folder by weight
		{
			Keys: bson.D{
				{Key: "folder_id", Value: 1},
				{Key: "weight", Value: -1},
			},
			Options: options.Index().SetName("idx_subheadings_folder_weight"),
		},
	})
}

func ensureLinks(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("links")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// General links (folder_id null) and direct links both hit this
		{
			Keys: bson.D{
				{Key: "folder_id", Value: 1},
				{Key: "subheading_id", Value: 1},
				{Key: "weight", Value: -1},
			},
			Options: options.Index().SetName("idx_links_folder_subheading_weight"),
		},
		// Nested links under a subheading
		{
			Keys: bson.D{
				{Key: "subheading_id", Value: 1},
				{Key: "weight", Value: -1},
			},
			Options: options.Index().SetName("idx_links_subheading_weight"),
		},
		// Unfiltered listing by weight
		{
			Keys:    bson.D{{Key: "weight", Value: -1}},
			Options: options.Index().SetName("idx_links_weight"),
		},
	})
}

func ensureStaffAnnouncements(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("staff_announcements")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// One announcement per registration number
		{
			Keys:    bson.D{{Key: "nrp", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_announcements_nrp"),
		},
	})
}
