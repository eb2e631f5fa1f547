package subheading

import (
	"errors"
	"testing"

	"github.com/dalemusser/stratalinks/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	folderID := primitive.NewObjectID()
	sub, err := store.Create(ctx, CreateInput{FolderID: folderID, Title: "Forms", Weight: 2})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if sub.ID.IsZero() {
		t.Error("ID should not be zero")
	}
	if sub.FolderID != folderID {
		t.Errorf("FolderID = %v, want %v", sub.FolderID, folderID)
	}
	if sub.Title != "Forms" {
		t.Errorf("Title = %v, want %v", sub.Title, "Forms")
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateInput{FolderID: primitive.NewObjectID(), Title: "Old", Weight: 1})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	newTitle := "Renamed"
	newWeight := 8
	if err := store.Update(ctx, created.ID, UpdateInput{Title: &newTitle, Weight: &newWeight}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != newTitle {
		t.Errorf("Title = %v, want %v", got.Title, newTitle)
	}
	if got.Weight != newWeight {
		t.Errorf("Weight = %v, want %v", got.Weight, newWeight)
	}
	if got.FolderID != created.FolderID {
		t.Errorf("FolderID = %v, want unchanged %v", got.FolderID, created.FolderID)
	}
}

func TestStore_ListByFolder_OrderedByWeight(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	folderID := primitive.NewObjectID()
	other := primitive.NewObjectID()

	for _, in := range []CreateInput{
		{FolderID: folderID, Title: "Second", Weight: 5},
		{FolderID: folderID, Title: "First", Weight: 10},
		{FolderID: other, Title: "Elsewhere", Weight: 99},
	} {
		if _, err := store.Create(ctx, in); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	subs, err := store.ListByFolder(ctx, folderID)
	if err != nil {
		t.Fatalf("ListByFolder() error = %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("ListByFolder() returned %d subheadings, want 2", len(subs))
	}
	if subs[0].Title != "First" || subs[1].Title != "Second" {
		t.Errorf("ListByFolder() order = [%v, %v], want [First, Second]",
			subs[0].Title, subs[1].Title)
	}
}

func TestStore_CountByFolder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	folderID := primitive.NewObjectID()
	if _, err := store.Create(ctx, CreateInput{FolderID: folderID, Title: "One", Weight: 0}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	n, err := store.CountByFolder(ctx, folderID)
	if err != nil {
		t.Fatalf("CountByFolder() error = %v", err)
	}
	if n != 1 {
		t.Errorf("CountByFolder() = %d, want 1", n)
	}
}

func TestStore_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Delete(ctx, primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Delete() error = %v, want mongo.ErrNoDocuments", err)
	}
}
