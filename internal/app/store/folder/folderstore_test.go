package folder

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

	catID := primitive.NewObjectID()
	f, err := store.Create(ctx, CreateInput{CategoryID: catID, Title: "Guides", Weight: 3})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if f.ID.IsZero() {
		t.Error("ID should not be zero")
	}
	if f.CategoryID != catID {
		t.Errorf("CategoryID = %v, want %v", f.CategoryID, catID)
	}
	if f.Title != "Guides" {
		t.Errorf("Title = %v, want %v", f.Title, "Guides")
	}
	if f.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStore_Update_ReassignCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	oldCat := primitive.NewObjectID()
	newCat := primitive.NewObjectID()

	created, err := store.Create(ctx, CreateInput{CategoryID: oldCat, Title: "Movable", Weight: 0})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Update(ctx, created.ID, UpdateInput{CategoryID: &newCat}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.CategoryID != newCat {
		t.Errorf("CategoryID = %v, want %v", got.CategoryID, newCat)
	}
	if got.Title != "Movable" {
		t.Errorf("Title = %v, want unchanged %v", got.Title, "Movable")
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	weight := 7
	err := store.Update(ctx, primitive.NewObjectID(), UpdateInput{Weight: &weight})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Update() error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_List_FilterByCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	catA := primitive.NewObjectID()
	catB := primitive.NewObjectID()

	for _, in := range []CreateInput{
		{CategoryID: catA, Title: "A Low", Weight: 1},
		{CategoryID: catA, Title: "A High", Weight: 9},
		{CategoryID: catB, Title: "B Only", Weight: 5},
	} {
		if _, err := store.Create(ctx, in); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	all, err := store.List(ctx, nil)
	if err != nil {
		t.Fatalf("List(nil) error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("List(nil) returned %d folders, want 3", len(all))
	}

	filtered, err := store.List(ctx, &catA)
	if err != nil {
		t.Fatalf("List(catA) error = %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("List(catA) returned %d folders, want 2", len(filtered))
	}
	if filtered[0].Title != "A High" || filtered[1].Title != "A Low" {
		t.Errorf("List(catA) order = [%v, %v], want [A High, A Low]",
			filtered[0].Title, filtered[1].Title)
	}
}

func TestStore_CountByCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	catID := primitive.NewObjectID()
	for i := 0; i < 2; i++ {
		if _, err := store.Create(ctx, CreateInput{CategoryID: catID, Title: "F", Weight: i}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	n, err := store.CountByCategory(ctx, catID)
	if err != nil {
		t.Fatalf("CountByCategory() error = %v", err)
	}
	if n != 2 {
		t.Errorf("CountByCategory() = %d, want 2", n)
	}

	n, err = store.CountByCategory(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("CountByCategory() error = %v", err)
	}
	if n != 0 {
		t.Errorf("CountByCategory() = %d, want 0", n)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateInput{CategoryID: primitive.NewObjectID(), Title: "Gone", Weight: 0})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	err = store.Delete(ctx, created.ID)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Delete() second call error = %v, want mongo.ErrNoDocuments", err)
	}
}
