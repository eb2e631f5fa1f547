package category

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

	cat, err := store.Create(ctx, CreateInput{Title: "Academics", Weight: 5})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if cat.ID.IsZero() {
		t.Error("ID should not be zero")
	}
	if cat.Title != "Academics" {
		t.Errorf("Title = %v, want %v", cat.Title, "Academics")
	}
	if cat.Weight != 5 {
		t.Errorf("Weight = %v, want %v", cat.Weight, 5)
	}
	if cat.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStore_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateInput{Title: "Events", Weight: 1})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != created.Title {
		t.Errorf("Title = %v, want %v", got.Title, created.Title)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("GetByID() error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateInput{Title: "Old Title", Weight: 1})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	newTitle := "New Title"
	if err := store.Update(ctx, created.ID, UpdateInput{Title: &newTitle}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != newTitle {
		t.Errorf("Title = %v, want %v", got.Title, newTitle)
	}
	if got.Weight != 1 {
		t.Errorf("Weight = %v, want unchanged %v", got.Weight, 1)
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	title := "Anything"
	err := store.Update(ctx, primitive.NewObjectID(), UpdateInput{Title: &title})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Update() error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_Update_NoFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateInput{Title: "Untouched", Weight: 2})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Empty update on an existing record succeeds without changes
	if err := store.Update(ctx, created.ID, UpdateInput{}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	// Empty update on a missing record still reports not-found
	err = store.Update(ctx, primitive.NewObjectID(), UpdateInput{})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Update() error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateInput{Title: "Doomed", Weight: 0})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err = store.GetByID(ctx, created.ID)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("GetByID() after delete error = %v, want mongo.ErrNoDocuments", err)
	}

	err = store.Delete(ctx, created.ID)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Delete() second call error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_List_OrderedByWeight(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, in := range []CreateInput{
		{Title: "Light", Weight: 1},
		{Title: "Heavy", Weight: 10},
		{Title: "Middle", Weight: 5},
	} {
		if _, err := store.Create(ctx, in); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	cats, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(cats) != 3 {
		t.Fatalf("List() returned %d categories, want 3", len(cats))
	}

	want := []string{"Heavy", "Middle", "Light"}
	for i, title := range want {
		if cats[i].Title != title {
			t.Errorf("List()[%d].Title = %v, want %v", i, cats[i].Title, title)
		}
	}
}

func TestStore_Exists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateInput{Title: "Present", Weight: 0})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	ok, err := store.Exists(ctx, created.ID)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !ok {
		t.Error("Exists() = false, want true")
	}

	ok, err = store.Exists(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if ok {
		t.Error("Exists() = true for unknown ID, want false")
	}
}
