package membershipstore_test

import (
	"testing"

	membershipstore "github.com/dalemusser/progresshub/internal/app/store/memberships"
	"github.com/dalemusser/progresshub/internal/app/system/indexes"
	"github.com/dalemusser/progresshub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Add_DuplicateIsNoOp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	group := primitive.NewObjectID()
	learner := primitive.NewObjectID()
	room := primitive.NewObjectID()

	if err := store.Add(ctx, group, learner, room); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := store.Add(ctx, group, learner, room); err != nil {
		t.Fatalf("duplicate Add should be a no-op, got: %v", err)
	}

	got, err := store.ListByClassroom(ctx, room)
	if err != nil {
		t.Fatalf("ListByClassroom failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected exactly one membership, got %d", len(got))
	}
}

func TestStore_Remove(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	group := primitive.NewObjectID()
	learner := primitive.NewObjectID()
	room := primitive.NewObjectID()

	if err := store.Add(ctx, group, learner, room); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := store.Remove(ctx, group, learner); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	got, err := store.ListByClassroom(ctx, room)
	if err != nil {
		t.Fatalf("ListByClassroom failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no memberships after Remove, got %d", len(got))
	}
}
