package contentnodestore_test

import (
	"testing"

	contentnodestore "github.com/dalemusser/progresshub/internal/app/store/contentnodes"
	"github.com/dalemusser/progresshub/internal/domain/models"
	"github.com/dalemusser/progresshub/internal/testutil"
	"github.com/google/uuid"
)

func TestStore_Upsert_MintsUUID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contentnodestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	node, err := store.Upsert(ctx, models.ContentNode{Title: "Fractions drill", Kind: models.KindExercise})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if node.ContentID == "" {
		t.Fatal("expected a minted content ID")
	}
	if _, err := uuid.Parse(node.ContentID); err != nil {
		t.Errorf("minted content ID is not a UUID: %q", node.ContentID)
	}
}

func TestStore_Upsert_UpdatesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contentnodestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Upsert(ctx, models.ContentNode{Title: "Old title", Kind: models.KindResource})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	if _, err := store.Upsert(ctx, models.ContentNode{
		ContentID: first.ContentID, Title: "New title", Kind: models.KindExercise,
	}); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	kinds, err := store.Kinds(ctx)
	if err != nil {
		t.Fatalf("Kinds failed: %v", err)
	}
	if len(kinds) != 1 {
		t.Fatalf("expected one node, got %d", len(kinds))
	}
	if kinds[first.ContentID] != models.KindExercise {
		t.Errorf("kind not updated: got %q", kinds[first.ContentID])
	}
}

func TestStore_Kinds(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contentnodestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateContentNode(ctx, "c-1", "Drill", "exercise")
	fixtures.CreateContentNode(ctx, "c-2", "Video", "resource")

	kinds, err := store.Kinds(ctx)
	if err != nil {
		t.Fatalf("Kinds failed: %v", err)
	}
	if kinds["c-1"] != "exercise" || kinds["c-2"] != "resource" {
		t.Errorf("kinds map wrong: %v", kinds)
	}
}
