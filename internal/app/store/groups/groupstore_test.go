package groupstore_test

import (
	"testing"

	groupstore "github.com/dalemusser/progresshub/internal/app/store/groups"
	"github.com/dalemusser/progresshub/internal/app/system/indexes"
	"github.com/dalemusser/progresshub/internal/domain/models"
	"github.com/dalemusser/progresshub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create_DuplicateNamePerClassroom(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	roomA := primitive.NewObjectID()
	roomB := primitive.NewObjectID()

	if _, err := store.Create(ctx, models.Group{Name: "Red Team", ClassroomID: roomA}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Same name in the same classroom is rejected...
	if _, err := store.Create(ctx, models.Group{Name: "red team", ClassroomID: roomA}); err != groupstore.ErrDuplicateGroupName {
		t.Errorf("expected ErrDuplicateGroupName, got %v", err)
	}

	// ...but the same name in another classroom is fine.
	if _, err := store.Create(ctx, models.Group{Name: "Red Team", ClassroomID: roomB}); err != nil {
		t.Errorf("cross-classroom Create failed: %v", err)
	}
}

func TestStore_ListByClassroom_Sorted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	room := primitive.NewObjectID()
	if _, err := store.Create(ctx, models.Group{Name: "zebras", ClassroomID: room}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Group{Name: "Apples", ClassroomID: room}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.ListByClassroom(ctx, room)
	if err != nil {
		t.Fatalf("ListByClassroom failed: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Apples" || got[1].Name != "zebras" {
		t.Errorf("groups not sorted by folded name: %v", got)
	}
}
