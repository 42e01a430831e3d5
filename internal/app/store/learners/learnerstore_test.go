package learnerstore_test

import (
	"testing"

	learnerstore "github.com/dalemusser/progresshub/internal/app/store/learners"
	"github.com/dalemusser/progresshub/internal/app/system/indexes"
	"github.com/dalemusser/progresshub/internal/domain/models"
	"github.com/dalemusser/progresshub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := learnerstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	classroomID := primitive.NewObjectID()
	created, err := store.Create(ctx, models.Learner{
		FullName:    "Álvaro García",
		Email:       "Alvaro@Example.COM",
		Role:        "learner",
		ClassroomID: &classroomID,
	}, "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("expected ID to be set")
	}
	if created.Email != "alvaro@example.com" {
		t.Errorf("Email: got %q, want lowercased", created.Email)
	}
	if created.FullNameCI == "" || created.FullNameCI == created.FullName {
		t.Errorf("FullNameCI: got %q, want folded form", created.FullNameCI)
	}
	if created.Status != "active" {
		t.Errorf("Status: got %q, want active default", created.Status)
	}
	if created.PasswordHash != "" {
		t.Error("expected empty password hash when no password given")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := learnerstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	_, err := store.Create(ctx, models.Learner{FullName: "A", Email: "dup@example.com", Role: "learner"}, "")
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err = store.Create(ctx, models.Learner{FullName: "B", Email: "dup@example.com", Role: "learner"}, "")
	if err != learnerstore.ErrDuplicateEmail {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_VerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := learnerstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Learner{
		FullName: "Coach",
		Email:    "coach@example.com",
		Role:     "coach",
	}, "correct horse")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !store.VerifyPassword(created, "correct horse") {
		t.Error("expected correct password to verify")
	}
	if store.VerifyPassword(created, "wrong") {
		t.Error("expected wrong password to fail")
	}
	if store.VerifyPassword(models.Learner{}, "anything") {
		t.Error("expected account without hash to fail")
	}
}

func TestStore_GetByEmail_NormalizesLookup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := learnerstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Learner{FullName: "A", Email: "someone@example.com", Role: "admin"}, ""); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := store.GetByEmail(ctx, "  Someone@Example.COM ")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if found.Email != "someone@example.com" {
		t.Errorf("Email: got %q", found.Email)
	}
}

func TestStore_ListByClassroom(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := learnerstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	room := fixtures.CreateClassroom(ctx, "Algebra 1")
	other := fixtures.CreateClassroom(ctx, "Biology 2")

	fixtures.CreateLearner(ctx, "zoe", "zoe@example.com", room.ID)
	fixtures.CreateLearner(ctx, "Ben", "ben@example.com", room.ID)
	fixtures.CreateLearner(ctx, "Álvaro", "alvaro@example.com", room.ID)
	fixtures.CreateLearner(ctx, "Elsewhere", "else@example.com", other.ID)
	fixtures.CreateDisabledLearner(ctx, "Gone", "gone@example.com", room.ID)
	fixtures.CreateCoach(ctx, "Coach", "coach@example.com", "pw", room.ID)

	got, err := store.ListByClassroom(ctx, room.ID)
	if err != nil {
		t.Fatalf("ListByClassroom failed: %v", err)
	}

	// Only active learner-role accounts in this classroom, sorted by
	// folded name: Álvaro sorts with the As, zoe sorts last despite case.
	want := []string{"Álvaro", "Ben", "zoe"}
	if len(got) != len(want) {
		t.Fatalf("got %d learners, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].FullName != name {
			t.Errorf("learner[%d]: got %q, want %q", i, got[i].FullName, name)
		}
	}
}
