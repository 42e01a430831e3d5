package examlogstore_test

import (
	"testing"
	"time"

	examlogstore "github.com/dalemusser/progresshub/internal/app/store/examlogs"
	"github.com/dalemusser/progresshub/internal/domain/models"
	"github.com/dalemusser/progresshub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Record_UpsertsPerLearnerExam(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := examlogstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	learnerID := primitive.NewObjectID()
	roomID := primitive.NewObjectID()
	early := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC)

	err := store.Record(ctx, models.ExamLog{
		LearnerID: learnerID, ClassroomID: roomID, ExamID: "exam-1",
		Status: models.ExamStarted, LastActivity: early,
	})
	if err != nil {
		t.Fatalf("first Record failed: %v", err)
	}

	err = store.Record(ctx, models.ExamLog{
		LearnerID: learnerID, ClassroomID: roomID, ExamID: "exam-1",
		Status: models.ExamCompleted, Score: 85, LastActivity: late,
	})
	if err != nil {
		t.Fatalf("second Record failed: %v", err)
	}

	got, err := store.ListByClassroom(ctx, roomID)
	if err != nil {
		t.Fatalf("ListByClassroom failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one log per (learner, exam), got %d", len(got))
	}
	if got[0].Status != models.ExamCompleted || got[0].Score != 85 {
		t.Errorf("log not updated: status=%q score=%v", got[0].Status, got[0].Score)
	}
	if !got[0].LastActivity.Equal(late) {
		t.Errorf("LastActivity: got %v, want %v", got[0].LastActivity, late)
	}
}

func TestStore_Record_LastActivityOnlyMovesForward(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := examlogstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	learnerID := primitive.NewObjectID()
	roomID := primitive.NewObjectID()
	early := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC)

	if err := store.Record(ctx, models.ExamLog{
		LearnerID: learnerID, ClassroomID: roomID, ExamID: "exam-1",
		Status: models.ExamCompleted, Score: 90, LastActivity: late,
	}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	// A stale event must not rewind the activity timestamp.
	if err := store.Record(ctx, models.ExamLog{
		LearnerID: learnerID, ClassroomID: roomID, ExamID: "exam-1",
		Status: models.ExamCompleted, Score: 90, LastActivity: early,
	}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := store.ListByClassroom(ctx, roomID)
	if err != nil {
		t.Fatalf("ListByClassroom failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one log, got %d", len(got))
	}
	if !got[0].LastActivity.Equal(late) {
		t.Errorf("LastActivity rewound: got %v, want %v", got[0].LastActivity, late)
	}
}

func TestStore_ListByClassroom_ScopesToClassroom(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := examlogstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	roomA := primitive.NewObjectID()
	roomB := primitive.NewObjectID()
	when := time.Now().UTC()

	if err := store.Record(ctx, models.ExamLog{
		LearnerID: primitive.NewObjectID(), ClassroomID: roomA, ExamID: "exam-1",
		Status: models.ExamStarted, LastActivity: when,
	}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Record(ctx, models.ExamLog{
		LearnerID: primitive.NewObjectID(), ClassroomID: roomB, ExamID: "exam-1",
		Status: models.ExamStarted, LastActivity: when,
	}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := store.ListByClassroom(ctx, roomA)
	if err != nil {
		t.Fatalf("ListByClassroom failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 log for room A, got %d", len(got))
	}
}
