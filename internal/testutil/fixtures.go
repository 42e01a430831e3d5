package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/progresshub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateClassroom creates a test classroom with the given name.
func (f *Fixtures) CreateClassroom(ctx context.Context, name string) models.Classroom {
	f.t.Helper()

	now := time.Now().UTC()
	room := models.Classroom{
		ID:          primitive.NewObjectID(),
		Name:        name,
		NameCI:      text.Fold(name),
		Description: "Test classroom",
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("classrooms").InsertOne(ctx, room); err != nil {
		f.t.Fatalf("failed to create test classroom: %v", err)
	}
	return room
}

// CreateAccount creates an account with the given role. Password may be
// empty; classroomID may be nil for admins and analysts.
func (f *Fixtures) CreateAccount(ctx context.Context, fullName, email, role, password string, classroomID *primitive.ObjectID) models.Learner {
	f.t.Helper()

	now := time.Now().UTC()
	l := models.Learner{
		ID:          primitive.NewObjectID(),
		FullName:    fullName,
		FullNameCI:  text.Fold(fullName),
		Email:       email,
		Role:        role,
		Status:      "active",
		ClassroomID: classroomID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			f.t.Fatalf("failed to hash test password: %v", err)
		}
		l.PasswordHash = string(hash)
	}

	if _, err := f.db.Collection("learners").InsertOne(ctx, l); err != nil {
		f.t.Fatalf("failed to create test account: %v", err)
	}
	return l
}

// CreateAdmin creates a test admin account.
func (f *Fixtures) CreateAdmin(ctx context.Context, fullName, email, password string) models.Learner {
	f.t.Helper()
	return f.CreateAccount(ctx, fullName, email, "admin", password, nil)
}

// CreateAnalyst creates a test analyst account.
func (f *Fixtures) CreateAnalyst(ctx context.Context, fullName, email, password string) models.Learner {
	f.t.Helper()
	return f.CreateAccount(ctx, fullName, email, "analyst", password, nil)
}

// CreateCoach creates a test coach locked to the given classroom.
func (f *Fixtures) CreateCoach(ctx context.Context, fullName, email, password string, classroomID primitive.ObjectID) models.Learner {
	f.t.Helper()
	return f.CreateAccount(ctx, fullName, email, "coach", password, &classroomID)
}

// CreateLearner creates a test learner in the given classroom.
func (f *Fixtures) CreateLearner(ctx context.Context, fullName, email string, classroomID primitive.ObjectID) models.Learner {
	f.t.Helper()
	return f.CreateAccount(ctx, fullName, email, "learner", "", &classroomID)
}

// CreateDisabledLearner creates a learner with disabled status.
func (f *Fixtures) CreateDisabledLearner(ctx context.Context, fullName, email string, classroomID primitive.ObjectID) models.Learner {
	f.t.Helper()

	now := time.Now().UTC()
	l := models.Learner{
		ID:          primitive.NewObjectID(),
		FullName:    fullName,
		FullNameCI:  text.Fold(fullName),
		Email:       email,
		Role:        "learner",
		Status:      "disabled",
		ClassroomID: &classroomID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("learners").InsertOne(ctx, l); err != nil {
		f.t.Fatalf("failed to create disabled test learner: %v", err)
	}
	return l
}

// CreateGroup creates a test group in the given classroom.
func (f *Fixtures) CreateGroup(ctx context.Context, name string, classroomID primitive.ObjectID) models.Group {
	f.t.Helper()

	now := time.Now().UTC()
	group := models.Group{
		ID:          primitive.NewObjectID(),
		Name:        name,
		NameCI:      text.Fold(name),
		ClassroomID: classroomID,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("groups").InsertOne(ctx, group); err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}
	return group
}

// CreateGroupMembership links a learner to a group.
func (f *Fixtures) CreateGroupMembership(ctx context.Context, learnerID, groupID, classroomID primitive.ObjectID) models.GroupMembership {
	f.t.Helper()

	membership := models.GroupMembership{
		ID:          primitive.NewObjectID(),
		GroupID:     groupID,
		LearnerID:   learnerID,
		ClassroomID: classroomID,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("group_memberships").InsertOne(ctx, membership); err != nil {
		f.t.Fatalf("failed to create test group membership: %v", err)
	}
	return membership
}

// RecordExam inserts an exam log row directly.
func (f *Fixtures) RecordExam(ctx context.Context, learnerID, classroomID primitive.ObjectID, examID, status string, score float64, lastActivity time.Time) models.ExamLog {
	f.t.Helper()

	log := models.ExamLog{
		ID:           primitive.NewObjectID(),
		LearnerID:    learnerID,
		ClassroomID:  classroomID,
		ExamID:       examID,
		Status:       status,
		Score:        score,
		LastActivity: lastActivity,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := f.db.Collection("exam_logs").InsertOne(ctx, log); err != nil {
		f.t.Fatalf("failed to create test exam log: %v", err)
	}
	return log
}

// RecordContent inserts a content log row directly.
func (f *Fixtures) RecordContent(ctx context.Context, learnerID, classroomID primitive.ObjectID, contentID, status string, lastActivity time.Time) models.ContentLog {
	f.t.Helper()

	log := models.ContentLog{
		ID:           primitive.NewObjectID(),
		LearnerID:    learnerID,
		ClassroomID:  classroomID,
		ContentID:    contentID,
		Status:       status,
		LastActivity: lastActivity,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := f.db.Collection("content_logs").InsertOne(ctx, log); err != nil {
		f.t.Fatalf("failed to create test content log: %v", err)
	}
	return log
}

// CreateContentNode registers a content node with the given kind
// ("exercise" or "resource") and returns it.
func (f *Fixtures) CreateContentNode(ctx context.Context, contentID, title, kind string) models.ContentNode {
	f.t.Helper()

	node := models.ContentNode{
		ContentID: contentID,
		Title:     title,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("content_nodes").InsertOne(ctx, node); err != nil {
		f.t.Fatalf("failed to create test content node: %v", err)
	}
	return node
}
