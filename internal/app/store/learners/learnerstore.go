package learnerstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/progresshub/internal/app/system/status"
	"github.com/dalemusser/progresshub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateEmail = errors.New("an account with this email already exists")

const bcryptCost = 12

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("learners")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Learner, error) {
	var l models.Learner
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		return models.Learner{}, err
	}
	return l, nil
}

// GetByEmail looks an account up by its normalized (lowercased) email.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.Learner, error) {
	var l models.Learner
	err := s.c.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&l)
	if err != nil {
		return models.Learner{}, err
	}
	return l, nil
}

// Create inserts an account. Password may be empty for accounts that
// sign in is not yet enabled for.
func (s *Store) Create(ctx context.Context, l models.Learner, password string) (models.Learner, error) {
	now := time.Now().UTC()
	l.ID = primitive.NewObjectID()
	l.FullNameCI = text.Fold(l.FullName)
	l.Email = strings.ToLower(strings.TrimSpace(l.Email))
	if l.Status == "" {
		l.Status = status.Active
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return models.Learner{}, err
		}
		l.PasswordHash = string(hash)
	}
	l.CreatedAt = now
	l.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, l); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Learner{}, ErrDuplicateEmail
		}
		return models.Learner{}, err
	}
	return l, nil
}

// VerifyPassword compares the stored bcrypt hash against a candidate.
func (s *Store) VerifyPassword(l models.Learner, password string) bool {
	if l.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(l.PasswordHash), []byte(password)) == nil
}

// ListByClassroom returns active learner-role accounts in a classroom,
// sorted by folded name then ID.
func (s *Store) ListByClassroom(ctx context.Context, classroomID primitive.ObjectID) ([]models.Learner, error) {
	filter := bson.M{
		"role":         "learner",
		"status":       status.Active,
		"classroom_id": classroomID,
	}
	cur, err := s.c.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "full_name_ci", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Learner
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
