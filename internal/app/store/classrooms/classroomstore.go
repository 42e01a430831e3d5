package classroomstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/progresshub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/progresshub/internal/app/system/status"
	"github.com/dalemusser/progresshub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateClassroomName = errors.New("a classroom with this name already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("classrooms")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Classroom, error) {
	var c models.Classroom
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return models.Classroom{}, err
	}
	return c, nil
}

func (s *Store) Create(ctx context.Context, c models.Classroom) (models.Classroom, error) {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.NameCI = text.Fold(c.Name)
	c.Description = htmlsanitize.Sanitize(c.Description)
	if c.Status == "" {
		c.Status = status.Active
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Classroom{}, ErrDuplicateClassroomName
		}
		return models.Classroom{}, err
	}
	return c, nil
}

// List returns all active classrooms sorted by folded name.
func (s *Store) List(ctx context.Context) ([]models.Classroom, error) {
	cur, err := s.c.Find(ctx, bson.M{"status": status.Active}, options.Find().
		SetSort(bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Classroom
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
