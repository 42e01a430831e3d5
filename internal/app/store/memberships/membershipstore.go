package membershipstore

import (
	"context"
	"time"

	"github.com/dalemusser/progresshub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("group_memberships")}
}

// Add links a learner to a group. Adding the same pair twice is a no-op
// thanks to the unique (group_id, learner_id) index.
func (s *Store) Add(ctx context.Context, groupID, learnerID, classroomID primitive.ObjectID) error {
	m := models.GroupMembership{
		GroupID:     groupID,
		LearnerID:   learnerID,
		ClassroomID: classroomID,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := s.c.InsertOne(ctx, m)
	if wafflemongo.IsDup(err) {
		return nil
	}
	return err
}

// Remove unlinks a learner from a group.
func (s *Store) Remove(ctx context.Context, groupID, learnerID primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"group_id": groupID, "learner_id": learnerID})
	return err
}

// ListByClassroom returns every membership in a classroom.
func (s *Store) ListByClassroom(ctx context.Context, classroomID primitive.ObjectID) ([]models.GroupMembership, error) {
	cur, err := s.c.Find(ctx, bson.M{"classroom_id": classroomID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.GroupMembership
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
