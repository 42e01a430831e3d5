package examlogstore

import (
	"context"
	"time"

	"github.com/dalemusser/progresshub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("exam_logs")}
}

// Record upserts a learner's standing on an exam. The last activity
// timestamp only ever moves forward.
func (s *Store) Record(ctx context.Context, log models.ExamLog) error {
	if log.LastActivity.IsZero() {
		log.LastActivity = time.Now().UTC()
	}
	filter := bson.M{"learner_id": log.LearnerID, "exam_id": log.ExamID}
	update := bson.M{
		"$set": bson.M{
			"classroom_id": log.ClassroomID,
			"status":       log.Status,
			"score":        log.Score,
		},
		"$max":         bson.M{"last_activity": log.LastActivity},
		"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
	}
	_, err := s.c.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// ListByClassroom returns all exam logs for learners in a classroom.
func (s *Store) ListByClassroom(ctx context.Context, classroomID primitive.ObjectID) ([]models.ExamLog, error) {
	cur, err := s.c.Find(ctx, bson.M{"classroom_id": classroomID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ExamLog
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
