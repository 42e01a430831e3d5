// internal/domain/models/examlog.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exam log statuses.
const (
	ExamCompleted = "completed"
	ExamStarted   = "started"
)

// ExamLog records one learner's progress through one exam. Score is a
// percentage (0-100) and is only meaningful once Status is completed.
type ExamLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LearnerID   primitive.ObjectID `bson:"learner_id" json:"learner_id"`
	ClassroomID primitive.ObjectID `bson:"classroom_id" json:"classroom_id"`
	ExamID      string             `bson:"exam_id" json:"exam_id"`
	Status      string             `bson:"status" json:"status"`
	Score       float64            `bson:"score" json:"score"`

	LastActivity time.Time `bson:"last_activity" json:"last_activity"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
