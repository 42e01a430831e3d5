// internal/domain/models/contentlog.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Content log statuses.
const (
	ContentNotStarted = "not_started"
	ContentStarted    = "started"
	ContentCompleted  = "completed"
)

// ContentLog records one learner's progress through one piece of content
// (an exercise or a resource; content_nodes holds the classification).
type ContentLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LearnerID   primitive.ObjectID `bson:"learner_id" json:"learner_id"`
	ClassroomID primitive.ObjectID `bson:"classroom_id" json:"classroom_id"`
	ContentID   string             `bson:"content_id" json:"content_id"`
	Status      string             `bson:"status" json:"status"`

	LastActivity time.Time `bson:"last_activity" json:"last_activity"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
