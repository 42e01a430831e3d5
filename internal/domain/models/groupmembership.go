// internal/domain/models/groupmembership.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GroupMembership is the authoritative join between learners and groups.
// Exactly one document per (learner_id, group_id).
type GroupMembership struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GroupID     primitive.ObjectID `bson:"group_id" json:"group_id"`
	LearnerID   primitive.ObjectID `bson:"learner_id" json:"learner_id"`
	ClassroomID primitive.ObjectID `bson:"classroom_id" json:"classroom_id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
