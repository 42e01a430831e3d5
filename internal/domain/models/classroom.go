// internal/domain/models/classroom.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Classroom is the top-level reporting scope. Learners and groups belong
// to exactly one classroom; coaches are locked to theirs.
type Classroom struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"name_ci"`
	Description string             `bson:"description" json:"description"` // sanitized HTML

	Status string `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
