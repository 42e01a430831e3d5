// internal/domain/models/learner.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Learner represents an account that can sign in: admins, analysts,
// coaches, and learners. The Role field distinguishes them.
//
// NOTE:
//   - Group membership is not embedded on Learner.
//     Use the group_memberships collection to discover a learner's groups.
type Learner struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	FullName    string              `bson:"full_name" json:"full_name"`
	FullNameCI  string              `bson:"full_name_ci" json:"full_name_ci"` // lowercase, diacritics-stripped
	Email       string              `bson:"email" json:"email"`
	Role        string              `bson:"role" json:"role"` // admin | analyst | coach | learner
	Status      string              `bson:"status,omitempty" json:"status,omitempty"`
	ClassroomID *primitive.ObjectID `bson:"classroom_id,omitempty" json:"classroom_id,omitempty"`

	// PasswordHash is a bcrypt hash; empty for accounts that have never
	// been issued credentials.
	PasswordHash string `bson:"password_hash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
