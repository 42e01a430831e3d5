// internal/domain/models/contentnode.go
package models

import "time"

// Content node kinds.
const (
	KindExercise = "exercise"
	KindResource = "resource"
)

// ContentNode describes a piece of learnable content. ContentID is a
// channel-stable UUID string, not a Mongo ObjectID, because content is
// authored outside this system and imported.
type ContentNode struct {
	ContentID string `bson:"_id" json:"content_id"`
	Title     string `bson:"title" json:"title"`
	Kind      string `bson:"kind" json:"kind"` // exercise | resource

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
