package contentnodestore

import (
	"context"
	"time"

	"github.com/dalemusser/progresshub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("content_nodes")}
}

// Upsert writes a content node, minting a UUID content ID when the
// node is new to this system. Returns the node with its final ID.
func (s *Store) Upsert(ctx context.Context, n models.ContentNode) (models.ContentNode, error) {
	if n.ContentID == "" {
		n.ContentID = uuid.NewString()
	}
	update := bson.M{
		"$set":         bson.M{"title": n.Title, "kind": n.Kind},
		"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
	}
	_, err := s.c.UpdateByID(ctx, n.ContentID, update, options.Update().SetUpsert(true))
	if err != nil {
		return models.ContentNode{}, err
	}
	return n, nil
}

// Kinds returns the content_id → kind classification map used by the
// report deriver to split exercises from resources.
func (s *Store) Kinds(ctx context.Context) (map[string]string, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"kind": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	kinds := make(map[string]string)
	for cur.Next(ctx) {
		var row struct {
			ContentID string `bson:"_id"`
			Kind      string `bson:"kind"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		kinds[row.ContentID] = row.Kind
	}
	return kinds, cur.Err()
}
