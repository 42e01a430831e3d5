// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll is called at startup. Each ensure* function is idempotent.
// Errors are aggregated so any problem is visible and startup can fail
// fast.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureLearners(ctx, db); err != nil {
		problems = append(problems, "learners: "+err.Error())
	}
	if err := ensureClassrooms(ctx, db); err != nil {
		problems = append(problems, "classrooms: "+err.Error())
	}
	if err := ensureGroups(ctx, db); err != nil {
		problems = append(problems, "groups: "+err.Error())
	}
	if err := ensureGroupMemberships(ctx, db); err != nil {
		problems = append(problems, "group_memberships: "+err.Error())
	}
	if err := ensureExamLogs(ctx, db); err != nil {
		problems = append(problems, "exam_logs: "+err.Error())
	}
	if err := ensureContentLogs(ctx, db); err != nil {
		problems = append(problems, "content_logs: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureLearners(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db.Collection("learners"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "classroom_id", Value: 1}, {Key: "full_name_ci", Value: 1}},
			Options: options.Index().SetName("classroom_name"),
		},
	})
}

func ensureClassrooms(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db.Collection("classrooms"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetName("uniq_name_ci").SetUnique(true),
		},
	})
}

func ensureGroups(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db.Collection("groups"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "classroom_id", Value: 1}, {Key: "name_ci", Value: 1}},
			Options: options.Index().SetName("uniq_classroom_name").SetUnique(true),
		},
	})
}

func ensureGroupMemberships(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db.Collection("group_memberships"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "group_id", Value: 1}, {Key: "learner_id", Value: 1}},
			Options: options.Index().SetName("uniq_group_learner").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "classroom_id", Value: 1}},
			Options: options.Index().SetName("by_classroom"),
		},
	})
}

func ensureExamLogs(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db.Collection("exam_logs"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "learner_id", Value: 1}, {Key: "exam_id", Value: 1}},
			Options: options.Index().SetName("uniq_learner_exam").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "classroom_id", Value: 1}, {Key: "last_activity", Value: -1}},
			Options: options.Index().SetName("classroom_activity"),
		},
	})
}

func ensureContentLogs(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db.Collection("content_logs"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "learner_id", Value: 1}, {Key: "content_id", Value: 1}},
			Options: options.Index().SetName("uniq_learner_content").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "classroom_id", Value: 1}, {Key: "last_activity", Value: -1}},
			Options: options.Index().SetName("classroom_activity"),
		},
	})
}

func create(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	_, err := coll.Indexes().CreateMany(ctx, models)
	if err != nil && strings.Contains(err.Error(), "IndexOptionsConflict") {
		// Same keys already exist under a different name; leave them be.
		return nil
	}
	return err
}
