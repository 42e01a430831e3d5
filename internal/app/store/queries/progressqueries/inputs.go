// Package progressqueries provides read-only queries that assemble the
// in-memory inputs for the learners report.
package progressqueries

import (
	"context"

	"github.com/dalemusser/progresshub/internal/app/report"
	contentlogstore "github.com/dalemusser/progresshub/internal/app/store/contentlogs"
	contentnodestore "github.com/dalemusser/progresshub/internal/app/store/contentnodes"
	examlogstore "github.com/dalemusser/progresshub/internal/app/store/examlogs"
	groupstore "github.com/dalemusser/progresshub/internal/app/store/groups"
	learnerstore "github.com/dalemusser/progresshub/internal/app/store/learners"
	membershipstore "github.com/dalemusser/progresshub/internal/app/store/memberships"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Inputs bundles everything the report deriver needs for one classroom.
type Inputs struct {
	Learners   []report.Learner
	Groups     []report.Group
	Exams      []report.ExamStatus
	Contents   []report.ContentStatus
	IsExercise report.Classifier
}

// LoadInputs reads the classroom's learners, groups (with member sets),
// exam and content logs, and the content classification, converting the
// stored documents into the deriver's value types.
func LoadInputs(ctx context.Context, db *mongo.Database, classroomID primitive.ObjectID) (Inputs, error) {
	var in Inputs

	learners, err := learnerstore.New(db).ListByClassroom(ctx, classroomID)
	if err != nil {
		return Inputs{}, err
	}
	in.Learners = make([]report.Learner, 0, len(learners))
	for _, l := range learners {
		in.Learners = append(in.Learners, report.Learner{ID: l.ID, Name: l.FullName})
	}

	groups, err := groupstore.New(db).ListByClassroom(ctx, classroomID)
	if err != nil {
		return Inputs{}, err
	}
	memberships, err := membershipstore.New(db).ListByClassroom(ctx, classroomID)
	if err != nil {
		return Inputs{}, err
	}
	membersByGroup := make(map[primitive.ObjectID][]primitive.ObjectID, len(groups))
	for _, m := range memberships {
		membersByGroup[m.GroupID] = append(membersByGroup[m.GroupID], m.LearnerID)
	}
	in.Groups = make([]report.Group, 0, len(groups))
	for _, g := range groups {
		in.Groups = append(in.Groups, report.Group{
			ID:        g.ID,
			Name:      g.Name,
			MemberIDs: membersByGroup[g.ID],
		})
	}

	exams, err := examlogstore.New(db).ListByClassroom(ctx, classroomID)
	if err != nil {
		return Inputs{}, err
	}
	in.Exams = make([]report.ExamStatus, 0, len(exams))
	for _, e := range exams {
		in.Exams = append(in.Exams, report.ExamStatus{
			LearnerID:    e.LearnerID,
			Status:       e.Status,
			Score:        e.Score,
			LastActivity: e.LastActivity,
		})
	}

	contents, err := contentlogstore.New(db).ListByClassroom(ctx, classroomID)
	if err != nil {
		return Inputs{}, err
	}
	in.Contents = make([]report.ContentStatus, 0, len(contents))
	for _, c := range contents {
		in.Contents = append(in.Contents, report.ContentStatus{
			LearnerID:    c.LearnerID,
			ContentID:    c.ContentID,
			Status:       c.Status,
			LastActivity: c.LastActivity,
		})
	}

	kinds, err := contentnodestore.New(db).Kinds(ctx)
	if err != nil {
		return Inputs{}, err
	}
	in.IsExercise = report.KindClassifier(kinds)

	return in, nil
}
