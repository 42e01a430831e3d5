// internal/app/report/rows.go

// Package report derives per-learner progress rows from the raw
// collections (learners, groups, exam logs, content logs). The
// derivation is pure and recomputed on every request; nothing here
// touches the database.
package report

import (
	"sort"
	"time"

	"github.com/dalemusser/progresshub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Learner is the minimal learner shape the deriver needs.
type Learner struct {
	ID   primitive.ObjectID
	Name string
}

// Group carries a group's name and its member set.
type Group struct {
	ID        primitive.ObjectID
	Name      string
	MemberIDs []primitive.ObjectID
}

// ExamStatus is one learner's standing on one exam.
type ExamStatus struct {
	LearnerID    primitive.ObjectID
	Status       string // models.ExamCompleted or other
	Score        float64
	LastActivity time.Time
}

// ContentStatus is one learner's standing on one piece of content.
type ContentStatus struct {
	LearnerID    primitive.ObjectID
	ContentID    string
	Status       string // models.ContentNotStarted | ContentStarted | ContentCompleted
	LastActivity time.Time
}

// Classifier reports whether a content ID refers to an exercise.
// Content that does not classify as an exercise counts as a resource.
type Classifier func(contentID string) bool

// Row is one derived line of the learners report.
//
// AvgScore and LastActivity are nil when the learner has no qualifying
// records; absent data is a default, never an error.
type Row struct {
	ID           primitive.ObjectID
	Name         string
	Groups       []string
	AvgScore     *float64
	Exercises    int
	Resources    int
	LastActivity *time.Time
}

// LearnerRows derives one Row per learner, sorted by folded name with
// the ID as tiebreak.
//
// Per learner:
//   - Groups: names of groups whose member set contains the learner.
//   - AvgScore: mean score over completed exam statuses (nil if none).
//   - Exercises: completed content statuses classified as exercises.
//   - Resources: non-exercise content statuses that are past not-started.
//   - LastActivity: max timestamp over all exam statuses plus content
//     statuses past not-started (nil if none qualify).
func LearnerRows(
	learners []Learner,
	groups []Group,
	exams []ExamStatus,
	contents []ContentStatus,
	isExercise Classifier,
) []Row {
	groupNames := make(map[primitive.ObjectID][]string, len(learners))
	for _, g := range groups {
		for _, id := range g.MemberIDs {
			groupNames[id] = append(groupNames[id], g.Name)
		}
	}

	examsByLearner := make(map[primitive.ObjectID][]ExamStatus)
	for _, e := range exams {
		examsByLearner[e.LearnerID] = append(examsByLearner[e.LearnerID], e)
	}
	contentsByLearner := make(map[primitive.ObjectID][]ContentStatus)
	for _, c := range contents {
		contentsByLearner[c.LearnerID] = append(contentsByLearner[c.LearnerID], c)
	}

	rows := make([]Row, 0, len(learners))
	for _, l := range learners {
		row := Row{
			ID:     l.ID,
			Name:   l.Name,
			Groups: sortedGroupNames(groupNames[l.ID]),
		}

		var last time.Time
		var haveLast bool
		note := func(t time.Time) {
			if !t.IsZero() && (!haveLast || t.After(last)) {
				last = t
				haveLast = true
			}
		}

		var scoreSum float64
		var scoreN int
		for _, e := range examsByLearner[l.ID] {
			note(e.LastActivity)
			if e.Status == models.ExamCompleted {
				scoreSum += e.Score
				scoreN++
			}
		}
		if scoreN > 0 {
			avg := scoreSum / float64(scoreN)
			row.AvgScore = &avg
		}

		for _, c := range contentsByLearner[l.ID] {
			if c.Status == models.ContentNotStarted {
				continue
			}
			note(c.LastActivity)
			if isExercise != nil && isExercise(c.ContentID) {
				if c.Status == models.ContentCompleted {
					row.Exercises++
				}
			} else {
				row.Resources++
			}
		}

		if haveLast {
			t := last
			row.LastActivity = &t
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := text.Fold(rows[i].Name), text.Fold(rows[j].Name)
		if a != b {
			return a < b
		}
		return rows[i].ID.Hex() < rows[j].ID.Hex()
	})
	return rows
}

func sortedGroupNames(names []string) []string {
	if len(names) < 2 {
		return names
	}
	out := make([]string, len(names))
	copy(out, names)
	sort.Slice(out, func(i, j int) bool {
		return text.Fold(out[i]) < text.Fold(out[j])
	})
	return out
}

// KindClassifier builds a Classifier from a content_id → kind map, as
// loaded from the content_nodes collection. Unknown content IDs count
// as resources.
func KindClassifier(kinds map[string]string) Classifier {
	return func(contentID string) bool {
		return kinds[contentID] == models.KindExercise
	}
}
