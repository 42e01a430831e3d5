// internal/app/report/columns.go
package report

import (
	"strconv"
	"strings"
	"time"
)

// Column binds a CSV header to a formatter over a derived Row. The
// learners feature hands the column set plus rows to the CSV writer,
// so the export and the HTML table always agree on content.
type Column struct {
	Header string
	Value  func(Row) string
}

// Columns returns the export column specification for the learners
// report: name, group list, average score, the two counts, and last
// activity.
func Columns() []Column {
	return []Column{
		{Header: "name", Value: func(r Row) string { return r.Name }},
		{Header: "groups", Value: func(r Row) string { return strings.Join(r.Groups, "|") }},
		{Header: "avg_score", Value: func(r Row) string { return FormatScore(r.AvgScore) }},
		{Header: "exercises_completed", Value: func(r Row) string { return strconv.Itoa(r.Exercises) }},
		{Header: "resources_viewed", Value: func(r Row) string { return strconv.Itoa(r.Resources) }},
		{Header: "last_activity", Value: func(r Row) string { return FormatActivity(r.LastActivity) }},
	}
}

// FormatScore renders an average score with one decimal, or "" when the
// learner has no completed exams.
func FormatScore(avg *float64) string {
	if avg == nil {
		return ""
	}
	return strconv.FormatFloat(*avg, 'f', 1, 64)
}

// FormatActivity renders a last-activity timestamp as RFC 3339 in UTC,
// or "" when the learner has no qualifying activity.
func FormatActivity(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
