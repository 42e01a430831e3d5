// internal/app/features/learners/types.go
package learners

import (
	"html/template"

	"github.com/dalemusser/progresshub/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// classroomOption is one entry in the classroom picker shown to admins
// and analysts.
type classroomOption struct {
	ID   primitive.ObjectID
	Name string
}

// groupOption is one entry in the group filter select.
type groupOption struct {
	ID   primitive.ObjectID
	Name string
}

// rowVM is one formatted table row. Formatting matches the CSV export
// so the two surfaces never disagree.
type rowVM struct {
	Name         string
	Groups       string
	AvgScore     string
	Exercises    int
	Resources    int
	LastActivity string
}

// pageData is the view model for the HTML Learners Report page.
type pageData struct {
	viewdata.BaseVM

	// Classroom picker (admins and analysts only; coaches are locked)
	CanPickClassroom  bool
	Classrooms        []classroomOption
	SelectedClassroom string // hex, or "" when nothing selected yet
	ClassroomName     string
	// ClassroomDesc is sanitized on write (htmlsanitize), so it is safe
	// to render unescaped here.
	ClassroomDesc template.HTML

	// Filters
	Groups        []groupOption
	SelectedGroup string // hex or ""
	Search        string

	// Table
	Rows     []rowVM
	RowCount int

	// CSV download
	DownloadFilename string
	ExportQS         string // query string carried onto the .csv link
}
