// internal/app/features/learners/report.go
package learners

import (
	"context"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	uierrors "github.com/dalemusser/progresshub/internal/app/features/errors"
	"github.com/dalemusser/progresshub/internal/app/report"
	classroomstore "github.com/dalemusser/progresshub/internal/app/store/classrooms"
	groupstore "github.com/dalemusser/progresshub/internal/app/store/groups"
	"github.com/dalemusser/progresshub/internal/app/store/queries/progressqueries"
	"github.com/dalemusser/progresshub/internal/app/system/authz"
	"github.com/dalemusser/progresshub/internal/app/system/timeouts"
	"github.com/dalemusser/progresshub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeLearnersReport renders the HTML Learners Report page.
// GET /reports/learners
func (h *Handler) ServeLearnersReport(w http.ResponseWriter, r *http.Request) {
	scope, state := resolveScope(r)
	switch state {
	case scopeForbidden:
		uierrors.RenderForbidden(w, r, "You don't have access to the learners report.", "/")
		return
	case scopeNoneSelected:
		h.servePicker(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	groupHex := strings.TrimSpace(r.URL.Query().Get("group"))
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	in, err := progressqueries.LoadInputs(ctx, h.DB, scope)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load report inputs failed", err, "A database error occurred.", "/")
		return
	}

	rows := report.LearnerRows(in.Learners, in.Groups, in.Exams, in.Contents, in.IsExercise)
	rows = filterRows(rows, in.Groups, groupHex, search)

	room, err := classroomstore.New(h.DB).GetByID(ctx, scope)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load classroom failed", err, "A database error occurred.", "/")
		return
	}

	data := pageData{
		BaseVM:            viewdata.NewBaseVM(r, "Learners Report", "/"),
		CanPickClassroom:  authz.IsAdmin(r) || authz.IsAnalyst(r),
		SelectedClassroom: scope.Hex(),
		ClassroomName:     room.Name,
		ClassroomDesc:     template.HTML(room.Description),
		SelectedGroup:     groupHex,
		Search:            search,
		Rows:              formatRows(rows),
		RowCount:          len(rows),
		DownloadFilename:  "learners_report",
		ExportQS:          exportQS(scope, groupHex, search),
	}

	groups, err := groupstore.New(h.DB).ListByClassroom(ctx, scope)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load groups failed", err, "A database error occurred.", "/")
		return
	}
	for _, g := range groups {
		data.Groups = append(data.Groups, groupOption{ID: g.ID, Name: g.Name})
	}

	if data.CanPickClassroom {
		rooms, err := classroomstore.New(h.DB).List(ctx)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "list classrooms failed", err, "A database error occurred.", "/")
			return
		}
		for _, c := range rooms {
			data.Classrooms = append(data.Classrooms, classroomOption{ID: c.ID, Name: c.Name})
		}
	}

	templates.Render(w, r, "learners_report", data)
}

// servePicker shows the classroom picker when an admin or analyst has
// not selected a classroom yet.
func (h *Handler) servePicker(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	data := pageData{
		BaseVM:           viewdata.NewBaseVM(r, "Learners Report", "/"),
		CanPickClassroom: true,
	}

	rooms, err := classroomstore.New(h.DB).List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list classrooms failed", err, "A database error occurred.", "/")
		return
	}
	for _, c := range rooms {
		data.Classrooms = append(data.Classrooms, classroomOption{ID: c.ID, Name: c.Name})
	}

	templates.Render(w, r, "learners_report", data)
}

// formatRows converts derived rows into display rows using the same
// formatters as the CSV export.
func formatRows(rows []report.Row) []rowVM {
	out := make([]rowVM, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowVM{
			Name:         row.Name,
			Groups:       strings.Join(row.Groups, ", "),
			AvgScore:     report.FormatScore(row.AvgScore),
			Exercises:    row.Exercises,
			Resources:    row.Resources,
			LastActivity: report.FormatActivity(row.LastActivity),
		})
	}
	return out
}

// exportQS builds the query string the CSV download link carries so the
// export sees the same scope and filters as the page.
func exportQS(scope primitive.ObjectID, groupHex, search string) string {
	v := url.Values{}
	v.Set("classroom", scope.Hex())
	if groupHex != "" {
		v.Set("group", groupHex)
	}
	if search != "" {
		v.Set("search", search)
	}
	return v.Encode()
}
