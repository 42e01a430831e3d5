// internal/app/features/learners/csv.go
package learners

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/progresshub/internal/app/report"
	"github.com/dalemusser/progresshub/internal/app/store/queries/progressqueries"
	"github.com/dalemusser/progresshub/internal/app/system/csvutil"
	"github.com/dalemusser/progresshub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeLearnersCSV handles GET /reports/learners.csv and streams the
// current report as a CSV download. Scope and filters match the HTML
// page, so the export always mirrors what is on screen.
func (h *Handler) ServeLearnersCSV(w http.ResponseWriter, r *http.Request) {
	scope, state := resolveScope(r)
	switch state {
	case scopeForbidden:
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	case scopeNoneSelected:
		http.Error(w, "classroom required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	groupHex := strings.TrimSpace(r.URL.Query().Get("group"))
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	in, err := progressqueries.LoadInputs(ctx, h.DB, scope)
	if err != nil {
		h.Log.Error("load report inputs for CSV failed", zap.Error(err))
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	rows := report.LearnerRows(in.Learners, in.Groups, in.Exams, in.Contents, in.IsExercise)
	rows = filterRows(rows, in.Groups, groupHex, search)

	columns := report.Columns()
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}

	filename := csvutil.FilenameFromQuery(r, "learners_report")
	cw := csvutil.BeginDownload(w, filename)

	if err := cw.Write(headers); err != nil {
		h.Log.Error("write CSV header failed", zap.Error(err))
		return
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = csvutil.SanitizeField(col.Value(row))
		}
		if err := cw.Write(record); err != nil {
			h.Log.Error("write CSV row failed", zap.Error(err))
			return
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		h.Log.Error("flush CSV failed", zap.Error(err))
		return
	}

	h.Log.Info("learners CSV exported",
		zap.String("classroom_id", scope.Hex()),
		zap.Int("rows", len(rows)),
		zap.String("filename", filename))
}
