// internal/app/system/csvutil/csvutil.go

// Package csvutil holds the shared conventions for CSV downloads:
// Excel-friendly UTF-8 BOM + CRLF output, formula-injection
// sanitization, and filename handling.
package csvutil

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// utf8BOM makes Excel detect the file as Unicode.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SanitizeField prefixes values that spreadsheet applications would
// otherwise evaluate as formulas.
func SanitizeField(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}

// FilenameFromQuery returns a CSV filename from the "filename" query
// param, or defaultStem plus a UTC timestamp when none is provided. The
// .csv extension is always enforced.
func FilenameFromQuery(r *http.Request, defaultStem string) string {
	filename := strings.TrimSpace(r.URL.Query().Get("filename"))
	if filename == "" {
		filename = defaultStem + "_" + time.Now().UTC().Format("20060102_150405") + ".csv"
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		filename += ".csv"
	}
	return filename
}

// BeginDownload sets the download headers, writes the BOM, and returns
// a CRLF csv.Writer over w. Callers must Flush the writer when done.
func BeginDownload(w http.ResponseWriter, filename string) *csv.Writer {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))

	_, _ = w.Write(utf8BOM)

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return cw
}
