// internal/app/system/status/status.go

// Package status holds the canonical record status values used across
// collections. Stored as plain strings so queries stay readable.
package status

const (
	Active   = "active"
	Disabled = "disabled"
)

// Valid reports whether s is a recognized record status.
func Valid(s string) bool {
	return s == Active || s == Disabled
}
