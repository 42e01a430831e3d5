// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips dangerous markup from the small amount of
// rich text this app accepts (classroom descriptions). Everything that
// passes through here is safe to render with template.HTML.
package htmlsanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

func ugc() *bluemonday.Policy {
	once.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowElements("u", "s", "sub", "sup", "mark")
		p.AllowTables()
		p.AllowAttrs("class").OnElements("table", "thead", "tbody", "tr", "th", "td")
		policy = p
	})
	return policy
}

// Sanitize returns input with scripts, event handlers, and other unsafe
// markup removed. Plain text passes through unchanged.
func Sanitize(input string) string {
	if input == "" {
		return ""
	}
	return ugc().Sanitize(input)
}
