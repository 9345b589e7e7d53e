// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips dangerous markup from user-supplied text
// before it is stored. Complaint descriptions and resolutions are rendered
// back into the admin UI, so script/event-handler payloads must never
// survive a write.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

// policy allows common user-generated formatting (paragraphs, emphasis,
// lists, tables, nofollow links) and removes everything executable.
var policy = bluemonday.UGCPolicy()

// Sanitize returns the input with unsafe HTML removed. Plain text passes
// through unchanged.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
