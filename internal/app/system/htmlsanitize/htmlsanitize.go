// Package htmlsanitize cleans untrusted text before it is rendered as
// HTML.
//
// Two kinds of untrusted text flow through the directory: free-text fields
// imported from the source tables (profiles, service descriptions) and
// user-submitted correction suggestions shown on the admin review screen.
// Both pass through here before any template marks them safe.
package htmlsanitize

import (
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once      sync.Once
	richpol   *bluemonday.Policy
	strictpol *bluemonday.Policy
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	once.Do(func() {
		richpol = bluemonday.UGCPolicy()
		strictpol = bluemonday.StrictPolicy()
	})
	return richpol, strictpol
}

// Sanitize strips dangerous markup while keeping basic user-generated
// formatting (paragraphs, emphasis, safe links).
func Sanitize(s string) string {
	rich, _ := policies()
	return rich.Sanitize(s)
}

// SanitizeStrict strips all markup, leaving plain text. Used for
// single-line fields such as names and contacts.
func SanitizeStrict(s string) string {
	_, strict := policies()
	return strict.Sanitize(s)
}

// SanitizeHTML sanitizes and returns template.HTML ready for rendering.
func SanitizeHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}
