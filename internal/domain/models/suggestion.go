// internal/domain/models/suggestion.go
package models

import (
	"fmt"
	"strings"
	"time"
)

// SuggestionStatus is the lifecycle state of a correction suggestion.
// Transitions run one way: pending → approved or rejected.
type SuggestionStatus string

const (
	StatusPending  SuggestionStatus = "pending"
	StatusApproved SuggestionStatus = "approved"
	StatusRejected SuggestionStatus = "rejected"
)

// ParseSuggestionStatus normalizes a stored status value. Blank or unknown
// values fall back to pending so that rows written before the status column
// existed remain loadable.
func ParseSuggestionStatus(s string) SuggestionStatus {
	switch SuggestionStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusApproved:
		return StatusApproved
	case StatusRejected:
		return StatusRejected
	default:
		return StatusPending
	}
}

// IsTerminal reports whether the status is a processed (non-pending) state.
func (s SuggestionStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Suggestion is one user-submitted proposal to amend a directory record.
// The id is unique and stable once assigned; ProcessedAt is set only when
// the suggestion leaves pending.
type Suggestion struct {
	ID           int
	CreatedAt    time.Time
	Organization string   // target organization name, free text
	Submitter    string
	Contact      string
	Fields       []string // target field names being corrected
	Proposal     string   // free-text proposed change
	Lat          *float64
	Lon          *float64
	Status       SuggestionStatus
	ProcessedAt  *time.Time
}

// HasContent reports whether the suggestion carries anything actionable:
// either proposal text or a proposed coordinate pair.
func (s Suggestion) HasContent() bool {
	return strings.TrimSpace(s.Proposal) != "" || s.Lat != nil || s.Lon != nil
}

// CoordinateString renders the proposed coordinates for display, or "" when
// none were proposed.
func (s Suggestion) CoordinateString() string {
	if s.Lat == nil || s.Lon == nil {
		return ""
	}
	return fmt.Sprintf("%.6f, %.6f", *s.Lat, *s.Lon)
}
