// Package suggestions persists user-submitted correction proposals.
//
// Two backends implement the same contract: a durable delimited file (the
// default, matching the external store format) and a Mongo collection.
// Both follow the same discipline: read the latest durable state before
// every mutation, apply the single change, write back — last-writer-wins
// across processes.
package suggestions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fpl-indonesia/direktori/internal/domain/models"
)

var (
	// ErrNotFound signals a status transition against an unknown id.
	ErrNotFound = errors.New("suggestion not found")

	// ErrNoContent rejects submissions with nothing to act on: blank
	// proposal text and no proposed coordinates.
	ErrNoContent = errors.New("suggestion has no actionable content")

	// ErrBadStatus rejects transitions to anything other than approved
	// or rejected.
	ErrBadStatus = errors.New("status must be approved or rejected")
)

// Store is the suggestion persistence contract.
type Store interface {
	// List returns every stored suggestion, backfilling defaults for
	// columns added after older rows were written.
	List(ctx context.Context) ([]models.Suggestion, error)

	// Submit validates and appends a new pending suggestion, assigning
	// id = 1 on an empty store, else max existing id + 1.
	Submit(ctx context.Context, in NewSuggestion) (models.Suggestion, error)

	// SetStatus transitions the suggestion to approved or rejected and
	// stamps processed_at. The transition is unconditional: a repeat
	// call simply overwrites.
	SetStatus(ctx context.Context, id int, status models.SuggestionStatus) error
}

// NewSuggestion carries the submission form fields.
type NewSuggestion struct {
	Organization string
	Submitter    string
	Contact      string
	Fields       []string
	Proposal     string
	Lat          *float64
	Lon          *float64
}

func (in NewSuggestion) validate() error {
	if strings.TrimSpace(in.Proposal) == "" && in.Lat == nil && in.Lon == nil {
		return ErrNoContent
	}
	return nil
}

// build assembles the pending Suggestion for a validated submission.
func (in NewSuggestion) build(id int, now time.Time) models.Suggestion {
	return models.Suggestion{
		ID:           id,
		CreatedAt:    now.UTC(),
		Organization: strings.TrimSpace(in.Organization),
		Submitter:    strings.TrimSpace(in.Submitter),
		Contact:      strings.TrimSpace(in.Contact),
		Fields:       in.Fields,
		Proposal:     strings.TrimSpace(in.Proposal),
		Lat:          in.Lat,
		Lon:          in.Lon,
		Status:       models.StatusPending,
	}
}

// nextID implements the id assignment rule over the current state.
func nextID(existing []models.Suggestion) int {
	max := 0
	for _, s := range existing {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}
