// Package ingest loads the heterogeneous source tables and merges them
// into the canonical directory record set.
//
// Each origin table has its own normalizer implementing Source; the
// aggregator concatenates the normalized rows, derives the service list
// and category tags, and produces the immutable Dataset the rest of the
// app reads for the session.
package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fpl-indonesia/direktori/internal/app/system/taxonomy"
	"github.com/fpl-indonesia/direktori/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Source normalizes one origin table into canonical organization records.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Load reads and normalizes the table. Derived fields (Services,
	// Categories) are left empty; the aggregator computes them.
	Load(ctx context.Context) ([]models.Organization, error)
}

// LoadSpec pairs a source with its failure policy. A failing required
// source aborts the whole load; a failing optional source contributes an
// empty table and the load continues in degraded-data mode.
type LoadSpec struct {
	Source   Source
	Required bool
}

// Dataset is the aggregated, session-immutable record set.
type Dataset struct {
	SnapshotID  uuid.UUID
	LoadedAt    time.Time
	Records     []models.Organization
	SourceCount map[models.Source]int
}

// Load runs every source in order and aggregates the results.
func Load(ctx context.Context, logger *zap.Logger, specs []LoadSpec) (*Dataset, error) {
	tables := make([][]models.Organization, 0, len(specs))
	for _, spec := range specs {
		rows, err := spec.Source.Load(ctx)
		if err != nil {
			if spec.Required {
				return nil, fmt.Errorf("load %s: %w", spec.Source.Name(), err)
			}
			logger.Warn("optional source unavailable, continuing without it",
				zap.String("source", spec.Source.Name()),
				zap.Error(err))
			continue
		}
		tables = append(tables, rows)
	}

	ds := &Dataset{
		SnapshotID:  uuid.New(),
		LoadedAt:    time.Now().UTC(),
		Records:     Aggregate(tables...),
		SourceCount: make(map[models.Source]int),
	}
	for _, rec := range ds.Records {
		ds.SourceCount[rec.Source]++
	}

	logger.Info("directory dataset loaded",
		zap.String("snapshot_id", ds.SnapshotID.String()),
		zap.Int("records", len(ds.Records)))
	return ds, nil
}

// Aggregate concatenates normalized tables in order, preserving
// within-table row order, and derives the per-record fields: the split
// services list and the sorted category tags. No cross-source
// deduplication happens; colliding names from different sources stay as
// distinct entries.
func Aggregate(tables ...[]models.Organization) []models.Organization {
	total := 0
	for _, t := range tables {
		total += len(t)
	}

	out := make([]models.Organization, 0, total)
	for _, table := range tables {
		for _, rec := range table {
			rec.Services = SplitServices(rec.ServicesRaw)
			rec.Categories = taxonomy.ClassifyServices(rec.Services)
			out = append(out, rec)
		}
	}
	return out
}

// SplitServices derives the ordered service phrase list from the raw
// free-text field: embedded newlines normalize to semicolons, fragments
// are trimmed, empties dropped, duplicates and order kept.
func SplitServices(raw string) []string {
	normalized := strings.ReplaceAll(raw, "\n", ";")

	var out []string
	for _, part := range strings.Split(normalized, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// blankCell reports whether a source cell carries no usable value. The
// authority sheets use a literal 0 where no number was recorded.
func blankCell(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == "0" || s == "-"
}

// firstNonBlank returns the first cell with a usable value, or "".
func firstNonBlank(cells ...string) string {
	for _, c := range cells {
		if !blankCell(c) {
			return strings.TrimSpace(c)
		}
	}
	return ""
}

// cell returns row[i] or "" when the row is too short. Spreadsheet rows
// come back ragged: trailing empty cells are omitted.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// titleCase upper-cases the first letter of each space-separated word and
// lower-cases the rest, turning the sheets' all-caps jurisdiction names
// into display form.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
