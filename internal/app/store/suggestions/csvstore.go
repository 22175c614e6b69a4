// internal/app/store/suggestions/csvstore.go
package suggestions

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fpl-indonesia/direktori/internal/domain/models"
	"go.uber.org/zap"
)

// Header is the durable file schema. Older files may lack trailing
// columns; List backfills them.
var Header = []string{"id", "timestamp", "organisasi", "pengaju", "kontak", "kolom", "usulan", "lat", "lon", "status", "processed_at"}

// fieldsSep joins the multi-valued kolom column inside one CSV cell.
const fieldsSep = "|"

// CSVStore keeps suggestions in one delimited file. A process-local mutex
// serializes read-modify-write cycles; the file is re-read inside the
// critical section so separate admin requests observe each other's
// writes. Writes go through a temp file and rename.
type CSVStore struct {
	path string
	log  *zap.Logger

	mu sync.Mutex

	// now is swappable for tests.
	now func() time.Time
}

// NewCSVStore creates a store over the given file path. The file is
// created lazily on first submit.
func NewCSVStore(path string, logger *zap.Logger) *CSVStore {
	return &CSVStore{path: path, log: logger, now: time.Now}
}

func (s *CSVStore) List(ctx context.Context) ([]models.Suggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *CSVStore) Submit(ctx context.Context, in NewSuggestion) (models.Suggestion, error) {
	if err := in.validate(); err != nil {
		return models.Suggestion{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.readAll()
	if err != nil {
		return models.Suggestion{}, err
	}

	sug := in.build(nextID(existing), s.now())
	if err := s.writeAll(append(existing, sug)); err != nil {
		return models.Suggestion{}, err
	}

	if s.log != nil {
		s.log.Info("suggestion submitted",
			zap.Int("id", sug.ID),
			zap.String("organization", sug.Organization))
	}
	return sug, nil
}

func (s *CSVStore) SetStatus(ctx context.Context, id int, status models.SuggestionStatus) error {
	if !status.IsTerminal() {
		return ErrBadStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.readAll()
	if err != nil {
		return err
	}

	found := false
	now := s.now().UTC()
	for i := range existing {
		if existing[i].ID == id {
			existing[i].Status = status
			existing[i].ProcessedAt = &now
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("set status for id %d: %w", id, ErrNotFound)
	}

	return s.writeAll(existing)
}

// readAll parses the durable file. A missing file is an empty store, not
// an error. Rows written before schema additions are backfilled: invalid
// ids become the positional sequence, a missing status becomes pending,
// and a missing processed_at stays empty.
func (s *CSVStore) readAll() ([]models.Suggestion, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open suggestion store: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	var out []models.Suggestion
	pos := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read suggestion store: %w", err)
		}
		if len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "id") {
			continue // header row
		}
		pos++
		out = append(out, parseRow(row, pos))
	}
	return out, nil
}

func parseRow(row []string, pos int) models.Suggestion {
	get := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	id, err := strconv.Atoi(get(0))
	if err != nil || id <= 0 {
		id = pos
	}

	var created time.Time
	if t, err := time.Parse(time.RFC3339, get(1)); err == nil {
		created = t
	}

	var fields []string
	if raw := get(5); raw != "" {
		for _, fpart := range strings.Split(raw, fieldsSep) {
			if p := strings.TrimSpace(fpart); p != "" {
				fields = append(fields, p)
			}
		}
	}

	sug := models.Suggestion{
		ID:           id,
		CreatedAt:    created,
		Organization: get(2),
		Submitter:    get(3),
		Contact:      get(4),
		Fields:       fields,
		Proposal:     get(6),
		Lat:          parseCoord(get(7)),
		Lon:          parseCoord(get(8)),
		Status:       models.ParseSuggestionStatus(get(9)),
	}
	if t, err := time.Parse(time.RFC3339, get(10)); err == nil {
		sug.ProcessedAt = &t
	}
	return sug
}

func parseCoord(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// writeAll rewrites the whole file through a temp file and rename so a
// crash mid-write never truncates the store.
func (s *CSVStore) writeAll(all []models.Suggestion) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".usulan-*.csv")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	cw := csv.NewWriter(tmp)
	if err := cw.Write(Header); err != nil {
		tmp.Close()
		return fmt.Errorf("write store header: %w", err)
	}
	for _, sug := range all {
		if err := cw.Write(formatRow(sug)); err != nil {
			tmp.Close()
			return fmt.Errorf("write suggestion %d: %w", sug.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

func formatRow(sug models.Suggestion) []string {
	coord := func(v *float64) string {
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	}
	processed := ""
	if sug.ProcessedAt != nil {
		processed = sug.ProcessedAt.UTC().Format(time.RFC3339)
	}

	return []string{
		strconv.Itoa(sug.ID),
		sug.CreatedAt.UTC().Format(time.RFC3339),
		sug.Organization,
		sug.Submitter,
		sug.Contact,
		strings.Join(sug.Fields, fieldsSep),
		sug.Proposal,
		coord(sug.Lat),
		coord(sug.Lon),
		string(sug.Status),
		processed,
	}
}
