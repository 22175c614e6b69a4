// internal/testutil/testutil.go
package testutil

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fpl-indonesia/direktori/internal/app/store/suggestions"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TempSuggestionStore returns a CSV suggestion store backed by a file
// in a per-test temp directory.
func TempSuggestionStore(t *testing.T) *suggestions.CSVStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "usulan.csv")
	return suggestions.NewCSVStore(path, zap.NewNop())
}
