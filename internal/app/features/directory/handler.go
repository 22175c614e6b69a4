// internal/app/features/directory/handler.go
package directory

import (
	"net/http"
	"strings"

	httpquery "github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"

	uierrors "github.com/fpl-indonesia/direktori/internal/app/features/errors"
	"github.com/fpl-indonesia/direktori/internal/app/ingest"
	"github.com/fpl-indonesia/direktori/internal/app/system/query"
	"github.com/fpl-indonesia/direktori/internal/app/system/taxonomy"
	"github.com/fpl-indonesia/direktori/internal/domain/models"
)

// Handler serves the public directory pages over the in-memory dataset
// loaded at startup. The dataset is immutable for the process lifetime,
// so handlers read it without locking.
type Handler struct {
	Data   *ingest.Dataset
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a directory Handler.
func NewHandler(data *ingest.Dataset, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Data:   data,
		ErrLog: errLog,
		Log:    logger,
	}
}

// filterParams reads the list filter constraints from the request.
// "kategori" repeats for multi-select; unknown labels are dropped.
func filterParams(r *http.Request) query.Params {
	p := query.Params{
		Name:    httpquery.Search(r, "nama"),
		Address: httpquery.Search(r, "alamat"),
	}

	known := make(map[models.Category]bool, len(taxonomy.All()))
	for _, c := range taxonomy.All() {
		known[c] = true
	}
	for _, raw := range r.URL.Query()["kategori"] {
		c := models.Category(strings.TrimSpace(raw))
		if known[c] {
			p.Categories = append(p.Categories, c)
		}
	}
	return p
}
