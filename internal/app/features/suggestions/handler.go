// internal/app/features/suggestions/handler.go
package suggestions

import (
	"go.uber.org/zap"

	uierrors "github.com/fpl-indonesia/direktori/internal/app/features/errors"
	"github.com/fpl-indonesia/direktori/internal/app/ingest"
	sugstore "github.com/fpl-indonesia/direktori/internal/app/store/suggestions"
)

// fieldOptions lists the record columns a correction may target. The
// values are stored verbatim in the "kolom" column.
var fieldOptions = []string{
	"Nama Organisasi",
	"Alamat Organisasi",
	"Kontak Lembaga/Layanan",
	"Email Lembaga",
	"Layanan Yang Diberikan",
	"Koordinat",
}

// Handler serves the public correction-suggestion form.
type Handler struct {
	Store  sugstore.Store
	Data   *ingest.Dataset
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a suggestions Handler.
func NewHandler(store sugstore.Store, data *ingest.Dataset, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Data:   data,
		ErrLog: errLog,
		Log:    logger,
	}
}
