// internal/app/features/admin/handler.go
package admin

import (
	"go.uber.org/zap"

	uierrors "github.com/fpl-indonesia/direktori/internal/app/features/errors"
	sugstore "github.com/fpl-indonesia/direktori/internal/app/store/suggestions"
)

// Handler serves the admin area: sign in, suggestion review, and the
// suggestion export.
type Handler struct {
	Store    sugstore.Store
	Password string // configured admin credential, plain or bcrypt hash
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs an admin Handler.
func NewHandler(store sugstore.Store, password string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    store,
		Password: password,
		ErrLog:   errLog,
		Log:      logger,
	}
}
