// internal/testutil/templates.go
package testutil

import (
	"sync"
	"testing"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/fpl-indonesia/direktori/internal/app/resources"

	// Register feature template sets for rendering in handler tests.
	_ "github.com/fpl-indonesia/direktori/internal/app/features/admin"
	_ "github.com/fpl-indonesia/direktori/internal/app/features/directory"
	_ "github.com/fpl-indonesia/direktori/internal/app/features/errors"
	_ "github.com/fpl-indonesia/direktori/internal/app/features/suggestions"
)

var bootOnce sync.Once

// InitTemplates boots the template engine once for the whole test
// binary, mirroring what bootstrap does at startup. Handler tests that
// render pages must call this first.
func InitTemplates(t *testing.T) {
	t.Helper()

	var bootErr error
	bootOnce.Do(func() {
		resources.LoadSharedTemplates()

		logger := zap.NewNop()
		eng := templates.New(false)
		if err := eng.Boot(logger); err != nil {
			bootErr = err
			return
		}
		templates.UseEngine(eng, logger)
	})
	if bootErr != nil {
		t.Fatalf("template engine boot failed: %v", bootErr)
	}
}
