// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/fpl-indonesia/direktori/internal/app/system/auth"
)

// SiteName is the display name used in page titles and the header.
const SiteName = "Direktori Layanan FPL"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string

	// Admin context (from the session cookie)
	IsAdmin bool

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
}

// NewBaseVM builds the common view model for a page. backFallback is
// used when no safe back URL can be resolved from the request.
func NewBaseVM(r *http.Request, title, backFallback string) BaseVM {
	return BaseVM{
		SiteName:    SiteName,
		IsAdmin:     auth.IsAdmin(r),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backFallback),
		CurrentPath: httpnav.CurrentPath(r),
	}
}
