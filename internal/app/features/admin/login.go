// internal/app/features/admin/login.go
package admin

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/fpl-indonesia/direktori/internal/app/system/auth"
	"github.com/fpl-indonesia/direktori/internal/app/system/viewdata"
)

type loginPageData struct {
	viewdata.BaseVM
	Failed    bool
	ReturnURL string
}

// ServeLoginForm handles GET /admin/login.
func (h *Handler) ServeLoginForm(w http.ResponseWriter, r *http.Request) {
	data := loginPageData{
		BaseVM:    viewdata.NewBaseVM(r, "Masuk Admin", "/"),
		Failed:    r.URL.Query().Get("galat") == "1",
		ReturnURL: safeReturn(r.URL.Query().Get("return")),
	}

	templates.Render(w, r, "admin_login", data)
}

// HandleLogin handles POST /admin/login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	returnURL := safeReturn(r.PostForm.Get("return"))

	if !auth.CheckCredential(h.Password, r.PostForm.Get("sandi")) {
		h.Log.Warn("admin login rejected", zap.String("remote", r.RemoteAddr))
		q := url.Values{"galat": {"1"}}
		if returnURL != "" {
			q.Set("return", returnURL)
		}
		http.Redirect(w, r, "/admin/login?"+q.Encode(), http.StatusSeeOther)
		return
	}

	if err := auth.SignIn(w, r); err != nil {
		h.ErrLog.LogServerError(w, r, "admin sign-in failed", err, "Gagal membuat sesi. Silakan coba lagi.", "/admin/login")
		return
	}

	if returnURL == "" {
		returnURL = "/admin/usulan"
	}
	http.Redirect(w, r, returnURL, http.StatusSeeOther)
}

// HandleLogout handles POST /admin/logout.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r); err != nil {
		h.Log.Warn("admin sign-out failed", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// safeReturn accepts only local paths so the return parameter cannot
// redirect off-site.
func safeReturn(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || !strings.HasPrefix(s, "/") || strings.HasPrefix(s, "//") {
		return ""
	}
	return s
}
