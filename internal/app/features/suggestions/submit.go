// internal/app/features/suggestions/submit.go
package suggestions

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	sugstore "github.com/fpl-indonesia/direktori/internal/app/store/suggestions"
	"github.com/fpl-indonesia/direktori/internal/app/system/htmlsanitize"
)

// ServeSubmit handles POST /usulan. Both outcomes redirect back to the
// form (post/redirect/get) with a query flag describing the result.
func (h *Handler) ServeSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	lat, latErr := parseCoordField(r.PostForm.Get("lat"))
	lon, lonErr := parseCoordField(r.PostForm.Get("lon"))
	if latErr != nil || lonErr != nil {
		h.redirectBack(w, r, url.Values{"galat": {"koordinat"}})
		return
	}

	in := sugstore.NewSuggestion{
		Organization: htmlsanitize.SanitizeStrict(r.PostForm.Get("organisasi")),
		Submitter:    htmlsanitize.SanitizeStrict(r.PostForm.Get("pengaju")),
		Contact:      htmlsanitize.SanitizeStrict(r.PostForm.Get("kontak")),
		Fields:       cleanFields(r.PostForm["kolom"]),
		Proposal:     htmlsanitize.SanitizeStrict(r.PostForm.Get("usulan")),
		Lat:          lat,
		Lon:          lon,
	}

	sug, err := h.Store.Submit(r.Context(), in)
	switch {
	case errors.Is(err, sugstore.ErrNoContent):
		h.redirectBack(w, r, url.Values{"galat": {"kosong"}})
		return
	case err != nil:
		h.Log.Error("suggestion submit failed", zap.Error(err))
		h.redirectBack(w, r, url.Values{"galat": {"simpan"}})
		return
	}

	h.Log.Info("suggestion submitted",
		zap.Int("id", sug.ID),
		zap.String("organisasi", sug.Organization))
	h.redirectBack(w, r, url.Values{"terkirim": {"1"}})
}

func (h *Handler) redirectBack(w http.ResponseWriter, r *http.Request, q url.Values) {
	http.Redirect(w, r, "/usulan?"+q.Encode(), http.StatusSeeOther)
}

// parseCoordField parses an optional decimal coordinate. Blank means
// not supplied.
func parseCoordField(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// cleanFields keeps only known column names, preserving form order.
func cleanFields(raw []string) []string {
	known := make(map[string]bool, len(fieldOptions))
	for _, f := range fieldOptions {
		known[f] = true
	}
	var out []string
	for _, f := range raw {
		f = strings.TrimSpace(f)
		if known[f] {
			out = append(out, f)
		}
	}
	return out
}
