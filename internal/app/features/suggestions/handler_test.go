package suggestions_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	uierrors "github.com/fpl-indonesia/direktori/internal/app/features/errors"
	"github.com/fpl-indonesia/direktori/internal/app/features/suggestions"
	sugstore "github.com/fpl-indonesia/direktori/internal/app/store/suggestions"
	"github.com/fpl-indonesia/direktori/internal/domain/models"
	"github.com/fpl-indonesia/direktori/internal/testutil"
)

func newHandler(t *testing.T) (*suggestions.Handler, sugstore.Store) {
	t.Helper()
	logger := zap.NewNop()
	store := testutil.TempSuggestionStore(t)
	h := suggestions.NewHandler(store, testutil.SampleDataset(), uierrors.NewErrorLogger(logger), logger)
	return h, store
}

func postForm(h *suggestions.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/usulan", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeSubmit(rec, req)
	return rec
}

func TestServeSubmit_StoresPendingSuggestion(t *testing.T) {
	h, store := newHandler(t)

	rec := postForm(h, url.Values{
		"organisasi": {"Yayasan Pulih"},
		"pengaju":    {"Sari"},
		"kontak":     {"sari@example.org"},
		"kolom":      {"Alamat Organisasi", "Kontak Lembaga/Layanan"},
		"usulan":     {"Alamat baru: Jl. Teuku Umar 10"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "terkirim=1") {
		t.Errorf("redirect location = %q, want terkirim flag", loc)
	}

	all, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("stored %d suggestions, want 1", len(all))
	}
	got := all[0]
	if got.ID != 1 || got.Status != models.StatusPending {
		t.Errorf("stored suggestion = id %d status %q, want id 1 pending", got.ID, got.Status)
	}
	if len(got.Fields) != 2 {
		t.Errorf("stored fields = %v, want both selected columns", got.Fields)
	}
}

func TestServeSubmit_RejectsEmptyProposal(t *testing.T) {
	h, store := newHandler(t)

	rec := postForm(h, url.Values{
		"organisasi": {"Yayasan Pulih"},
		"usulan":     {"   "},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "galat=kosong") {
		t.Errorf("redirect location = %q, want galat=kosong", loc)
	}

	all, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("rejected submission should not be stored, got %d rows", len(all))
	}
}

func TestServeSubmit_CoordinatesAloneAreActionable(t *testing.T) {
	h, store := newHandler(t)

	rec := postForm(h, url.Values{
		"organisasi": {"UPTD PPA Jawa Timur"},
		"lat":        {"-7.2575"},
		"lon":        {"112.7521"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "terkirim=1") {
		t.Errorf("redirect location = %q, want terkirim flag", loc)
	}

	all, _ := store.List(context.Background())
	if len(all) != 1 || all[0].Lat == nil || *all[0].Lat != -7.2575 {
		t.Fatalf("coordinate-only submission not stored correctly: %+v", all)
	}
}

func TestServeSubmit_BadCoordinate(t *testing.T) {
	h, store := newHandler(t)

	rec := postForm(h, url.Values{
		"usulan": {"koordinat salah"},
		"lat":    {"tujuh koma dua"},
	})

	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "galat=koordinat") {
		t.Errorf("redirect location = %q, want galat=koordinat", loc)
	}

	all, _ := store.List(context.Background())
	if len(all) != 0 {
		t.Errorf("invalid coordinate submission should not be stored")
	}
}

func TestServeSubmit_StripsMarkup(t *testing.T) {
	h, store := newHandler(t)

	postForm(h, url.Values{
		"organisasi": {"<script>alert(1)</script>Pulih"},
		"usulan":     {"Alamat <b>baru</b>"},
	})

	all, _ := store.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("stored %d suggestions, want 1", len(all))
	}
	if strings.Contains(all[0].Organization, "<script>") {
		t.Errorf("organization kept script markup: %q", all[0].Organization)
	}
	if strings.Contains(all[0].Proposal, "<b>") {
		t.Errorf("proposal kept markup: %q", all[0].Proposal)
	}
}

func TestServeForm(t *testing.T) {
	testutil.InitTemplates(t)
	h, _ := newHandler(t)

	req := httptest.NewRequest("GET", "/usulan?organisasi=Yayasan+Pulih", nil)
	rec := httptest.NewRecorder()

	h.ServeForm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `value="Yayasan Pulih"`) {
		t.Error("form should pre-fill the organization from the query")
	}
	if !strings.Contains(body, "Layanan Yang Diberikan") {
		t.Error("form should list the correctable columns")
	}
}
