package directory_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/fpl-indonesia/direktori/internal/app/features/directory"
	uierrors "github.com/fpl-indonesia/direktori/internal/app/features/errors"
	"github.com/fpl-indonesia/direktori/internal/testutil"
)

func newHandler(t *testing.T) *directory.Handler {
	t.Helper()
	logger := zap.NewNop()
	return directory.NewHandler(testutil.SampleDataset(), uierrors.NewErrorLogger(logger), logger)
}

func TestServeList_FiltersByAddress(t *testing.T) {
	testutil.InitTemplates(t)
	h := newHandler(t)

	req := httptest.NewRequest("GET", "/?alamat=Surabaya", nil)
	rec := httptest.NewRecorder()

	directory.Routes(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "UPTD PPA Jawa Timur") {
		t.Error("filtered list should contain the Surabaya record")
	}
	if strings.Contains(body, "<td>Jakarta Selatan") {
		t.Error("filtered list should not contain Jakarta rows")
	}
	if !strings.Contains(body, "Menampilkan 1 dari 3") {
		t.Error("list should report filtered and total counts")
	}
}

func TestServeList_FiltersByCategory(t *testing.T) {
	testutil.InitTemplates(t)
	h := newHandler(t)

	q := url.Values{"kategori": {"Hukum / Litigasi"}}
	req := httptest.NewRequest("GET", "/?"+q.Encode(), nil)
	rec := httptest.NewRecorder()

	directory.Routes(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "LBH APIK Jakarta") {
		t.Error("category filter should keep the legal-aid record")
	}
	if strings.Contains(body, "<td>Surabaya") {
		t.Error("category filter should drop non-matching rows")
	}
}

func TestServeDetail(t *testing.T) {
	testutil.InitTemplates(t)
	h := newHandler(t)

	req := httptest.NewRequest("GET", "/organisasi/0", nil)
	req = testutil.WithChiURLParam(req, "index", "0")
	rec := httptest.NewRecorder()

	h.ServeDetail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Yayasan Pulih") {
		t.Error("detail page should show the organization name")
	}
}

func TestServeDetail_UnknownIndex(t *testing.T) {
	testutil.InitTemplates(t)
	h := newHandler(t)

	for _, idx := range []string{"99", "-1", "abc"} {
		req := httptest.NewRequest("GET", "/organisasi/"+idx, nil)
		req = testutil.WithChiURLParam(req, "index", idx)
		rec := httptest.NewRecorder()

		h.ServeDetail(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("index %q: status = %d, want %d", idx, rec.Code, http.StatusNotFound)
		}
	}
}

func TestServeSearch(t *testing.T) {
	testutil.InitTemplates(t)
	h := newHandler(t)

	req := httptest.NewRequest("GET", "/cari?q=konseling", nil)
	rec := httptest.NewRecorder()

	h.ServeSearch(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Yayasan Pulih") || !strings.Contains(body, "UPTD PPA Jawa Timur") {
		t.Error("search should list records offering counseling")
	}
	if strings.Contains(body, "LBH APIK") {
		t.Error("search should not list records without a keyword hit")
	}
}

func TestServeExportCSV(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest("GET", "/export.csv?alamat=Surabaya", nil)
	rec := httptest.NewRecorder()

	h.ServeExportCSV(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("Content-Type: got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition: got %q", cd)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "\xEF\xBB\xBF") {
		t.Error("export should start with a UTF-8 BOM")
	}
	if !strings.Contains(body, "Nama Organisasi") {
		t.Error("export should include the header row")
	}
	if !strings.Contains(body, "UPTD PPA Jawa Timur") {
		t.Error("export should include the filtered record")
	}
	if strings.Contains(body, "Yayasan Pulih") {
		t.Error("export should honor the address filter")
	}
}
