package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/fpl-indonesia/direktori/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	if got := htmlsanitize.Sanitize("Layanan konseling 24 jam"); got != "Layanan konseling 24 jam" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	got := htmlsanitize.Sanitize("<p>Halo</p><script>alert('xss')</script>")
	if strings.Contains(got, "script") {
		t.Errorf("expected script removed, got %q", got)
	}
	if !strings.Contains(got, "Halo") {
		t.Errorf("expected text content preserved, got %q", got)
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	input := `<a href="javascript:alert('xss')">Klik</a>`
	if got := htmlsanitize.Sanitize(input); got == input {
		t.Error("expected javascript: href to be removed")
	}
}

func TestSanitizeStrict_StripsAllMarkup(t *testing.T) {
	got := htmlsanitize.SanitizeStrict("<b>Yayasan</b> <i>Pulih</i>")
	if got != "Yayasan Pulih" {
		t.Errorf("expected all markup stripped, got %q", got)
	}
}
