package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestCheckCredential_PlainEquality(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		presented  string
		want       bool
	}{
		{"match", "rahasia-bersama", "rahasia-bersama", true},
		{"mismatch", "rahasia-bersama", "salah", false},
		{"case sensitive", "Rahasia", "rahasia", false},
		{"blank configured always fails", "", "", false},
		{"blank presented", "rahasia", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckCredential(tt.configured, tt.presented); got != tt.want {
				t.Errorf("CheckCredential(%q, %q) = %v, want %v", tt.configured, tt.presented, got, tt.want)
			}
		})
	}
}

func TestCheckCredential_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia-bersama"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt.GenerateFromPassword: %v", err)
	}

	if !CheckCredential(string(hash), "rahasia-bersama") {
		t.Error("expected bcrypt hash to verify the original credential")
	}
	if CheckCredential(string(hash), "salah") {
		t.Error("expected wrong credential to fail against bcrypt hash")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	InitSessionStore("test-key-0123456789", "direktori-test", false, zap.NewNop())

	// Sign in and capture the cookie.
	signinReq := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	rec := httptest.NewRecorder()
	if err := SignIn(rec, signinReq); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("SignIn set no cookies")
	}

	// A request carrying the cookie is recognized as admin.
	r := httptest.NewRequest(http.MethodGet, "/admin/usulan", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	if !IsAdmin(r) {
		t.Error("expected request with session cookie to be admin")
	}

	// A bare request is not.
	if IsAdmin(httptest.NewRequest(http.MethodGet, "/admin/usulan", nil)) {
		t.Error("expected request without cookie to not be admin")
	}
}

func TestRequireAdmin_RedirectsAnonymous(t *testing.T) {
	InitSessionStore("test-key-0123456789", "direktori-test", false, zap.NewNop())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := RequireAdmin("/admin/login")(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/usulan", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc == "" || loc[:12] != "/admin/login" {
		t.Errorf("Location = %q, want /admin/login redirect", loc)
	}
}
