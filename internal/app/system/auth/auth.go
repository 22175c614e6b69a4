// Package auth implements the admin access gate.
//
// There are no user accounts: the single admin area is protected by one
// shared credential checked against configuration. A cookie session marks
// the browser as signed in so the credential is not re-entered on every
// admin request. This is a placeholder-grade gate, not a security
// boundary.
package auth

import (
	"crypto/subtle"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const isAdminKey = "is_admin"

var (
	store       *sessions.CookieStore
	sessionName = "direktori-session"
)

// InitSessionStore configures the cookie session store. When key is blank
// a random key is generated, which signs out all admins on restart; fine
// for development, logged so production operators notice.
func InitSessionStore(key, name string, secure bool, logger *zap.Logger) {
	if name != "" {
		sessionName = name
	}
	secret := []byte(key)
	if key == "" {
		secret = securecookie.GenerateRandomKey(32)
		logger.Warn("session_key not set; generated a random key (admin sessions reset on restart)")
	}
	store = sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// IsAdmin reports whether the request carries a signed-in admin session.
func IsAdmin(r *http.Request) bool {
	if store == nil {
		return false
	}
	sess, _ := store.Get(r, sessionName)
	is, _ := sess.Values[isAdminKey].(bool)
	return is
}

// SignIn marks the session as admin.
func SignIn(w http.ResponseWriter, r *http.Request) error {
	sess, _ := store.Get(r, sessionName)
	sess.Values[isAdminKey] = true
	return sess.Save(r, w)
}

// SignOut clears the admin session.
func SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := store.Get(r, sessionName)
	delete(sess.Values, isAdminKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// RequireAdmin redirects non-admin requests to the login page, preserving
// the original URI as the return target.
func RequireAdmin(loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsAdmin(r) {
				next.ServeHTTP(w, r)
				return
			}
			ret := url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, loginURL+"?return="+ret, http.StatusSeeOther)
		})
	}
}

// CheckCredential compares the presented credential against the configured
// one. A configured value that looks like a bcrypt hash is verified with
// bcrypt; anything else is compared in constant time.
func CheckCredential(configured, presented string) bool {
	if configured == "" {
		return false
	}
	if strings.HasPrefix(configured, "$2a$") || strings.HasPrefix(configured, "$2b$") || strings.HasPrefix(configured, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(presented)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(presented)) == 1
}
