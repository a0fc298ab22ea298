// Package auth implements the shared-secret credential check and the
// adminToken session cookie.
package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"
)

const CookieName = "adminToken"

var (
	// ErrNotConfigured means the admin secrets are missing from the
	// environment. This is a server fault, not a bad login.
	ErrNotConfigured = errors.New("admin credentials not configured")
	// ErrBadCredentials covers every mismatch; wrong-username and
	// wrong-password are deliberately indistinguishable.
	ErrBadCredentials = errors.New("invalid credentials")
)

// Credentials verifies submitted username/password pairs against the two
// configured secrets.
type Credentials struct {
	username string
	password string
}

func NewCredentials(username, password string) *Credentials {
	return &Credentials{username: username, password: password}
}

func (c *Credentials) Check(username, password string) error {
	if c.username == "" || c.password == "" {
		return ErrNotConfigured
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.password)) == 1
	if !userOK || !passOK {
		return ErrBadCredentials
	}
	return nil
}

// SessionCookie builds the adminToken cookie for a freshly issued value.
// Secure is set outside local development only.
func SessionCookie(value string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearCookie instructs the browser to drop the session cookie immediately.
func ClearCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}
