package auth

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

// Sessions issues cookie values on login and verifies them at the gate.
// There is no server-side session record in either mode; the cookie is the
// whole session.
type Sessions interface {
	Issue() (string, error)
	Verify(r *http.Request) bool
}

// NewSessions selects the verifier by mode: "presence" (default) accepts any
// non-empty adminToken cookie, "signed" requires an HMAC-validated value.
func NewSessions(mode string, secret []byte) (Sessions, error) {
	switch mode {
	case "", "presence":
		return presenceSessions{}, nil
	case "signed":
		if len(secret) == 0 {
			return nil, fmt.Errorf("SESSION_SECRET is required when SESSION_MODE=signed")
		}
		return &signedSessions{sc: securecookie.New(secret, nil)}, nil
	default:
		return nil, fmt.Errorf("unknown session mode %q", mode)
	}
}

// presenceSessions reproduces the original gate: the cookie's value is never
// validated, only its presence. Any client can forge a non-empty cookie and
// pass. Kept as the default for behavioral parity.
type presenceSessions struct{}

func (presenceSessions) Issue() (string, error) {
	return uuid.NewString(), nil
}

func (presenceSessions) Verify(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	return err == nil && c.Value != ""
}

// signedSessions wraps the token in an HMAC envelope so forged cookies are
// rejected. Same calling contract, stronger check.
type signedSessions struct {
	sc *securecookie.SecureCookie
}

func (s *signedSessions) Issue() (string, error) {
	value, err := s.sc.Encode(CookieName, uuid.NewString())
	if err != nil {
		return "", fmt.Errorf("failed to encode session token: %w", err)
	}
	return value, nil
}

func (s *signedSessions) Verify(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return false
	}
	var token string
	return s.sc.Decode(CookieName, c.Value, &token) == nil
}
