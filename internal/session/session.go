// Package session mints and validates the per-browser session identifiers
// carried in a cookie. The identifier is only a lookup key for the profile
// store; it carries no other state.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// CookieName is the session cookie set on first contact.
const CookieName = "certpath_session"

// Manager issues session ids and validates incoming cookies. With a secret
// configured the cookie value is "id.sig", sig being the hex HMAC-SHA256
// of the id; without one the id travels unsigned, which only weakens
// confidentiality of the stored profile, not correctness.
type Manager struct {
	secret []byte
}

// NewManager creates a Manager. An empty secret disables signing.
func NewManager(secret string) *Manager {
	m := &Manager{}
	if secret != "" {
		m.secret = []byte(secret)
	}
	return m
}

// Signed reports whether session cookies are integrity protected.
func (m *Manager) Signed() bool {
	return len(m.secret) > 0
}

// SessionID returns the session id for the request. A missing, malformed,
// or tampered cookie mints a fresh id and sets the cookie on the response.
func (m *Manager) SessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil {
		if id, ok := m.Decode(c.Value); ok {
			return id
		}
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    m.Encode(id),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// Encode renders an id as a cookie value, signing it when a secret is set.
func (m *Manager) Encode(id string) string {
	if !m.Signed() {
		return id
	}
	return id + "." + m.sign(id)
}

// Decode validates a cookie value and returns the embedded id. The id must
// be a well-formed UUID; in signed mode the signature must match.
func (m *Manager) Decode(value string) (string, bool) {
	id := value
	if m.Signed() {
		var sig string
		var ok bool
		id, sig, ok = strings.Cut(value, ".")
		if !ok {
			return "", false
		}
		if subtle.ConstantTimeCompare([]byte(sig), []byte(m.sign(id))) != 1 {
			return "", false
		}
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func (m *Manager) sign(id string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(id))
	return hex.EncodeToString(mac.Sum(nil))
}
