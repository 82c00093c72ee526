// Package session establishes, resolves, and destroys authenticated
// sessions. A session is an opaque server-side record keyed by a random
// token; the client only ever holds the token, MAC-signed, in a cookie.
package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"copper_shop/internal/models"

	"github.com/google/uuid"
)

// CookieName is the session cookie issued to clients.
const CookieName = "session_id"

// Manager owns the session lifecycle: Establish on login/registration,
// Resolve on each request (refreshing the inactivity deadline), Destroy
// on logout. Expired records are swept by Run.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the inactivity window, e.g. for deriving cookie Max-Age.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Establish creates a session for p and returns its opaque token.
func (m *Manager) Establish(p models.Principal) string {
	token := uuid.NewString()
	m.store.Put(token, Record{Principal: p, Deadline: m.now().Add(m.ttl)})
	return token
}

// Resolve returns the principal for token, refreshing the inactivity
// deadline. An unknown or expired token resolves to false; expired
// records are dropped on touch.
func (m *Manager) Resolve(token string) (models.Principal, bool) {
	rec, ok := m.store.Get(token)
	if !ok {
		return models.Principal{}, false
	}
	now := m.now()
	if !rec.Deadline.After(now) {
		m.store.Delete(token)
		return models.Principal{}, false
	}
	rec.Deadline = now.Add(m.ttl)
	m.store.Put(token, rec)
	return rec.Principal, true
}

// Destroy removes the session for token. Destroying an unknown token is
// a no-op.
func (m *Manager) Destroy(token string) {
	m.store.Delete(token)
}

// PurgeExpired drops every expired session and returns the count.
func (m *Manager) PurgeExpired() int {
	return m.store.DeleteExpired(m.now())
}

// Run sweeps expired sessions on every tick until ctx is canceled.
// Start it from main as a background goroutine.
func (m *Manager) Run(ctx context.Context, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.PurgeExpired()
		}
	}
}

// CookieValue wraps token with an HMAC-SHA256 tag keyed by the session
// secret, so a tampered cookie is rejected before the store is consulted.
func (m *Manager) CookieValue(token string) string {
	return token + "." + m.sign(token)
}

// TokenFromCookie verifies the MAC on a cookie value and returns the
// embedded token. Malformed or forged values return false.
func (m *Manager) TokenFromCookie(value string) (string, bool) {
	token, tag, ok := strings.Cut(value, ".")
	if !ok || token == "" {
		return "", false
	}
	if !hmac.Equal([]byte(tag), []byte(m.sign(token))) {
		return "", false
	}
	return token, true
}

func (m *Manager) sign(token string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
