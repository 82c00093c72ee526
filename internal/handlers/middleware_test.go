package handlers

import (
	"net/http"
	"testing"
	"time"

	"copper_shop/internal/models"
	"copper_shop/internal/session"
)

func TestRequireUser_AnonymousIsRedirectedToLogin(t *testing.T) {
	r := newTestRouter(newTestServices(&mockAuth{}), newTestSessions())

	w := get(r, "/checkout")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("anonymous checkout: status=%d location=%q", w.Code, w.Header().Get("Location"))
	}
}

func TestSessionMiddleware_ValidCookieAttachesPrincipal(t *testing.T) {
	sessions := newTestSessions()
	r := newTestRouter(newTestServices(&mockAuth{}), sessions)

	token := sessions.Establish(models.Principal{UserID: 3, Email: "carol@example.com"})
	ck := &http.Cookie{Name: session.CookieName, Value: sessions.CookieValue(token)}

	w := get(r, "/checkout", ck)
	if w.Code != http.StatusOK {
		t.Fatalf("checkout with valid session: status=%d", w.Code)
	}
}

func TestSessionMiddleware_TamperedCookieIsAnonymous(t *testing.T) {
	sessions := newTestSessions()
	r := newTestRouter(newTestServices(&mockAuth{}), sessions)

	token := sessions.Establish(models.Principal{UserID: 3, Email: "carol@example.com"})

	// Unsigned raw token, and a token signed with the wrong key, are
	// both treated as no session at all.
	other := session.NewManager(session.NewMemoryStore(), "wrong-secret", time.Hour)
	for _, value := range []string{token, other.CookieValue(token), "garbage"} {
		ck := &http.Cookie{Name: session.CookieName, Value: value}
		w := get(r, "/checkout", ck)
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
			t.Fatalf("cookie %q: status=%d location=%q", value, w.Code, w.Header().Get("Location"))
		}
	}
}

func TestSessionMiddleware_ExpiredSessionIsAnonymous(t *testing.T) {
	sessions := session.NewManager(session.NewMemoryStore(), "test-secret", time.Nanosecond)
	r := newTestRouter(newTestServices(&mockAuth{}), sessions)

	token := sessions.Establish(models.Principal{UserID: 4, Email: "dave@example.com"})
	time.Sleep(time.Millisecond)

	ck := &http.Cookie{Name: session.CookieName, Value: sessions.CookieValue(token)}
	w := get(r, "/checkout", ck)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("expired session: status=%d location=%q", w.Code, w.Header().Get("Location"))
	}
}
