package handlers

import (
	"net/http"

	"copper_shop/internal/models"
	"copper_shop/internal/session"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// sessionMiddleware restores the authenticated principal from the
// session cookie, if any. Requests without a valid session proceed
// anonymously; gating happens in requireUser.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	value, err := c.Cookie(session.CookieName)
	if err != nil {
		c.Next()
		return
	}

	token, ok := h.sessions.TokenFromCookie(value)
	if !ok {
		// Forged or malformed cookie; never reaches the session store.
		c.Next()
		return
	}

	if p, ok := h.sessions.Resolve(token); ok {
		c.Set(principalKey, p)
	}
	c.Next()
}

// requireUser gates routes that need an authenticated session.
func (h *Handler) requireUser(c *gin.Context) {
	if _, ok := currentPrincipal(c); !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}

// currentPrincipal returns the principal attached by sessionMiddleware.
func currentPrincipal(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}
