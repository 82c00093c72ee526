package handlers

import (
	"errors"
	"net/http"

	"copper_shop/internal/models"
	"copper_shop/internal/service"
	"copper_shop/internal/session"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for both registration and login.
// The original pages post form fields named username/password; JSON
// bodies bind to the same shape.
type credentialSubmission struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var in credentialSubmission
	if err := c.ShouldBind(&in); err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	p, err := h.services.Login(c.Request.Context(), in.Username, in.Password)
	switch {
	case err == nil:
		h.startSession(c, p)
		c.Redirect(http.StatusFound, "/checkout")
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrValidation):
		// One redirect for every rejection; the client never learns
		// which check failed.
		h.log.Infow("login_rejected", "email", in.Username)
		c.Redirect(http.StatusFound, "/login")
	default:
		h.log.Errorw("login_failed", "err", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

func (h *Handler) register(c *gin.Context) {
	var in credentialSubmission
	if err := c.ShouldBind(&in); err != nil {
		c.Redirect(http.StatusFound, "/register")
		return
	}

	p, err := h.services.Register(c.Request.Context(), in.Username, in.Password)
	switch {
	case err == nil:
		h.startSession(c, p)
		c.Redirect(http.StatusFound, "/checkout")
	case errors.Is(err, service.ErrEmailTaken):
		h.log.Infow("register_email_taken", "email", in.Username)
		c.Redirect(http.StatusFound, "/login")
	case errors.Is(err, service.ErrValidation):
		c.Redirect(http.StatusFound, "/register")
	default:
		h.log.Errorw("register_failed", "err", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

func (h *Handler) logout(c *gin.Context) {
	if value, err := c.Cookie(session.CookieName); err == nil {
		if token, ok := h.sessions.TokenFromCookie(value); ok {
			h.sessions.Destroy(token)
		}
	}
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// startSession establishes a session for p and issues the signed
// cookie. Secure is set when the request arrived over TLS.
func (h *Handler) startSession(c *gin.Context, p models.Principal) {
	token := h.sessions.Establish(p)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		session.CookieName,
		h.sessions.CookieValue(token),
		int(h.sessions.TTL().Seconds()),
		"/",
		"",
		c.Request.TLS != nil, // secure
		true,                 // httpOnly
	)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", c.Request.TLS != nil, true)
}
