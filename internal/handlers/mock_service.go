package handlers

import (
	"context"
	"time"

	"copper_shop/internal/logger"
	"copper_shop/internal/models"
	"copper_shop/internal/service"
	"copper_shop/internal/session"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginPrincipal    models.Principal
	loginErr          error
	registerPrincipal models.Principal
	registerErr       error

	lastLoginEmail       string
	lastLoginPassword    string
	lastRegisterEmail    string
	lastRegisterPassword string
	loginCalls           int
	registerCalls        int
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (models.Principal, error) {
	m.loginCalls++
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginPrincipal, m.loginErr
}

func (m *mockAuth) Register(ctx context.Context, email, password string) (models.Principal, error) {
	m.registerCalls++
	m.lastRegisterEmail = email
	m.lastRegisterPassword = password
	return m.registerPrincipal, m.registerErr
}

// ---- Test wiring ----

// newTestServices composes mocked auth with the real static catalog.
func newTestServices(auth service.Auth) *service.Service {
	return &service.Service{
		Auth:    auth,
		Catalog: service.NewCatalogService(),
	}
}

func newTestSessions() *session.Manager {
	return session.NewManager(session.NewMemoryStore(), "test-secret", time.Hour)
}

func newTestRouter(s *service.Service, sessions *session.Manager) *gin.Engine {
	h := NewHandler(s, sessions, logger.Get("error"))
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
