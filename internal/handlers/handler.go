package handlers

import (
	"html/template"
	"io/fs"
	"net/http"

	"copper_shop/internal/logger"
	"copper_shop/internal/service"
	"copper_shop/internal/session"
	"copper_shop/web"

	"github.com/gin-gonic/gin"
)

// Handler wires the HTTP layer to services, sessions, and logging.
type Handler struct {
	services *service.Service
	sessions *session.Manager
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, sessions *session.Manager, log *logger.Logger) *Handler {
	return &Handler{services: services, sessions: sessions, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.sessionMiddleware)

	router.SetHTMLTemplate(template.Must(template.ParseFS(web.FS, "templates/*.tmpl")))
	router.StaticFS("/static", http.FS(mustSub(web.FS, "static")))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerPageRoutes(router)
	h.registerAuthRoutes(router)

	return router
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	r.GET("/", h.home)
	r.GET("/products", h.products)
	r.GET("/product/:id", h.productDetail)
	r.GET("/cart", h.cartPage)
	r.GET("/checkout", h.requireUser, h.checkoutPage)
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/login", h.loginPage)
	r.POST("/login", h.login)
	r.GET("/register", h.registerPage)
	r.POST("/register", h.register)
	r.GET("/logout", h.logout)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func mustSub(f fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(f, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
