package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const featuredCount = 3

// viewData merges page-specific values with the signed-in user (or nil)
// so every template can render the nav.
func viewData(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	if p, ok := currentPrincipal(c); ok {
		data["User"] = p
	} else {
		data["User"] = nil
	}
	return data
}

func (h *Handler) home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", viewData(c, gin.H{
		"Featured": h.services.Featured(featuredCount),
	}))
}

func (h *Handler) products(c *gin.Context) {
	c.HTML(http.StatusOK, "products.tmpl", viewData(c, gin.H{
		"Products": h.services.All(),
	}))
}

func (h *Handler) productDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Product not found")
		return
	}
	product, ok := h.services.ByID(id)
	if !ok {
		c.String(http.StatusNotFound, "Product not found")
		return
	}
	c.HTML(http.StatusOK, "product_detail.tmpl", viewData(c, gin.H{
		"Product": product,
	}))
}

func (h *Handler) cartPage(c *gin.Context) {
	c.HTML(http.StatusOK, "cart.tmpl", viewData(c, nil))
}

func (h *Handler) checkoutPage(c *gin.Context) {
	c.HTML(http.StatusOK, "checkout.tmpl", viewData(c, nil))
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", viewData(c, nil))
}

func (h *Handler) registerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", viewData(c, nil))
}
