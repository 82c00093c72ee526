package service

import "copper_shop/internal/models"

// CatalogService serves the static product list. Products are fixed at
// startup; there is no persistence or mutation path.
type CatalogService struct {
	products []models.Product
}

func NewCatalogService() *CatalogService {
	return &CatalogService{products: defaultProducts}
}

var _ Catalog = (*CatalogService)(nil)

// All returns a copy of the product list so callers cannot mutate it.
func (c *CatalogService) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Featured returns the first n products (the home page shows three).
func (c *CatalogService) Featured(n int) []models.Product {
	if n > len(c.products) {
		n = len(c.products)
	}
	out := make([]models.Product, n)
	copy(out, c.products[:n])
	return out
}

// ByID looks up a product by its identifier.
func (c *CatalogService) ByID(id int) (*models.Product, bool) {
	for i := range c.products {
		if c.products[i].ID == id {
			p := c.products[i]
			return &p, true
		}
	}
	return nil, false
}

var defaultProducts = []models.Product{
	{
		ID:          1,
		Name:        "Elegant Floral Wedding Invitation",
		Type:        "Wedding",
		Price:       28.00,
		Image:       "/static/images/copper-card-1.jpg",
		Description: "Beautiful copper wedding invitation with intricate floral corner etching. Perfect for elegant ceremonies. Features customizable text and date.",
	},
	{
		ID:          2,
		Name:        "Multi-Couple Celebration Plaque",
		Type:        "Wedding",
		Price:       45.00,
		Image:       "/static/images/copper-card-2.jpg",
		Description: "Premium copper plaque featuring multiple couple names with decorative borders. Ideal for wedding seating displays or family celebrations.",
	},
	{
		ID:          3,
		Name:        "Classic Invitation Card Set",
		Type:        "Invitation",
		Price:       22.00,
		Image:       "/static/images/copper-card-3.jpg",
		Description: "Traditional 'You're Invited' copper cards with elegant floral borders. Perfect for weddings, engagements, or formal events. Available in sets.",
	},
	{
		ID:          4,
		Name:        "Family Tree Wedding Plaque",
		Type:        "Wedding",
		Price:       55.00,
		Image:       "/static/images/copper-card-4.jpg",
		Description: "Unique copper wedding invitation featuring family tree design with roses. Honors family heritage while celebrating new beginnings.",
	},
	{
		ID:          5,
		Name:        "Nature-Embossed Wedding Card",
		Type:        "Wedding",
		Price:       32.00,
		Image:       "/static/images/copper-card-5.jpg",
		Description: "Stunning copper card with deep embossed nature patterns creating a wreath border. Modern yet timeless design for your special day.",
	},
}
