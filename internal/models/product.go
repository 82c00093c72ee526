package models

// Product is a catalog item. The catalog is a static in-memory list;
// products are never persisted or mutated at runtime.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"` // Wedding | Invitation
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}
