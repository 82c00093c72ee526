package service

import "testing"

func TestCatalogService_All(t *testing.T) {
	c := NewCatalogService()

	all := c.All()
	if len(all) != 5 {
		t.Fatalf("expected 5 products, got %d", len(all))
	}

	// Callers get a copy, not the backing slice.
	all[0].Name = "mutated"
	if c.All()[0].Name == "mutated" {
		t.Fatalf("All must not expose the backing slice")
	}
}

func TestCatalogService_Featured(t *testing.T) {
	c := NewCatalogService()

	featured := c.Featured(3)
	if len(featured) != 3 {
		t.Fatalf("expected 3 featured products, got %d", len(featured))
	}
	for i, p := range featured {
		if p.ID != i+1 {
			t.Fatalf("expected product id %d at position %d, got %d", i+1, i, p.ID)
		}
	}

	if got := c.Featured(100); len(got) != 5 {
		t.Fatalf("Featured should cap at catalog size, got %d", len(got))
	}
}

func TestCatalogService_ByID(t *testing.T) {
	c := NewCatalogService()

	p, ok := c.ByID(3)
	if !ok {
		t.Fatalf("expected product 3 to exist")
	}
	if p.Name != "Classic Invitation Card Set" {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, ok := c.ByID(99); ok {
		t.Fatalf("expected product 99 to be absent")
	}
}
