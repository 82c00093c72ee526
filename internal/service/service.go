package service

import (
	"context"
	"time"

	"copper_shop/internal/models"
	"copper_shop/internal/repository"
)

// Auth verifies and registers credentials. Outcomes are a closed set:
// a Principal on success, one of the sentinel errors for expected
// failures, or any other error for store/hashing breakage.
type Auth interface {
	Login(ctx context.Context, email, password string) (models.Principal, error)
	Register(ctx context.Context, email, password string) (models.Principal, error)
}

// Catalog exposes read-only access to the static product list.
type Catalog interface {
	All() []models.Product
	Featured(n int) []models.Product
	ByID(id int) (*models.Product, bool)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Auth
	Catalog
}

// NewService wires the repository layer into concrete services.
// queryTimeout bounds every store round-trip made by the services.
func NewService(repos *repository.Repository, queryTimeout time.Duration) *Service {
	return &Service{
		Auth:    NewAuthService(repos.Users, queryTimeout),
		Catalog: NewCatalogService(),
	}
}
