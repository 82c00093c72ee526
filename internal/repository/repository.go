package repository

import (
	"context"
	"database/sql"

	"copper_shop/internal/models"
)

// Users is the credential store contract. GetByEmail returns (nil, nil)
// when no row matches; Create returns ErrEmailTaken on a duplicate email.
type Users interface {
	Create(ctx context.Context, email, passwordHash string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type Repository struct {
	Users Users
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
	}
}
