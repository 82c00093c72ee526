package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"copper_shop/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

// created_at is bound explicitly so both drivers round-trip the same value.
const (
	insertUserSQL        = `INSERT INTO users (email, password_hash, created_at) VALUES ($1, $2, $3) RETURNING id`
	selectUserByEmailSQL = `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`
)

// Create inserts a new user and returns the stored row. A duplicate
// email yields ErrEmailTaken; any other driver error is wrapped with
// the failing operation.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (models.User, error) {
	u := models.User{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	err := r.db.QueryRowContext(ctx, insertUserSQL, u.Email, u.PasswordHash, u.CreatedAt).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// GetByEmail fetches a user by exact email match. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByEmailSQL, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}
