package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"copper_shop/internal/models"
	"copper_shop/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt work factor for newly stored hashes.
const bcryptCost = bcrypt.DefaultCost

// Domain errors for auth flows. Anything else returned by the service
// is a store or hashing failure and must surface as a server error,
// never as an authentication outcome.
var (
	ErrValidation         = errors.New("missing email or password")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = repository.ErrEmailTaken
	ErrHashing            = errors.New("password hashing failure")
)

// dummyHash is compared against the submitted password when no user
// row exists, so a lookup miss costs the same as a wrong password.
// The comparison result is discarded.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcryptCost)

// AuthService verifies and registers credentials against the user store.
type AuthService struct {
	users        repository.Users
	queryTimeout time.Duration

	// hashSem bounds concurrent bcrypt work so a burst of logins
	// cannot saturate every CPU.
	hashSem chan struct{}
}

func NewAuthService(users repository.Users, queryTimeout time.Duration) *AuthService {
	return &AuthService{
		users:        users,
		queryTimeout: queryTimeout,
		hashSem:      make(chan struct{}, runtime.GOMAXPROCS(0)),
	}
}

var _ Auth = (*AuthService)(nil)

// Login resolves a credential submission to exactly one outcome:
// a Principal, ErrInvalidCredentials (no such user OR wrong password,
// indistinguishable to the caller), or a store/hashing error. A store
// error is never interpreted as rejection or success.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.Principal, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.Principal{}, ErrValidation
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	u, err := s.users.GetByEmail(lookupCtx, email)
	if err != nil {
		return models.Principal{}, fmt.Errorf("look up user: %w", err)
	}
	if u == nil {
		// Burn a comparison anyway; see dummyHash.
		_ = s.compare(dummyHash, password)
		return models.Principal{}, ErrInvalidCredentials
	}

	if err := s.compare([]byte(u.PasswordHash), password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return models.Principal{}, ErrInvalidCredentials
		}
		return models.Principal{}, fmt.Errorf("%w: %v", ErrHashing, err)
	}

	return u.Principal(), nil
}

// Register hashes the password, stores the new user, and returns the
// authenticated Principal. The plaintext never reaches the store: the
// hash is derived before any persistence. A taken email yields
// ErrEmailTaken; store errors propagate and never fall back to a
// fabricated session.
func (s *AuthService) Register(ctx context.Context, email, password string) (models.Principal, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return models.Principal{}, ErrValidation
	}

	hash, err := s.hash(password)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %v", ErrHashing, err)
	}

	insertCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	u, err := s.users.Create(insertCtx, email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return models.Principal{}, ErrEmailTaken
		}
		return models.Principal{}, fmt.Errorf("create user: %w", err)
	}

	return u.Principal(), nil
}

// hash derives a salted bcrypt hash under the concurrency limit.
func (s *AuthService) hash(password string) (string, error) {
	s.hashSem <- struct{}{}
	defer func() { <-s.hashSem }()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// compare verifies password against hash under the concurrency limit.
func (s *AuthService) compare(hash []byte, password string) error {
	s.hashSem <- struct{}{}
	defer func() { <-s.hashSem }()

	return bcrypt.CompareHashAndPassword(hash, []byte(password))
}
