package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"copper_shop/internal/models"
	"copper_shop/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const testTimeout = 5 * time.Second

// mockUsers is a lightweight in-test mock for repository.Users.
type mockUsers struct {
	CreateFn     func(ctx context.Context, email, hash string) (models.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*models.User, error)

	createCalls []struct {
		email string
		hash  string
	}
	getCalls []string
}

func (m *mockUsers) Create(ctx context.Context, email, hash string) (models.User, error) {
	m.createCalls = append(m.createCalls, struct {
		email string
		hash  string
	}{email: email, hash: hash})
	return m.CreateFn(ctx, email, hash)
}

func (m *mockUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.getCalls = append(m.getCalls, email)
	return m.GetByEmailFn(ctx, email)
}

// --- Register tests ---

func TestAuthService_Register_HashesBeforeStore(t *testing.T) {
	mock := &mockUsers{
		CreateFn: func(ctx context.Context, email, hash string) (models.User, error) {
			return models.User{ID: 42, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(mock, testTimeout)

	p, err := svc.Register(context.Background(), "alice@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if p.UserID != 42 || p.Email != "alice@example.com" {
		t.Fatalf("unexpected principal: %+v", p)
	}

	// Ensure Create was called exactly once and received a bcrypt hash,
	// never the plaintext.
	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	call := mock.createCalls[0]
	if call.email != "alice@example.com" {
		t.Errorf("expected email 'alice@example.com', got %q", call.email)
	}
	if call.hash == "hunter2" {
		t.Errorf("expected hashed password, repo received the plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(call.hash), []byte("hunter2")); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
	if cost, err := bcrypt.Cost([]byte(call.hash)); err != nil || cost < 10 {
		t.Errorf("expected bcrypt cost >= 10, got %d (err %v)", cost, err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	mock := &mockUsers{
		CreateFn: func(ctx context.Context, email, hash string) (models.User, error) {
			t.Fatal("Create should not be called for invalid input")
			return models.User{}, nil
		},
	}
	svc := NewAuthService(mock, testTimeout)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "pw"},
		{"blank email", "   ", "pw"},
		{"empty password", "a@b.c", ""},
		{"blank password", "a@b.c", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.email, tt.password)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
	if len(mock.createCalls) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(mock.createCalls))
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	mock := &mockUsers{
		CreateFn: func(ctx context.Context, email, hash string) (models.User, error) {
			return models.User{}, repository.ErrEmailTaken
		},
	}
	svc := NewAuthService(mock, testTimeout)

	_, err := svc.Register(context.Background(), "alice@example.com", "pw123")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("db down")
	mock := &mockUsers{
		CreateFn: func(ctx context.Context, email, hash string) (models.User, error) {
			return models.User{}, storeErr
		},
	}
	svc := NewAuthService(mock, testTimeout)

	_, err := svc.Register(context.Background(), "carl@example.com", "pass123")
	if err == nil {
		t.Fatalf("expected store error, got nil")
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	// A store error is never one of the rejection outcomes.
	if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrEmailTaken) || errors.Is(err, ErrValidation) {
		t.Fatalf("store error must not map to an auth outcome: %v", err)
	}
}

// --- Login tests ---

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcryptCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	user := &models.User{ID: 7, Email: "diana@example.com", PasswordHash: string(hash)}

	mock := &mockUsers{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			if email != "diana@example.com" {
				t.Fatalf("expected email 'diana@example.com', got %q", email)
			}
			return user, nil
		},
	}
	svc := NewAuthService(mock, testTimeout)

	p, err := svc.Login(context.Background(), "diana@example.com", "letmein")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if p.UserID != 7 || p.Email != "diana@example.com" {
		t.Fatalf("unexpected principal: %+v", p)
	}
	if len(mock.getCalls) != 1 {
		t.Fatalf("expected 1 GetByEmail call, got %d", len(mock.getCalls))
	}
}

func TestAuthService_Login_RejectionsAreIndistinguishable(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcryptCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}

	// Both a missing user and a wrong password must resolve to the same
	// sentinel, so a caller cannot tell which check failed.
	tests := []struct {
		name  string
		getFn func(ctx context.Context, email string) (*models.User, error)
	}{
		{
			name: "no such user",
			getFn: func(ctx context.Context, email string) (*models.User, error) {
				return nil, nil
			},
		},
		{
			name: "wrong password",
			getFn: func(ctx context.Context, email string) (*models.User, error) {
				return &models.User{ID: 1, Email: email, PasswordHash: string(hash)}, nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(&mockUsers{GetByEmailFn: tt.getFn}, testTimeout)
			_, err := svc.Login(context.Background(), "eve@example.com", "wrong")
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc := NewAuthService(&mockUsers{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			t.Fatal("store must not be queried for invalid input")
			return nil, nil
		},
	}, testTimeout)

	_, err := svc.Login(context.Background(), "", "pw")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	_, err = svc.Login(context.Background(), "a@b.c", "")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Login_StoreErrorIsNotRejection(t *testing.T) {
	storeErr := errors.New("query failed")
	mock := &mockUsers{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, storeErr
		},
	}
	svc := NewAuthService(mock, testTimeout)

	_, err := svc.Login(context.Background(), "john@example.com", "pw")
	if err == nil {
		t.Fatalf("expected store error, got nil")
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("store error must never look like a credential rejection")
	}
}

func TestAuthService_Login_CorruptHashIsHashingError(t *testing.T) {
	mock := &mockUsers{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 2, Email: email, PasswordHash: "not-a-bcrypt-hash"}, nil
		},
	}
	svc := NewAuthService(mock, testTimeout)

	_, err := svc.Login(context.Background(), "frank@example.com", "pw")
	if !errors.Is(err, ErrHashing) {
		t.Fatalf("expected ErrHashing for corrupt stored hash, got %v", err)
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("hashing backend error must not map to rejection")
	}
}

func TestAuthService_Login_QueryDeadlineIsBounded(t *testing.T) {
	mock := &mockUsers{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			deadline, ok := ctx.Deadline()
			if !ok {
				t.Fatal("expected a deadline on the store context")
			}
			if remaining := time.Until(deadline); remaining > testTimeout {
				t.Fatalf("deadline too far out: %s", remaining)
			}
			return nil, nil
		},
	}
	svc := NewAuthService(mock, testTimeout)
	_, _ = svc.Login(context.Background(), "g@example.com", "pw")
}
