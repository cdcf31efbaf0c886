package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"ecotrack/audit-portal/audit-portal-backend/internal/storage"
)

// Service manages the account list and the current session. The session,
// once established, is persisted and survives process restarts; it has no
// expiry.
type Service struct {
	store  storage.Store
	logger *zap.Logger
}

func NewService(store storage.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Register creates an account and establishes it as the current session.
// Passwords are stored as bcrypt hashes.
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}

	accounts, err := s.loadAccounts()
	if err != nil {
		return nil, err
	}

	for _, a := range accounts {
		if a.Email == email {
			return nil, ErrDuplicateAccount
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &Account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	accounts = append(accounts, account)

	if err := s.store.Set(storage.KeyUsers, accounts); err != nil {
		return nil, fmt.Errorf("failed to persist account list: %w", err)
	}

	user := account.Public()
	if err := s.store.Set(storage.KeyCurrentUser, user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.Info("Registered account", zap.String("user_id", account.ID))
	return user, nil
}

// Login matches email and password against the stored account list and
// establishes the session.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	accounts, err := s.loadAccounts()
	if err != nil {
		return nil, err
	}

	var match *Account
	for _, a := range accounts {
		if a.Email == email {
			match = a
			break
		}
	}
	if match == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(match.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user := match.Public()
	if err := s.store.Set(storage.KeyCurrentUser, user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return user, nil
}

// Logout clears the session identity. The account list is untouched.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Remove(storage.KeyCurrentUser)
}

// Current rehydrates the persisted session, or returns nil when no
// session exists.
func (s *Service) Current(ctx context.Context) (*User, error) {
	var user User
	ok, err := s.store.Get(storage.KeyCurrentUser, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *Service) loadAccounts() ([]*Account, error) {
	var accounts []*Account
	if _, err := s.store.Get(storage.KeyUsers, &accounts); err != nil {
		return nil, fmt.Errorf("failed to load account list: %w", err)
	}
	return accounts, nil
}
