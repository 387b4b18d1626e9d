// Package account keeps registered accounts and the single active session.
// Authentication is a mock state machine: credentials are stored and
// compared verbatim, there is no security boundary here.
package account

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/smartshoper/smartshoper/pkg/kvstore"
)

const (
	// accountsKey is the durable blob holding registered accounts.
	accountsKey = "smartshoper_users"
	// sessionKey is the session-scoped pointer to the active account.
	sessionKey = "smartshoper_currentUser"
)

// Account is a registered account, credential included. It never leaves
// this package; callers see Profile.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile is the redacted view of an account handed to callers and stored
// as the session pointer.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Service manages accounts and the LoggedOut/LoggedIn state machine.
type Service struct {
	store  kvstore.Store
	logger *slog.Logger

	mu       sync.RWMutex
	accounts []Account
}

// NewService creates an account service, loading any persisted accounts.
// A blob that cannot be decoded degrades to an empty registry.
func NewService(ctx context.Context, store kvstore.Store, logger *slog.Logger) *Service {
	s := &Service{
		store:  store,
		logger: logger.With("component", "account"),
	}
	var accounts []Account
	if kvstore.Load(ctx, store, kvstore.Durable, accountsKey, &accounts) {
		s.accounts = accounts
	}
	return s
}

// SignUp registers a new account and logs it in.
// Returns ErrDuplicateEmail when the email is already registered; the
// comparison is case-sensitive, matching the original contract. A failed
// signup leaves the registry untouched.
func (s *Service) SignUp(ctx context.Context, name, email, password string) (*Profile, error) {
	s.mu.Lock()
	for i := range s.accounts {
		if s.accounts[i].Email == email {
			s.mu.Unlock()
			return nil, ErrDuplicateEmail
		}
	}
	next := append(slices.Clone(s.accounts), Account{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err := kvstore.Save(ctx, s.store, kvstore.Durable, accountsKey, next); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.accounts = next
	s.mu.Unlock()

	s.logger.Info("Account registered", "email", email)
	return s.LogIn(ctx, email, password)
}

// LogIn authenticates by exact email and password equality, sets the
// session pointer and returns the redacted account.
// Returns ErrInvalidCredentials when no account matches; the session
// pointer is left unset.
func (s *Service) LogIn(ctx context.Context, email, password string) (*Profile, error) {
	s.mu.RLock()
	var found *Account
	for i := range s.accounts {
		if s.accounts[i].Email == email && s.accounts[i].Password == password {
			a := s.accounts[i]
			found = &a
			break
		}
	}
	s.mu.RUnlock()

	if found == nil {
		return nil, ErrInvalidCredentials
	}

	profile := Profile{ID: found.ID, Name: found.Name, Email: found.Email}
	if err := kvstore.Save(ctx, s.store, kvstore.Session, sessionKey, profile); err != nil {
		return nil, err
	}
	s.logger.Info("Session started", "email", email)
	return &profile, nil
}

// LogOut clears the session pointer. Logging out twice is a no-op.
func (s *Service) LogOut(ctx context.Context) error {
	return s.store.Remove(ctx, kvstore.Session, sessionKey)
}

// Current returns the active session's account, or nil when logged out.
func (s *Service) Current(ctx context.Context) *Profile {
	var profile Profile
	if !kvstore.Load(ctx, s.store, kvstore.Session, sessionKey, &profile) {
		return nil
	}
	return &profile
}
