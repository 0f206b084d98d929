package services

import (
	"context"
	"fmt"

	"magicalc/internal/common"
	"magicalc/internal/logging"
	"magicalc/internal/models"
	"magicalc/internal/storage"
	"magicalc/internal/timeutil"
)

const (
	minUsernameLen = 3
	minPasswordLen = 4
)

// AuthService defines registration and session operations for the CLI.
//
// Contract:
//   - Register: create a Basic-tier account after validation; username
//     uniqueness is checked inside the store's critical section.
//   - Login: verify the credential, reject expired non-admin accounts with
//     the distinguished common.ErrSubscriptionExpired, and record the
//     session on success.
//   - Logout / CurrentUser: manage the active-session pointer.
type AuthService interface {
	Register(ctx context.Context, username, password, confirm string) error
	Login(ctx context.Context, username, password string) (models.Account, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (string, error)
}

type authService struct {
	store    *storage.AccountStore
	sessions *storage.SessionStore
	verifier CredentialVerifier
	clock    timeutil.Clock
	log      logging.Logger
}

// NewAuthService wires the authentication service.
func NewAuthService(store *storage.AccountStore, sessions *storage.SessionStore, verifier CredentialVerifier, clock timeutil.Clock, log logging.Logger) AuthService {
	return &authService{store: store, sessions: sessions, verifier: verifier, clock: clock, log: log}
}

func (s *authService) Register(ctx context.Context, username, password, confirm string) error {
	if username == "" || password == "" || confirm == "" {
		return fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	if len(username) < minUsernameLen {
		return fmt.Errorf("%w: username must be at least %d characters", common.ErrValidation, minUsernameLen)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLen)
	}

	stored, err := s.verifier.Store(password)
	if err != nil {
		return fmt.Errorf("failed to prepare credential: %w", err)
	}

	err = s.store.Update(ctx, func(accounts map[string]models.Account) error {
		if _, taken := accounts[username]; taken {
			return common.ErrUsernameTaken
		}
		accounts[username] = models.NewAccount(stored, false, models.TierBasic, s.clock.Now())
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "user registered", "username", username)
	return nil
}

func (s *authService) Login(ctx context.Context, username, password string) (models.Account, error) {
	accounts, err := s.store.Load(ctx)
	if err != nil {
		// A corrupt store behaves as empty: the login just fails.
		accounts = map[string]models.Account{}
	}

	acc, ok := accounts[username]
	if !ok {
		return models.Account{}, common.ErrUnauthorized
	}
	if !s.verifier.Verify(acc.Password, password) {
		return models.Account{}, common.ErrUnauthorized
	}

	if !acc.IsAdmin && !acc.SubscriptionEnd.After(s.clock.Now()) {
		return models.Account{}, common.ErrSubscriptionExpired
	}

	if err := s.sessions.SetCurrent(ctx, username); err != nil {
		return models.Account{}, err
	}

	s.log.Info(ctx, "user logged in", "username", username, "tier", acc.Tier)
	return acc, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (s *authService) CurrentUser(ctx context.Context) (string, error) {
	return s.sessions.Current(ctx)
}
