package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"magicalc/internal/common"
	"magicalc/internal/dbx"
	"magicalc/internal/models"
)

// AccountStore is the durable keyed record of all accounts. Load and Save
// operate on the entire collection; every mutation elsewhere goes through
// Update, which runs the full load-mutate-save sequence as one critical
// section (process mutex + SQLite transaction). The browser app relied on
// single-threaded execution for this; here concurrent callers are real.
type AccountStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewAccountStore binds a store to an opened local-store handle.
func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

func decodeAccounts(raw []byte) (map[string]models.Account, error) {
	accounts := make(map[string]models.Account)
	if len(raw) == 0 {
		return accounts, nil
	}
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptState, err)
	}
	return accounts, nil
}

func loadAccounts(ctx context.Context, db dbx.DBTX) (map[string]models.Account, error) {
	raw, err := kvGet(ctx, db, keyUsers)
	if err != nil {
		return nil, err
	}
	return decodeAccounts(raw)
}

func saveAccounts(ctx context.Context, db dbx.DBTX, accounts map[string]models.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	return kvSet(ctx, db, keyUsers, raw)
}

// Load returns the whole account collection. A missing document loads as an
// empty collection; a malformed one fails with common.ErrCorruptState, which
// callers are expected to treat as empty rather than fatal.
func (s *AccountStore) Load(ctx context.Context) (map[string]models.Account, error) {
	return loadAccounts(ctx, s.db)
}

// Save replaces the whole account collection.
func (s *AccountStore) Save(ctx context.Context, accounts map[string]models.Account) error {
	return saveAccounts(ctx, s.db, accounts)
}

// Get returns a single account by exact username, or common.ErrNotFound.
func (s *AccountStore) Get(ctx context.Context, username string) (models.Account, error) {
	accounts, err := s.Load(ctx)
	if err != nil {
		return models.Account{}, err
	}
	acc, ok := accounts[username]
	if !ok {
		return models.Account{}, fmt.Errorf("account %q: %w", username, common.ErrNotFound)
	}
	return acc, nil
}

// Update runs fn over the loaded collection and saves the result, all inside
// one transaction guarded by the store mutex. If fn returns an error nothing
// is written. A corrupt stored document is replaced by an empty collection
// before fn runs, favoring tolerance over a crash.
func (s *AccountStore) Update(ctx context.Context, fn func(accounts map[string]models.Account) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		accounts, err := loadAccounts(ctx, tx)
		if err != nil {
			if !errors.Is(err, common.ErrCorruptState) {
				return err
			}
			accounts = make(map[string]models.Account)
		}
		if err := fn(accounts); err != nil {
			return err
		}
		return saveAccounts(ctx, tx, accounts)
	})
}
