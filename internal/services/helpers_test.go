package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"magicalc/internal/logging"
	"magicalc/internal/models"
	"magicalc/internal/storage"
	"magicalc/internal/timeutil"

	_ "modernc.org/sqlite"
)

// fixedNow is the reference instant used across service tests.
var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *storage.AccountStore {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewAccountStore(db)
}

func newTestSessions(t *testing.T) (*storage.AccountStore, *storage.SessionStore) {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewAccountStore(db), storage.NewSessionStore(db)
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func fixedClock() timeutil.Clock {
	return timeutil.FixedClock{Instant: fixedNow}
}

func seedAccount(t *testing.T, store *storage.AccountStore, username string, acc models.Account) {
	t.Helper()
	err := store.Update(context.Background(), func(accounts map[string]models.Account) error {
		accounts[username] = acc
		return nil
	})
	require.NoError(t, err)
}

func getAccount(t *testing.T, store *storage.AccountStore, username string) models.Account {
	t.Helper()
	acc, err := store.Get(context.Background(), username)
	require.NoError(t, err)
	return acc
}

// storageFixture bundles the account store with a lookup shorthand for
// assertions.
type storageFixture struct {
	store *storage.AccountStore
}

func (f *storageFixture) account(t *testing.T, username string) models.Account {
	t.Helper()
	return getAccount(t, f.store, username)
}
