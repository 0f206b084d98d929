package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magicalc/internal/common"
	"magicalc/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testAccount(t *testing.T) models.Account {
	t.Helper()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.NewAccount("pass1", false, models.TierBasic, now)
}

func TestAccountStore_LoadEmpty(t *testing.T) {
	store := NewAccountStore(setupDB(t))

	accounts, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccountStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewAccountStore(setupDB(t))
	ctx := context.Background()

	acc := testAccount(t)
	acc.MagicPoints = 42
	acc.EventProgress["calculations"] = 3
	acc.History = []models.CalculationRecord{
		{Id: "r1", Expression: "2 + 2", Result: "4", CreatedAt: acc.RegisteredAt},
	}

	require.NoError(t, store.Save(ctx, map[string]models.Account{"alice": acc}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Contains(t, got, "alice")
	assert.Equal(t, 42, got["alice"].MagicPoints)
	assert.Equal(t, 3, got["alice"].EventProgress["calculations"])
	require.Len(t, got["alice"].History, 1)
	assert.Equal(t, "2 + 2", got["alice"].History[0].Expression)
}

func TestAccountStore_Get(t *testing.T) {
	store := NewAccountStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, map[string]models.Account{"alice": testAccount(t)}))

	_, err := store.Get(ctx, "alice")
	require.NoError(t, err)

	_, err = store.Get(ctx, "Alice") // usernames are case-sensitive
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestAccountStore_CorruptDocument(t *testing.T) {
	db := setupDB(t)
	store := NewAccountStore(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO localstore(key, value) VALUES (?, ?)`, keyUsers, []byte("{not json"))
	require.NoError(t, err)

	_, err = store.Load(ctx)
	require.ErrorIs(t, err, common.ErrCorruptState)

	// Update tolerates the corrupt document: it starts from an empty
	// collection instead of failing.
	err = store.Update(ctx, func(accounts map[string]models.Account) error {
		accounts["bob"] = testAccount(t)
		return nil
	})
	require.NoError(t, err)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAccountStore_UpdateErrorWritesNothing(t *testing.T) {
	store := NewAccountStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, map[string]models.Account{"alice": testAccount(t)}))

	boom := errors.New("boom")
	err := store.Update(ctx, func(accounts map[string]models.Account) error {
		acc := accounts["alice"]
		acc.MagicPoints = 9999
		accounts["alice"] = acc
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, got.MagicPoints)
}

func TestSessionStore_Lifecycle(t *testing.T) {
	db := setupDB(t)
	sessions := NewSessionStore(db)
	ctx := context.Background()

	current, err := sessions.Current(ctx)
	require.NoError(t, err)
	assert.Empty(t, current)

	require.NoError(t, sessions.SetCurrent(ctx, "alice"))
	current, err = sessions.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", current)

	require.NoError(t, sessions.Clear(ctx))
	current, err = sessions.Current(ctx)
	require.NoError(t, err)
	assert.Empty(t, current)
}

func TestSettingsStore_DefaultsAndRoundTrip(t *testing.T) {
	db := setupDB(t)
	settings := NewSettingsStore(db)
	ctx := context.Background()

	got, err := settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), got)

	want := models.Settings{Volume: 80, MusicTheme: "winter"}
	require.NoError(t, settings.Put(ctx, want))

	got, err = settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsStore_CorruptFallsBackToDefaults(t *testing.T) {
	db := setupDB(t)
	settings := NewSettingsStore(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO localstore(key, value) VALUES (?, ?)`, keySettings, []byte("]["))
	require.NoError(t, err)

	got, err := settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), got)
}
