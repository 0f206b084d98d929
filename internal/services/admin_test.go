package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magicalc/internal/common"
	"magicalc/internal/models"
)

func newAdmin(t *testing.T) (AdminService, *storageFixture, string) {
	t.Helper()
	store := newTestStore(t)
	dir := t.TempDir()
	svc := NewAdminService(store, PlaintextVerifier{}, fixedClock(), dir, discardLogger())
	return svc, &storageFixture{store}, dir
}

func TestEnsureBootstrapAccounts_CreatesAdmins(t *testing.T) {
	svc, fx, _ := newAdmin(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureBootstrapAccounts(ctx))

	for _, boot := range bootstrapAccounts {
		acc := fx.account(t, boot.Username)
		assert.True(t, acc.IsAdmin)
		assert.Equal(t, models.TierProPlus, acc.Tier)
		assert.Equal(t, 1000, acc.MagicPoints)
		assert.Equal(t, fixedNow.AddDate(0, 1, 0), acc.SubscriptionEnd)
	}
}

func TestEnsureBootstrapAccounts_Idempotent(t *testing.T) {
	svc, fx, _ := newAdmin(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureBootstrapAccounts(ctx))

	// Mutate one of the accounts; repeated runs must not reset it.
	ledger := NewLedgerService(fx.store, fixedClock(), discardLogger())
	_, err := ledger.Accrue(ctx, "Admin_1", 25)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.EnsureBootstrapAccounts(ctx))
	}

	accounts, err := fx.store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, len(bootstrapAccounts))
	assert.Equal(t, 1025, accounts["Admin_1"].MagicPoints)
	assert.Equal(t, 1000, accounts["Admin_2Loh"].MagicPoints)
}

func TestEnsureBootstrapAccounts_KeepsOtherAccounts(t *testing.T) {
	svc, fx, _ := newAdmin(t)
	seedAccount(t, fx.store, "alice", models.NewAccount("pass1", false, models.TierBasic, fixedNow))

	require.NoError(t, svc.EnsureBootstrapAccounts(context.Background()))

	accounts, err := fx.store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, len(bootstrapAccounts)+1)
	assert.False(t, accounts["alice"].IsAdmin)
}

func TestSetSubscription(t *testing.T) {
	svc, fx, _ := newAdmin(t)
	seedAccount(t, fx.store, "alice", models.NewAccount("pass1", false, models.TierBasic, fixedNow))
	ctx := context.Background()

	require.NoError(t, svc.SetSubscription(ctx, "alice", models.TierPro, 3))

	acc := fx.account(t, "alice")
	assert.Equal(t, models.TierPro, acc.Tier)
	assert.Equal(t, fixedNow.AddDate(0, 3, 0), acc.SubscriptionEnd)
}

func TestSetSubscription_Validation(t *testing.T) {
	svc, fx, _ := newAdmin(t)
	seedAccount(t, fx.store, "alice", models.NewAccount("pass1", false, models.TierBasic, fixedNow))
	ctx := context.Background()

	err := svc.SetSubscription(ctx, "alice", models.Tier("platinum"), 1)
	require.ErrorIs(t, err, common.ErrValidation)

	err = svc.SetSubscription(ctx, "alice", models.TierPro, -1)
	require.ErrorIs(t, err, common.ErrValidation)

	err = svc.SetSubscription(ctx, "nobody", models.TierPro, 1)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestSubscriptionUpgradeFlow(t *testing.T) {
	store, sessions := newTestSessions(t)
	auth := NewAuthService(store, sessions, PlaintextVerifier{}, fixedClock(), discardLogger())
	admin := NewAdminService(store, PlaintextVerifier{}, fixedClock(), t.TempDir(), discardLogger())
	ent := NewEntitlements(fixedClock())
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, "alice", "pass1", "pass1"))

	acc, err := auth.Login(ctx, "alice", "pass1")
	require.NoError(t, err)
	assert.Equal(t, models.TierBasic, acc.Tier)

	require.NoError(t, admin.SetSubscription(ctx, "alice", models.TierPro, 1))

	acc, err = store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ent.IsFeatureAllowed(acc, models.TierPro))
	assert.False(t, ent.IsFeatureAllowed(acc, models.TierProPlus))
}

func TestComputeSystemStats(t *testing.T) {
	admin := models.NewAccount("adm", true, models.TierProPlus, fixedNow)
	admin.History = []models.CalculationRecord{{Expression: "2+2", Result: "4"}}

	active := models.NewAccount("pass1", false, models.TierPro, fixedNow)
	active.HasBeenSorted = true
	active.MagicPoints = 70

	expired := models.NewAccount("pass2", false, models.TierBasic, fixedNow)
	expired.SubscriptionEnd = fixedNow.AddDate(0, -1, 0)
	expired.History = []models.CalculationRecord{
		{Expression: "1+1", Result: "2"},
		{Expression: "3*3", Result: "9"},
	}

	stats := ComputeSystemStats(map[string]models.Account{
		"admin": admin, "active": active, "expired": expired,
	}, fixedNow)

	assert.Equal(t, models.SystemStats{
		TotalUsers:           3,
		AdminUsers:           1,
		RegularUsers:         2,
		SortedUsers:          1,
		BasicSubscriptions:   0,
		ProSubscriptions:     1,
		ProPlusSubscriptions: 1,
		ExpiredSubscriptions: 1,
		TotalCalculations:    3,
		TotalMagicPoints:     1070,
	}, stats)
}

func TestSystemStats_EmptyCollection(t *testing.T) {
	svc, _, _ := newAdmin(t)

	stats, err := svc.SystemStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SystemStats{}, stats)
}

func TestExportBackup(t *testing.T) {
	svc, fx, dir := newAdmin(t)
	seedAccount(t, fx.store, "alice", models.NewAccount("pass1", false, models.TierBasic, fixedNow))

	path, err := svc.ExportBackup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, backupFileName), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var restored map[string]models.Account
	require.NoError(t, json.Unmarshal(raw, &restored))
	require.Contains(t, restored, "alice")
	assert.Equal(t, "pass1", restored["alice"].Password)
}
