package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"magicalc/internal/common"
	"magicalc/internal/filex"
	"magicalc/internal/logging"
	"magicalc/internal/models"
	"magicalc/internal/storage"
	"magicalc/internal/timeutil"
)

// backupFileName is the fixed name of the operator backup document.
const backupFileName = "calculator_users_backup.json"

// bootstrapAccount is one of the pre-seeded privileged accounts.
type bootstrapAccount struct {
	Username string
	Password string
}

// bootstrapAccounts are created idempotently at startup and restorable by a
// privileged operator. Credentials match the legacy deployment.
var bootstrapAccounts = []bootstrapAccount{
	{Username: "Admin_1", Password: "adm_57"},
	{Username: "Admin_2Loh", Password: "adm_2gay"},
}

// AdminService holds the privileged operations: bootstrap-account policy,
// subscription management, system statistics, and backup export.
type AdminService interface {
	// EnsureBootstrapAccounts creates each missing bootstrap account as an
	// admin on the ProPlus tier. Idempotent: existing accounts, including
	// their mutable fields, are never touched. Also the operator's
	// "restore admins" recovery path.
	EnsureBootstrapAccounts(ctx context.Context) error

	// SetSubscription sets an account's tier and pushes its expiry
	// months months from now.
	SetSubscription(ctx context.Context, username string, tier models.Tier, months int) error

	// SystemStats aggregates the whole collection.
	SystemStats(ctx context.Context) (models.SystemStats, error)

	// ExportBackup writes the full account collection as an indented JSON
	// document into the backup directory and returns the file path.
	ExportBackup(ctx context.Context) (string, error)
}

type adminService struct {
	store     *storage.AccountStore
	verifier  CredentialVerifier
	clock     timeutil.Clock
	backupDir string
	log       logging.Logger
}

// NewAdminService wires the admin policy.
func NewAdminService(store *storage.AccountStore, verifier CredentialVerifier, clock timeutil.Clock, backupDir string, log logging.Logger) AdminService {
	return &adminService{store: store, verifier: verifier, clock: clock, backupDir: backupDir, log: log}
}

func (s *adminService) EnsureBootstrapAccounts(ctx context.Context) error {
	now := s.clock.Now()

	err := s.store.Update(ctx, func(accounts map[string]models.Account) error {
		for _, boot := range bootstrapAccounts {
			if _, exists := accounts[boot.Username]; exists {
				continue
			}
			stored, err := s.verifier.Store(boot.Password)
			if err != nil {
				return fmt.Errorf("failed to prepare bootstrap credential: %w", err)
			}
			accounts[boot.Username] = models.NewAccount(stored, true, models.TierProPlus, now)
			s.log.Info(ctx, "bootstrap account created", "username", boot.Username)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to ensure bootstrap accounts: %w", err)
	}
	return nil
}

func (s *adminService) SetSubscription(ctx context.Context, username string, tier models.Tier, months int) error {
	if months < 0 {
		return fmt.Errorf("%w: months must not be negative", common.ErrValidation)
	}
	switch tier {
	case models.TierBasic, models.TierPro, models.TierProPlus:
	default:
		return fmt.Errorf("%w: unknown tier %q", common.ErrValidation, tier)
	}

	err := s.store.Update(ctx, func(accounts map[string]models.Account) error {
		acc, ok := accounts[username]
		if !ok {
			return fmt.Errorf("account %q: %w", username, common.ErrNotFound)
		}
		acc.Tier = tier
		acc.SubscriptionEnd = s.clock.Now().AddDate(0, months, 0)
		accounts[username] = acc
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "subscription set", "username", username, "tier", tier, "months", months)
	return nil
}

func (s *adminService) SystemStats(ctx context.Context) (models.SystemStats, error) {
	accounts, err := s.store.Load(ctx)
	if err != nil {
		return models.SystemStats{}, err
	}
	return ComputeSystemStats(accounts, s.clock.Now()), nil
}

// ComputeSystemStats is a pure aggregation over the account collection.
func ComputeSystemStats(accounts map[string]models.Account, now time.Time) models.SystemStats {
	var stats models.SystemStats
	stats.TotalUsers = len(accounts)

	for _, acc := range accounts {
		stats.TotalCalculations += len(acc.History)
		stats.TotalMagicPoints += acc.MagicPoints

		if acc.IsAdmin {
			stats.AdminUsers++
		} else {
			stats.RegularUsers++
		}
		if acc.HasBeenSorted {
			stats.SortedUsers++
		}

		if acc.SubscriptionEnd.After(now) {
			switch acc.Tier {
			case models.TierBasic:
				stats.BasicSubscriptions++
			case models.TierPro:
				stats.ProSubscriptions++
			case models.TierProPlus:
				stats.ProPlusSubscriptions++
			}
		} else {
			stats.ExpiredSubscriptions++
		}
	}

	return stats
}

func (s *adminService) ExportBackup(ctx context.Context) (string, error) {
	accounts, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}

	raw, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode backup: %w", err)
	}

	dir, err := filex.EnsureDir(s.backupDir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, backupFileName)
	if err := os.WriteFile(path, raw, 0o660); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	s.log.Info(ctx, "backup exported", "path", path, "accounts", len(accounts))
	return path, nil
}
