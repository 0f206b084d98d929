package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"magicalc/internal/models"
)

// Users lists every account with its key state.
func (a *App) Users(ctx context.Context) error {
	accounts, err := a.accounts.Load(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	for username, acc := range accounts {
		role := "user"
		if acc.IsAdmin {
			role = "admin"
		}
		house := string(acc.House)
		if house == "" {
			house = "-"
		}
		printlnFn(fmt.Sprintf("%-20s %-5s %-9s %5d points  house: %-10s until %s",
			username, role, acc.Tier, acc.MagicPoints, house,
			acc.SubscriptionEnd.Format("2006-01-02")))
	}
	return nil
}

// Stats prints the aggregated system statistics.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.admin.SystemStats(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Users: %d (%d admin, %d regular), sorted: %d",
		stats.TotalUsers, stats.AdminUsers, stats.RegularUsers, stats.SortedUsers))
	printlnFn(fmt.Sprintf("Subscriptions: %d basic, %d pro, %d pro+, %d expired",
		stats.BasicSubscriptions, stats.ProSubscriptions, stats.ProPlusSubscriptions,
		stats.ExpiredSubscriptions))
	printlnFn(fmt.Sprintf("Calculations: %d, magic points in circulation: %d",
		stats.TotalCalculations, stats.TotalMagicPoints))
	return nil
}

// ClearHistory wipes every account's calculation history after an explicit
// confirmation.
func (a *App) ClearHistory(ctx context.Context) error {
	ok, err := getConfirmation(a.reader, "Clear the calculation history of ALL users?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.ledger.ResetAllHistories(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("All histories cleared")
	return nil
}

// Export writes the account backup file and prints its path.
func (a *App) Export(ctx context.Context) error {
	path, err := a.admin.ExportBackup(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Backup written to", path)
	return nil
}

// SetSub sets a user's subscription tier and duration.
func (a *App) SetSub(ctx context.Context, username, tier, months string) error {
	n, err := strconv.Atoi(months)
	if err != nil {
		printlnFn("Months must be a number")
		return err
	}

	if err := a.admin.SetSubscription(ctx, username, models.Tier(tier), n); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Subscription of %s set to %s for %d month(s)", username, tier, n))
	return nil
}

// RestoreAdmins re-creates any missing bootstrap admin account.
func (a *App) RestoreAdmins(ctx context.Context) error {
	if err := a.admin.EnsureBootstrapAccounts(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Bootstrap admin accounts verified")
	return nil
}
