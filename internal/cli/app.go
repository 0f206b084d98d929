// Package cli implements the interactive terminal front end: a REPL that
// dispatches to the account, ledger, sorting, and admin services, with the
// arithmetic and responder collaborators wired behind feature gates.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"math/rand"
	"os"

	"magicalc/internal/config"
	"magicalc/internal/logging"
	"magicalc/internal/models"
	"magicalc/internal/services"
	"magicalc/internal/storage"
	"magicalc/internal/timeutil"

	_ "modernc.org/sqlite"
)

// Magic-point rewards per action.
const (
	rewardCalculation    = 2
	rewardScientific     = 3
	rewardProFormula     = 5
	rewardProPlusFormula = 8
	rewardAIQuery        = 1
)

type App struct {
	config *config.Config
	log    logging.Logger

	db        *sql.DB
	accounts  *storage.AccountStore
	settings  *storage.SettingsStore
	auth      services.AuthService
	ledger    services.LedgerService
	sorting   services.SortingService
	admin     services.AdminService
	ent       *services.Entitlements
	standings *services.Standings
	clock     timeutil.Clock

	userName string
	reader   *bufio.Reader
}

// NewApp opens the local store and wires the full service graph.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.StorePath)
	if err != nil {
		log.Error(ctx, "error opening store", "error", err)
		return nil, err
	}

	accounts := storage.NewAccountStore(db)
	sessions := storage.NewSessionStore(db)
	settings := storage.NewSettingsStore(db)

	var verifier services.CredentialVerifier = services.PlaintextVerifier{}
	if c.HashCredentials {
		verifier = services.BcryptVerifier{}
	}

	clock := timeutil.RealClock{}

	app := &App{
		config:    c,
		log:       log,
		db:        db,
		accounts:  accounts,
		settings:  settings,
		auth:      services.NewAuthService(accounts, sessions, verifier, clock, log),
		ledger:    services.NewLedgerService(accounts, clock, log),
		sorting:   services.NewSortingService(accounts, rand.Intn, log),
		admin:     services.NewAdminService(accounts, verifier, clock, c.BackupDir, log),
		ent:       services.NewEntitlements(clock),
		standings: services.NewStandings(),
		clock:     clock,
		reader:    bufio.NewReader(os.Stdin),
	}

	if err := app.admin.EnsureBootstrapAccounts(ctx); err != nil {
		return nil, err
	}

	// A session left behind by a previous run stays valid.
	if current, err := app.auth.CurrentUser(ctx); err == nil {
		app.userName = current
	}

	return app, nil
}

// Run starts the REPL and blocks until the user exits. The loop shares
// a.reader with the prompt helpers, so piped input lines land on the
// prompt that asked for them.
func (a *App) Run(ctx context.Context) {
	printlnFn("Magic Calculator (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) isAdmin(ctx context.Context) bool {
	acc, err := a.currentAccount(ctx)
	return err == nil && acc.IsAdmin
}

// currentAccount re-reads the logged-in account so balances and tier are
// always fresh.
func (a *App) currentAccount(ctx context.Context) (models.Account, error) {
	return a.accounts.Get(ctx, a.userName)
}

func (a *App) status() string {
	if a.userName == "" {
		return ""
	}
	return "(" + a.userName + ")"
}
