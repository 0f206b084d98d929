package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"magicalc/internal/common"
	"magicalc/internal/logging"
	"magicalc/internal/models"
	"magicalc/internal/storage"
	"magicalc/internal/timeutil"
)

// uniqueItems are the identifiers that can be owned at most once per
// account. The list is fixed.
var uniqueItems = map[string]bool{
	ItemInvisibilityCloak: true,
	ItemGryffindorSword:   true,
	ItemFireCup:           true,
}

// LedgerService accrues and debits magic points, records purchases,
// tracks event-progress counters, and maintains calculation history.
//
// Accrue is not idempotent: each call adds. Callers reward an action
// exactly once.
type LedgerService interface {
	Accrue(ctx context.Context, username string, amount int) (int, error)
	Purchase(ctx context.Context, username, itemID string, price int) error
	IncrementProgress(ctx context.Context, username, category string, by int) error
	AppendHistory(ctx context.Context, username, expression, result string) error
	ResetAllHistories(ctx context.Context) error
}

type ledgerService struct {
	store *storage.AccountStore
	clock timeutil.Clock
	log   logging.Logger
}

// NewLedgerService wires the currency and progress ledger.
func NewLedgerService(store *storage.AccountStore, clock timeutil.Clock, log logging.Logger) LedgerService {
	return &ledgerService{store: store, clock: clock, log: log}
}

// creditPoints is the single place account balances grow. The sorting
// service reuses it for the one-time sorting bonus so that currency
// mutation stays inside the ledger's code.
func creditPoints(acc *models.Account, amount int) {
	acc.MagicPoints += amount
}

func (s *ledgerService) Accrue(ctx context.Context, username string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: accrual amount must be positive", common.ErrValidation)
	}

	var balance int
	err := s.store.Update(ctx, func(accounts map[string]models.Account) error {
		acc, ok := accounts[username]
		if !ok {
			return fmt.Errorf("account %q: %w", username, common.ErrNotFound)
		}
		creditPoints(&acc, amount)
		accounts[username] = acc
		balance = acc.MagicPoints
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Debug(ctx, "points accrued", "username", username, "amount", amount, "balance", balance)
	return balance, nil
}

// Purchase debits price and appends itemID to the account's purchases.
// Unique items are rejected when already owned; nothing is mutated on any
// failure. Subscription products additionally switch the tier and extend
// the subscription one month from now.
func (s *ledgerService) Purchase(ctx context.Context, username, itemID string, price int) error {
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", common.ErrValidation)
	}

	err := s.store.Update(ctx, func(accounts map[string]models.Account) error {
		acc, ok := accounts[username]
		if !ok {
			return fmt.Errorf("account %q: %w", username, common.ErrNotFound)
		}
		if acc.MagicPoints < price {
			return common.ErrInsufficientFunds
		}
		if uniqueItems[itemID] && acc.Owns(itemID) {
			return common.ErrAlreadyOwned
		}

		acc.MagicPoints -= price
		acc.PurchasedItems = append(acc.PurchasedItems, itemID)

		switch itemID {
		case ItemProSubscription:
			acc.Tier = models.TierPro
			acc.SubscriptionEnd = s.clock.Now().AddDate(0, 1, 0)
		case ItemProPlusSub:
			acc.Tier = models.TierProPlus
			acc.SubscriptionEnd = s.clock.Now().AddDate(0, 1, 0)
		}

		accounts[username] = acc
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "item purchased", "username", username, "item", itemID, "price", price)
	return nil
}

func (s *ledgerService) IncrementProgress(ctx context.Context, username, category string, by int) error {
	if by <= 0 {
		return fmt.Errorf("%w: increment must be positive", common.ErrValidation)
	}

	return s.store.Update(ctx, func(accounts map[string]models.Account) error {
		acc, ok := accounts[username]
		if !ok {
			return fmt.Errorf("account %q: %w", username, common.ErrNotFound)
		}
		if acc.EventProgress == nil {
			acc.EventProgress = map[string]int{}
		}
		acc.EventProgress[category] += by
		accounts[username] = acc
		return nil
	})
}

// AppendHistory prepends a calculation record; history is kept most recent
// first.
func (s *ledgerService) AppendHistory(ctx context.Context, username, expression, result string) error {
	record := models.CalculationRecord{
		Id:         uuid.NewString(),
		Expression: expression,
		Result:     result,
		CreatedAt:  s.clock.Now().UTC(),
	}

	return s.store.Update(ctx, func(accounts map[string]models.Account) error {
		acc, ok := accounts[username]
		if !ok {
			return fmt.Errorf("account %q: %w", username, common.ErrNotFound)
		}
		acc.History = append([]models.CalculationRecord{record}, acc.History...)
		accounts[username] = acc
		return nil
	})
}

// ResetAllHistories clears every account's history. Currency, tier, and
// house are untouched. Privileged bulk operation; the CLI confirms first.
func (s *ledgerService) ResetAllHistories(ctx context.Context) error {
	err := s.store.Update(ctx, func(accounts map[string]models.Account) error {
		for username, acc := range accounts {
			acc.History = []models.CalculationRecord{}
			accounts[username] = acc
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Warn(ctx, "all calculation histories cleared")
	return nil
}
