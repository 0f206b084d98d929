package cli

import (
	"context"
	"errors"
	"fmt"

	"magicalc/internal/common"
	"magicalc/internal/services"
)

// Shop lists the catalog, marking items the account already owns.
func (a *App) Shop(ctx context.Context) error {
	acc, err := a.currentAccount(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	for _, item := range services.Catalog {
		owned := ""
		if item.Unique && acc.Owns(item.ID) {
			owned = "  (owned)"
		}
		printlnFn(fmt.Sprintf("%-25s %-28s %4d points%s", item.ID, item.Title, item.Price, owned))
	}
	printlnFn(fmt.Sprintf("Your balance: %d points", acc.MagicPoints))
	return nil
}

// Buy purchases a catalog item by id.
func (a *App) Buy(ctx context.Context, itemID string) error {
	item, ok := services.FindItem(itemID)
	if !ok {
		printlnFn("Unknown item:", itemID)
		return common.ErrUnknownItem
	}

	if err := a.ledger.Purchase(ctx, a.userName, item.ID, item.Price); err != nil {
		switch {
		case errors.Is(err, common.ErrInsufficientFunds):
			printlnFn("Not enough magic points!")
		case errors.Is(err, common.ErrAlreadyOwned):
			printlnFn("You already own this item!")
		default:
			printlnFn(err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Purchased: %s", item.Title))
	if item.GrantsTier != "" {
		printlnFn(fmt.Sprintf("Your subscription is now %s, valid for one month", item.GrantsTier))
	}
	return nil
}

// Balance prints the account's magic-point balance.
func (a *App) Balance(ctx context.Context) error {
	acc, err := a.currentAccount(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Balance: %d magic points", acc.MagicPoints))
	return nil
}
