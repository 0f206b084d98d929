package cli

import (
	"context"
	"errors"
	"fmt"

	"magicalc/internal/common"
	"magicalc/internal/services"
)

// Sort runs the one-time sorting ceremony for the logged-in account.
func (a *App) Sort(ctx context.Context) error {
	result, err := a.sorting.Sort(ctx, a.userName)
	if err != nil {
		if errors.Is(err, common.ErrAlreadySorted) {
			printlnFn("You have already been sorted into a house!")
		} else {
			printlnFn(err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("%s %s!", result.Info.Icon, result.Info.Name))
	printlnFn(result.Message)
	printlnFn(fmt.Sprintf("You received %d bonus magic points!", services.SortingBonus))
	return nil
}

// Houses prints the tournament standings and the time remaining.
func (a *App) Houses(ctx context.Context) error {
	for i, row := range a.standings.Snapshot() {
		printlnFn(fmt.Sprintf("%d. %s %-10s %d points", i+1, row.Info.Icon, row.Info.Name, row.Points))
	}

	countdown := services.CountdownAt(a.clock.Now())
	if countdown == (services.TournamentCountdown{}) {
		printlnFn("The tournament is over!")
		return nil
	}
	printlnFn(fmt.Sprintf("Tournament ends in %dd %dh %dm %ds",
		countdown.Days, countdown.Hours, countdown.Minutes, countdown.Seconds))
	return nil
}

// Progress prints the account's event-progress counters.
func (a *App) Progress(ctx context.Context) error {
	acc, err := a.currentAccount(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(acc.EventProgress) == 0 {
		printlnFn("No progress yet")
		return nil
	}
	for category, count := range acc.EventProgress {
		printlnFn(fmt.Sprintf("%s: %d", category, count))
	}
	return nil
}
