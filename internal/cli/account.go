package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// Sub prints the account's resolved subscription status.
func (a *App) Sub(ctx context.Context) error {
	acc, err := a.currentAccount(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	status := a.ent.ResolveStatus(acc)
	printlnFn(fmt.Sprintf("Tier: %s", status.Tier))
	if acc.IsAdmin {
		printlnFn("Status: active (administrator)")
		return nil
	}
	if !status.Active {
		printlnFn("Status: expired")
		return nil
	}
	printlnFn(fmt.Sprintf("Status: active, %d day(s) remaining", status.DaysRemaining))
	return nil
}

// Settings shows the stored application settings and lets the user change
// them. An empty answer keeps the current value.
func (a *App) Settings(ctx context.Context) error {
	settings, err := a.settings.Get(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Volume: %d, music theme: %s", settings.Volume, settings.MusicTheme))

	answer, err := getSimpleText(a.reader, "New volume 0-100 (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "" {
		volume, err := strconv.Atoi(answer)
		if err != nil || volume < 0 || volume > 100 {
			printlnFn("Volume must be a number between 0 and 100")
			return nil
		}
		settings.Volume = volume
	}

	theme, err := getSimpleText(a.reader, "New music theme (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if theme != "" {
		settings.MusicTheme = theme
	}

	if err := a.settings.Put(ctx, settings); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Settings saved")
	return nil
}
