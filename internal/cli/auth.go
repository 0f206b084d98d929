package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"magicalc/internal/common"
)

// getSimpleText, getPassword, and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirmation = GetConfirmation

// Register prompts for a username and a password with confirmation and
// attempts to create a new account.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, userName, password, confirm); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Account created! You can log in now.")
	return nil
}

// Login prompts for credentials and tries to authenticate. An expired
// subscription is reported distinctly from bad credentials.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	acc, err := a.auth.Login(ctx, userName, password)
	if err != nil {
		if errors.Is(err, common.ErrSubscriptionExpired) {
			printlnFn("Your subscription has expired. Contact an administrator to renew it.")
		} else {
			printlnFn(err.Error())
		}
		return err
	}

	a.userName = userName
	printlnFn(fmt.Sprintf("Welcome back, %s! Tier: %s", userName, acc.Tier))
	return nil
}

// Logout clears the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	a.userName = ""
	printlnFn("Logged out")
	return nil
}
