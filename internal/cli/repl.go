package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin(ctx context.Context) bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Calc(ctx context.Context) error
	AI(ctx context.Context) error
	History(ctx context.Context) error
	Sort(ctx context.Context) error
	Houses(ctx context.Context) error
	Shop(ctx context.Context) error
	Buy(ctx context.Context, itemID string) error
	Balance(ctx context.Context) error
	Progress(ctx context.Context) error
	Sub(ctx context.Context) error
	Settings(ctx context.Context) error

	Users(ctx context.Context) error
	Stats(ctx context.Context) error
	ClearHistory(ctx context.Context) error
	Export(ctx context.Context) error
	SetSub(ctx context.Context, username, tier, months string) error
	RestoreAdmins(ctx context.Context) error
}

// runREPL reads a line from the reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types "exit"
// or "quit". Command handlers prompt through the same reader, so the loop
// must not read ahead of the current line.
//
// Logged out, the available commands are register, login, and exit. Logged
// in, the calculator and event commands open up; the admin commands answer
// only for admin accounts.
//
// Errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("calc %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: calc, ai, history, sort, houses, shop, buy, balance, progress, sub, settings, logout, exit")
			if a.isAdmin(ctx) {
				printlnFn("Admin commands: users, stats, clearhistory, export, setsub, restoreadmins")
			}

		case "calc":
			_ = a.Calc(ctx)

		case "ai":
			_ = a.AI(ctx)

		case "history":
			_ = a.History(ctx)

		case "sort":
			_ = a.Sort(ctx)

		case "houses":
			_ = a.Houses(ctx)

		case "shop":
			_ = a.Shop(ctx)

		case "buy":
			if len(args) == 0 {
				printlnFn("Usage: buy <item-id>")
				continue
			}
			_ = a.Buy(ctx, args[0])

		case "balance":
			_ = a.Balance(ctx)

		case "progress":
			_ = a.Progress(ctx)

		case "sub":
			_ = a.Sub(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "users":
			if !a.isAdmin(ctx) {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.Users(ctx)

		case "stats":
			if !a.isAdmin(ctx) {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.Stats(ctx)

		case "clearhistory":
			if !a.isAdmin(ctx) {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.ClearHistory(ctx)

		case "export":
			if !a.isAdmin(ctx) {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.Export(ctx)

		case "setsub":
			if !a.isAdmin(ctx) {
				printlnFn("Unknown command:", cmd)
				continue
			}
			if len(args) < 3 {
				printlnFn("Usage: setsub <username> <tier> <months>")
				continue
			}
			_ = a.SetSub(ctx, args[0], args[1], args[2])

		case "restoreadmins":
			if !a.isAdmin(ctx) {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.RestoreAdmins(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
