package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool               { return f.loggedIn }
func (f *fakeExec) isAdmin(_ context.Context) bool { return f.admin }

func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Calc(context.Context) error { f.calls = append(f.calls, "calc"); return nil }
func (f *fakeExec) AI(context.Context) error { f.calls = append(f.calls, "ai"); return nil }
func (f *fakeExec) History(context.Context) error { f.calls = append(f.calls, "history"); return nil }
func (f *fakeExec) Sort(context.Context) error { f.calls = append(f.calls, "sort"); return nil }
func (f *fakeExec) Houses(context.Context) error { f.calls = append(f.calls, "houses"); return nil }
func (f *fakeExec) Shop(context.Context) error { f.calls = append(f.calls, "shop"); return nil }
func (f *fakeExec) Buy(_ context.Context, itemID string) error {
	f.calls = append(f.calls, "buy")
	f.arg = itemID
	return nil
}
func (f *fakeExec) Balance(context.Context) error { f.calls = append(f.calls, "balance"); return nil }
func (f *fakeExec) Progress(context.Context) error { f.calls = append(f.calls, "progress"); return nil }
func (f *fakeExec) Sub(context.Context) error { f.calls = append(f.calls, "sub"); return nil }
func (f *fakeExec) Settings(context.Context) error { f.calls = append(f.calls, "settings"); return nil }
func (f *fakeExec) Users(context.Context) error { f.calls = append(f.calls, "users"); return nil }
func (f *fakeExec) Stats(context.Context) error { f.calls = append(f.calls, "stats"); return nil }
func (f *fakeExec) ClearHistory(context.Context) error {
	f.calls = append(f.calls, "clearhistory")
	return nil
}
func (f *fakeExec) Export(context.Context) error { f.calls = append(f.calls, "export"); return nil }
func (f *fakeExec) SetSub(_ context.Context, username, tier, months string) error {
	f.calls = append(f.calls, "setsub")
	f.arg = username + " " + tier + " " + months
	return nil
}
func (f *fakeExec) RestoreAdmins(context.Context) error {
	f.calls = append(f.calls, "restoreadmins")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"calc", // not available while logged out
		"login",
		"help",
		"calc",
		"buy chocolate-frog",
		"balance",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	r := bufio.NewReader(input)

	runREPL(context.Background(), exec, func() string { return "status" }, r)

	wantOrder := []string{"login", "calc", "buy", "balance"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.arg != "chocolate-frog" {
		t.Fatalf("buy arg: got %q", exec.arg)
	}
	for _, c := range exec.calls {
		if c == "register" {
			t.Fatalf("register should not have been called: %v", exec.calls)
		}
	}
}

func TestRunREPL_AdminCommandsHiddenFromRegularUsers(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("users\nstats\nclearhistory\nexport\nsetsub bob pro 1\nrestoreadmins\nquit\n")
	exec := &fakeExec{loggedIn: true, admin: false}
	r := bufio.NewReader(input)

	runREPL(context.Background(), exec, func() string { return "s" }, r)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls for non-admin: %v", exec.calls)
	}
}

func TestRunREPL_AdminCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("stats\nsetsub bob pro 2\nrestoreadmins\nexit\n")
	exec := &fakeExec{loggedIn: true, admin: true}
	r := bufio.NewReader(input)

	runREPL(context.Background(), exec, func() string { return "s" }, r)

	want := []string{"stats", "setsub", "restoreadmins"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls: got %v, want %v", exec.calls, want)
		}
	}
	if exec.arg != "bob pro 2" {
		t.Fatalf("setsub args: got %q", exec.arg)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("buy\nsetsub bob\nquit\n")
	exec := &fakeExec{loggedIn: true, admin: true}
	r := bufio.NewReader(input)

	runREPL(context.Background(), exec, func() string { return "s" }, r)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
