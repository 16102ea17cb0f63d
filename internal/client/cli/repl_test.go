package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Search(ctx context.Context, query string) error {
	f.calls = append(f.calls, "search")
	f.arg = query
	return nil
}
func (f *fakeExec) Feed(ctx context.Context) error { f.calls = append(f.calls, "feed"); return nil }
func (f *fakeExec) Clubs(ctx context.Context) error {
	f.calls = append(f.calls, "clubs")
	return nil
}
func (f *fakeExec) MyClubs(ctx context.Context) error {
	f.calls = append(f.calls, "myclubs")
	return nil
}
func (f *fakeExec) JoinClub(ctx context.Context, clubID string) error {
	f.calls = append(f.calls, "join")
	f.arg = clubID
	return nil
}
func (f *fakeExec) LeaveClub(ctx context.Context, clubID string) error {
	f.calls = append(f.calls, "leave")
	f.arg = clubID
	return nil
}
func (f *fakeExec) Events(ctx context.Context) error {
	f.calls = append(f.calls, "events")
	return nil
}
func (f *fakeExec) Attend(ctx context.Context, eventID string) error {
	f.calls = append(f.calls, "attend")
	f.arg = eventID
	return nil
}
func (f *fakeExec) Skip(ctx context.Context, eventID string) error {
	f.calls = append(f.calls, "skip")
	f.arg = eventID
	return nil
}
func (f *fakeExec) Announcements(ctx context.Context) error {
	f.calls = append(f.calls, "news")
	return nil
}
func (f *fakeExec) Interests(ctx context.Context) error {
	f.calls = append(f.calls, "interests")
	return nil
}
func (f *fakeExec) SetInterests(ctx context.Context) error {
	f.calls = append(f.calls, "setinterests")
	return nil
}
func (f *fakeExec) AddClub(ctx context.Context) error {
	f.calls = append(f.calls, "addclub")
	return nil
}
func (f *fakeExec) AddEvent(ctx context.Context) error {
	f.calls = append(f.calls, "addevent")
	return nil
}
func (f *fakeExec) AddNews(ctx context.Context) error {
	f.calls = append(f.calls, "addnews")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"feed",
		"events",
		"attend e1",
		"clubs",
		"join c1",
		"news",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "feed", "events", "attend", "clubs", "join", "news"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.arg != "c1" {
		t.Fatalf("last id argument: got %q, want %q", exec.arg, "c1")
	}
}

func TestRunREPL_SearchJoinsArgs(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("search chess club night\nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if exec.arg != "chess club night" {
		t.Fatalf("search query: got %q", exec.arg)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("attend\njoin\nleave\nskip\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
