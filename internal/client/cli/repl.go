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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Feed(ctx context.Context) error
	Clubs(ctx context.Context) error
	MyClubs(ctx context.Context) error
	JoinClub(ctx context.Context, clubID string) error
	LeaveClub(ctx context.Context, clubID string) error
	Events(ctx context.Context) error
	Attend(ctx context.Context, eventID string) error
	Skip(ctx context.Context, eventID string) error
	Announcements(ctx context.Context) error
	Interests(ctx context.Context) error
	SetInterests(ctx context.Context) error
	AddClub(ctx context.Context) error
	AddEvent(ctx context.Context) error
	AddNews(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the CampusHub CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hub> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: search <text>, feed, events, attend <id>, skip <id>, clubs, myclubs, join <id>, leave <id>, news, interests, setinterests, addclub, addevent, addnews, logout, exit")
			} else {
				printlnFn("Available commands: register, login, search <text>, events, clubs, news, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "feed":
			_ = a.Feed(ctx)

		case "events":
			_ = a.Events(ctx)

		case "attend":
			if len(args) == 0 {
				printlnFn("Usage: attend <event-id>")
				continue
			}
			_ = a.Attend(ctx, args[0])

		case "skip":
			if len(args) == 0 {
				printlnFn("Usage: skip <event-id>")
				continue
			}
			_ = a.Skip(ctx, args[0])

		case "clubs":
			_ = a.Clubs(ctx)

		case "myclubs":
			_ = a.MyClubs(ctx)

		case "join":
			if len(args) == 0 {
				printlnFn("Usage: join <club-id>")
				continue
			}
			_ = a.JoinClub(ctx, args[0])

		case "leave":
			if len(args) == 0 {
				printlnFn("Usage: leave <club-id>")
				continue
			}
			_ = a.LeaveClub(ctx, args[0])

		case "news":
			_ = a.Announcements(ctx)

		case "interests":
			_ = a.Interests(ctx)

		case "setinterests":
			_ = a.SetInterests(ctx)

		case "addclub":
			_ = a.AddClub(ctx)

		case "addevent":
			_ = a.AddEvent(ctx)

		case "addnews":
			_ = a.AddNews(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
