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
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Open(ctx context.Context, path string) error
	Back(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Users(ctx context.Context, args []string) error
	Offers(ctx context.Context, args []string) error
	SkillTypes(ctx context.Context, args []string) error
	Roles(ctx context.Context, args []string) error
	Notifications(ctx context.Context, args []string) error
	ToggleUser(ctx context.Context, args []string) error
}

// runREPL starts a read-eval-print loop for the back office console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Every screen command first moves the navigator, so route guards apply to
// console commands exactly as they would to links.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bo %s > ", statusFn()))
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
				printlnFn("Available commands: users, recruiters, jobseekers, offers, skills, roles, notifications, toggle-user, open, back, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, register, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "back":
			_ = a.Back(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "u", "users", "recruiters", "jobseekers":
			_ = a.Users(ctx, append([]string{cmd}, args...))

		case "o", "offers":
			_ = a.Offers(ctx, args)

		case "skills":
			_ = a.SkillTypes(ctx, args)

		case "roles":
			_ = a.Roles(ctx, args)

		case "n", "notifications":
			_ = a.Notifications(ctx, args)

		case "toggle-user":
			_ = a.ToggleUser(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
