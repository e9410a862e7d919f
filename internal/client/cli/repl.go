package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/safepaws/internal/client/models"
	"github.com/dmitrijs2005/safepaws/internal/client/view"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error

	Go(ctx context.Context, page string) error
	Back(ctx context.Context) error
	Refresh(ctx context.Context) error

	Pins(ctx context.Context, args []string) error
	Pin(ctx context.Context, id string) error
	NewPin(ctx context.Context, args []string) error
	Condition(ctx context.Context) error
	Contribute(ctx context.Context) error
	Photo(ctx context.Context, path string) error

	Listings(ctx context.Context, args []string) error
	Listing(ctx context.Context, id string) error
	Apply(ctx context.Context) error
	NewListing(ctx context.Context) error
	EditListing(ctx context.Context) error

	Notifications(ctx context.Context, args []string) error
	Read(ctx context.Context, id string) error
	Review(ctx context.Context, id string) error
	Decide(ctx context.Context, status models.RequestStatus) error
}

const (
	helpSignedOut = "Available commands: register, login, exit"
	helpSignedIn  = `Available commands:
  go <%s>, back, refresh
  pins [name], pin <id>, newpin <lat> <lon>, condition, contribute, photo <path>
  listings [name] [-v] [-s] [-age], listing <id>, apply, newlisting, editlisting
  notifications [-unread] [-pending|-accepted|-rejected|-all], read <id>, review <id>, accept, reject
  profile, logout, exit`
)

// signedInHelp fills the page list from the routes a signed-in user can open.
func signedInHelp() string {
	pages := make([]string, 0, len(view.Routes))
	for _, r := range view.Routes {
		if !r.Public() {
			pages = append(pages, r.String())
		}
	}
	return fmt.Sprintf(helpSignedIn, strings.Join(pages, "|"))
}

// runREPL starts a simple read–eval–print loop for the SafePaws CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when ctx is cancelled, or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn), typically the user
// name and the active page.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("safepaws %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(signedInHelp())
			} else {
				printlnFn(helpSignedOut)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "profile":
			_ = a.Profile(ctx)

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <page>")
				continue
			}
			_ = a.Go(ctx, args[0])
		case "back":
			_ = a.Back(ctx)
		case "refresh":
			_ = a.Refresh(ctx)

		case "pins", "map":
			_ = a.Pins(ctx, args)
		case "pin":
			if len(args) == 0 {
				printlnFn("Usage: pin <id>")
				continue
			}
			_ = a.Pin(ctx, args[0])
		case "newpin":
			_ = a.NewPin(ctx, args)
		case "condition":
			_ = a.Condition(ctx)
		case "contribute":
			_ = a.Contribute(ctx)
		case "photo":
			if len(args) == 0 {
				printlnFn("Usage: photo <path>")
				continue
			}
			_ = a.Photo(ctx, strings.Join(args, " "))

		case "listings":
			_ = a.Listings(ctx, args)
		case "listing":
			if len(args) == 0 {
				printlnFn("Usage: listing <id>")
				continue
			}
			_ = a.Listing(ctx, args[0])
		case "apply":
			_ = a.Apply(ctx)
		case "newlisting":
			_ = a.NewListing(ctx)
		case "editlisting":
			_ = a.EditListing(ctx)

		case "notifications":
			_ = a.Notifications(ctx, args)
		case "read":
			if len(args) == 0 {
				printlnFn("Usage: read <id>")
				continue
			}
			_ = a.Read(ctx, args[0])
		case "review":
			if len(args) == 0 {
				printlnFn("Usage: review <id>")
				continue
			}
			_ = a.Review(ctx, args[0])
		case "accept":
			_ = a.Decide(ctx, models.StatusAccepted)
		case "reject":
			_ = a.Decide(ctx, models.StatusRejected)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			// last line had no newline
			return
		}
	}
}
