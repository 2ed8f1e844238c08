package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/qaboard/internal/client/client"
	"github.com/dmitrijs2005/qaboard/internal/client/services"
	"github.com/dmitrijs2005/qaboard/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const loginPrompt = "You need to log in first: type 'login' or 'register'."

// execIface defines the command surface the REPL needs. The real App type
// satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Ask(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Respond(ctx context.Context, args []string) error
	Unrespond(ctx context.Context, args []string) error
	Favorite(ctx context.Context, args []string) error
}

// protectedCommands need a session. They are refused locally when there is
// none.
var protectedCommands = map[string]bool{
	"ask":       true,
	"delete":    true,
	"respond":   true,
	"unrespond": true,
	"fav":       true,
	"logout":    true,
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF or when the user types "exit" or "quit". Command
// errors are printed and the loop goes on.
//
//	Always:
//	  - help                          show available commands
//	  - list | l                      list questions, newest first
//	  - show <id>                     a question with its responses
//	  - exit | quit                   leave the program
//
//	Logged out:
//	  - register, login
//
//	Logged in:
//	  - ask [body]                    post a question
//	  - delete <id>                   delete your question
//	  - respond <id> [body]           answer a question
//	  - unrespond <id> <responseId>   delete your response
//	  - fav <id>                      toggle favorite
//	  - whoami, logout
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("qa %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if protectedCommands[cmd] && !a.isLoggedIn() {
			printlnFn(loginPrompt)
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, show, ask, delete, respond, unrespond, fav, whoami, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, show, register, login, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "show":
			cmdErr = a.Show(ctx, args)

		case "ask":
			cmdErr = a.Ask(ctx, args)

		case "delete":
			cmdErr = a.Delete(ctx, args)

		case "respond":
			cmdErr = a.Respond(ctx, args)

		case "unrespond":
			cmdErr = a.Unrespond(ctx, args)

		case "fav":
			cmdErr = a.Favorite(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(describeError(cmdErr))
		}
	}
}

// describeError turns a command error into one line for the user. For
// validation failures that is the first field message.
func describeError(err error) string {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.FirstField()
	case errors.Is(err, services.ErrLoginRequired):
		return loginPrompt
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again later."
	default:
		return "Error: " + err.Error()
	}
}
