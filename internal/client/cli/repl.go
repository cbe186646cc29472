package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
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
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Add(ctx context.Context, category string) error
	Delete(ctx context.Context, id string) error
	Skills(ctx context.Context) error
	AddSkill(ctx context.Context) error
	RenameSkill(ctx context.Context) error
	DeleteSkill(ctx context.Context) error
	Status(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, status, exit"
	helpLoggedIn  = "Available commands: (l)ist, refresh, add <category>, delete <id>, skills, addskill, renameskill, delskill, status, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the Software Slayer CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help               - show available commands
//	  - register           - create an account
//	  - login              - authenticate
//	  - status             - show session and connection state
//	  - exit | quit        - leave the program
//
//	Logged in:
//	  - list | l           - show learning items by category
//	  - refresh            - reload learning items
//	  - add <category>     - add a learning item
//	  - delete <id>        - delete a learning item
//	  - skills             - list skills
//	  - addskill           - add a skill
//	  - renameskill        - rename a skill
//	  - delskill           - delete a skill
//	  - logout             - log out
//
// Errors returned by command handlers are ignored here; handlers report to
// the user themselves. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("slayer %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if needsLogin(cmd) && !a.isLoggedIn() {
			printlnFn("Please log in first")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <category>")
				continue
			}
			_ = a.Add(ctx, strings.Join(args, " "))

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "skills":
			_ = a.Skills(ctx)

		case "addskill":
			_ = a.AddSkill(ctx)

		case "renameskill":
			_ = a.RenameSkill(ctx)

		case "delskill":
			_ = a.DeleteSkill(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func needsLogin(cmd string) bool {
	switch cmd {
	case "logout", "l", "list", "refresh", "add", "delete", "skills", "addskill", "renameskill", "delskill":
		return true
	default:
		return false
	}
}
