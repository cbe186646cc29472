package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/softwareslayer/internal/client/session"
)

func (a *App) getStatus() string {
	s := ""
	if a.isLoggedIn() {
		s = a.session.User().Username + " "
	}
	if m := a.getMode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Status prints who is signed in, the session state and the connection mode.
// The session is taken from ctx, where Run attaches it.
func (a *App) Status(ctx context.Context) error {
	store := session.FromContext(ctx)

	if u := store.User(); u != nil {
		fmt.Fprintf(a.out, "User: %s %s (%s, %s)\n", u.FirstName, u.LastName, u.Username, u.Email)
	} else {
		fmt.Fprintln(a.out, "User: not logged in")
	}
	fmt.Fprintf(a.out, "Session: %s\n", store.State())

	mode := a.getMode()
	if mode == "" {
		mode = "unknown"
	}
	fmt.Fprintf(a.out, "Connection: %s\n", mode)
	return nil
}

// Root starts the watchers, shows the home view when a session was restored
// and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to Software Slayer (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.learnings.Start(ctx)

	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.session.User().FirstName)
		a.home(ctx)
	} else {
		fmt.Fprintln(a.out, "Please register or log in.")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
