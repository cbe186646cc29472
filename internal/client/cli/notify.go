package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/softwareslayer/internal/client/learnings"
)

// Notify prints n as "Title: message".
func (a *App) Notify(n learnings.Notification) {
	fmt.Fprintf(a.out, "%s: %s\n", n.Title, n.Message)
}

// Confirm asks a yes/no question on the terminal; the default is no.
func (a *App) Confirm(ctx context.Context, title, message string) bool {
	if ctx.Err() != nil {
		return false
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("%s\n%s [y/N]", title, message), a.out)
	if err != nil {
		return false
	}
	return confirmed(answer)
}

func (a *App) notifyError(message string) {
	a.Notify(learnings.Notification{Kind: learnings.KindError, Title: learnings.TitleError, Message: message})
}

func (a *App) notifyValidation(message string) {
	a.Notify(learnings.Notification{Kind: learnings.KindValidation, Title: learnings.TitleInputError, Message: message})
}
