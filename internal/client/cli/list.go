package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/softwareslayer/internal/client/learnings"
)

func (a *App) printLearnings(v learnings.View) {
	if v.Error != "" {
		fmt.Fprintf(a.out, "Error: %s\n", v.Error)
	}
	if v.Loading && len(v.Sections) == 0 {
		fmt.Fprintln(a.out, "Loading learning items...")
		return
	}

	for _, s := range v.Sections {
		fmt.Fprintf(a.out, "== %s ==\n", s.Title)
		if len(s.Data) == 0 {
			fmt.Fprintln(a.out, "  (no items)")
		}
		for _, it := range s.Data {
			fmt.Fprintf(a.out, "  [%d] %s\n", it.ID, it.Title)
		}
	}
}

func (a *App) List(ctx context.Context) error {
	a.printLearnings(a.learnings.State())
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	a.learnings.Refresh(ctx)
	a.printLearnings(a.learnings.State())
	return nil
}

// Add prompts for a title and creates an item in category. The typed title
// is kept as the category's draft, so a failed attempt can simply be retried.
func (a *App) Add(ctx context.Context, category string) error {
	v := a.learnings.State()
	if !slices.Contains(v.Categories, category) {
		fmt.Fprintf(a.out, "Unknown category %q. Available: %s\n", category, strings.Join(v.Categories, ", "))
		return nil
	}

	prompt := fmt.Sprintf("Enter title for %s", category)
	if draft := v.Drafts[category]; draft != "" {
		prompt += fmt.Sprintf(" (empty line keeps %q)", draft)
	}
	title, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if title != "" {
		a.learnings.SetDraftInput(category, title)
	}
	hasDraft := title != "" || strings.TrimSpace(v.Drafts[category]) != ""

	a.learnings.SubmitDraft(ctx, category)
	if !hasDraft {
		return nil
	}

	after := a.learnings.State()
	if _, pending := after.Drafts[category]; !pending {
		fmt.Fprintln(a.out, "Added.")
		a.printLearnings(after)
	}
	return nil
}

func (a *App) Delete(ctx context.Context, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		a.notifyValidation(fmt.Sprintf("Invalid id %q", rawID))
		return nil
	}

	before := countItems(a.learnings.State())
	a.learnings.DeleteItem(ctx, id)
	if countItems(a.learnings.State()) < before {
		fmt.Fprintln(a.out, "Deleted.")
	}
	return nil
}

func countItems(v learnings.View) int {
	n := 0
	for _, s := range v.Sections {
		n += len(s.Data)
	}
	return n
}
