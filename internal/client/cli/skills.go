package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/softwareslayer/internal/client/services"
)

func (a *App) printSkills(skills []string) {
	fmt.Fprintln(a.out, "== Skills ==")
	if len(skills) == 0 {
		fmt.Fprintln(a.out, "  (no skills)")
	}
	for _, s := range skills {
		fmt.Fprintf(a.out, "  - %s\n", s)
	}
}

// skillError reports err to the user. Empty topics are validation problems;
// everything else falls back to fallback unless the server sent a message.
func (a *App) skillError(ctx context.Context, err error, fallback string) error {
	if errors.Is(err, services.ErrEmptyTopic) {
		a.notifyValidation("Please enter a valid topic")
		return err
	}
	a.log.Error(ctx, fallback, "error", err)
	a.notifyError(services.UserMessage(err, fallback))
	return err
}

func (a *App) Skills(ctx context.Context) error {
	skills, err := a.skillService.List(ctx)
	if err != nil {
		return a.skillError(ctx, err, "Failed to get skills")
	}
	a.printSkills(skills)
	return nil
}

func (a *App) AddSkill(ctx context.Context) error {
	topic, err := getSimpleText(a.reader, "Enter skill topic", a.out)
	if err != nil {
		return err
	}
	if err := a.skillService.Add(ctx, topic); err != nil {
		return a.skillError(ctx, err, "Failed to add skill")
	}
	return a.Skills(ctx)
}

func (a *App) RenameSkill(ctx context.Context) error {
	oldTopic, err := getSimpleText(a.reader, "Enter current skill topic", a.out)
	if err != nil {
		return err
	}
	newTopic, err := getSimpleText(a.reader, "Enter new skill topic", a.out)
	if err != nil {
		return err
	}
	if err := a.skillService.Rename(ctx, oldTopic, newTopic); err != nil {
		return a.skillError(ctx, err, "Failed to update skill")
	}
	return a.Skills(ctx)
}

func (a *App) DeleteSkill(ctx context.Context) error {
	topic, err := getSimpleText(a.reader, "Enter skill topic to delete", a.out)
	if err != nil {
		return err
	}
	if topic == "" {
		return a.skillError(ctx, services.ErrEmptyTopic, "")
	}
	if !a.Confirm(ctx, "Confirm Deletion", "Are you sure you want to delete this skill?") {
		return nil
	}
	if err := a.skillService.Remove(ctx, topic); err != nil {
		return a.skillError(ctx, err, "Failed to remove skill")
	}
	return a.Skills(ctx)
}
