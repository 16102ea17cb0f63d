package cli

import (
	"context"
	"fmt"

	"campushub/internal/client/client"
)

const listLimit = 20

func (a *App) Feed(ctx context.Context) error {
	events, err := a.api.FeaturedFeed(ctx, listLimit)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(events) == 0 {
		printlnFn("Nothing coming up.")
		return nil
	}
	for _, e := range events {
		printEvent(e)
	}
	return nil
}

func (a *App) Events(ctx context.Context) error {
	events, err := a.api.ListEvents(ctx, listLimit)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(events) == 0 {
		printlnFn("No upcoming events.")
		return nil
	}
	for _, e := range events {
		printEvent(e)
	}
	return nil
}

func (a *App) Attend(ctx context.Context, eventID string) error {
	if err := a.api.RegisterForEvent(ctx, eventID); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("You're in.")
	return nil
}

func (a *App) Skip(ctx context.Context, eventID string) error {
	if err := a.api.UnregisterFromEvent(ctx, eventID); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Registration removed.")
	return nil
}

func printEvent(e client.Event) {
	line := fmt.Sprintf("  [%s] %s — %s", e.ID, e.Title, e.StartsAt.Format("Mon Jan 2 15:04"))
	if e.ClubName != nil {
		line += " (" + *e.ClubName + ")"
	}
	if e.Location != "" {
		line += " @ " + e.Location
	}
	printlnFn(line)
}
