package cli

import (
	"context"
	"fmt"

	"campushub/internal/client/client"
)

func (a *App) Clubs(ctx context.Context) error {
	clubs, err := a.api.ListClubs(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(clubs) == 0 {
		printlnFn("No clubs yet.")
		return nil
	}
	for _, c := range clubs {
		printClub(c)
	}
	return nil
}

func (a *App) MyClubs(ctx context.Context) error {
	clubs, err := a.api.ListJoinedClubs(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(clubs) == 0 {
		printlnFn("You haven't joined any clubs.")
		return nil
	}
	for _, c := range clubs {
		printClub(c)
	}
	return nil
}

func (a *App) JoinClub(ctx context.Context, clubID string) error {
	if err := a.api.JoinClub(ctx, clubID); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Welcome to the club!")
	return nil
}

func (a *App) LeaveClub(ctx context.Context, clubID string) error {
	if err := a.api.LeaveClub(ctx, clubID); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Left the club.")
	return nil
}

func printClub(c client.Club) {
	line := fmt.Sprintf("  [%s] %s (%d members)", c.ID, c.Name, c.MemberCount)
	if c.Category != "" {
		line += " — " + c.Category
	}
	printlnFn(line)
}
