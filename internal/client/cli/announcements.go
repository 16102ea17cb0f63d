package cli

import (
	"context"
	"fmt"
)

func (a *App) Announcements(ctx context.Context) error {
	list, err := a.api.ListAnnouncements(ctx, listLimit)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(list) == 0 {
		printlnFn("No announcements.")
		return nil
	}
	for _, n := range list {
		line := fmt.Sprintf("  [%s] %s (%s)", n.ID, n.Title, n.CreatedAt.Format("Jan 2"))
		if n.ClubName != nil {
			line += " — " + *n.ClubName
		}
		printlnFn(line)
	}
	return nil
}
