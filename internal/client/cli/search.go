package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) Search(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		var err error
		query, err = GetSimpleText(a.reader, "Search for", os.Stdout)
		if err != nil {
			printlnFn(err.Error())
			return err
		}
	}

	result, err := a.search.SearchSync(ctx, query)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(result.Events) == 0 && len(result.Clubs) == 0 && len(result.Announcements) == 0 {
		printlnFn("Nothing found.")
		return nil
	}

	if len(result.Events) > 0 {
		printlnFn("Events:")
		for _, e := range result.Events {
			printlnFn(fmt.Sprintf("  [%s] %s — %s", e.ID, e.Title, e.StartsAt.Format("Mon Jan 2 15:04")))
		}
	}
	if len(result.Clubs) > 0 {
		printlnFn("Clubs:")
		for _, c := range result.Clubs {
			printlnFn(fmt.Sprintf("  [%s] %s (%d members)", c.ID, c.Name, c.MemberCount))
		}
	}
	if len(result.Announcements) > 0 {
		printlnFn("Announcements:")
		for _, n := range result.Announcements {
			printlnFn(fmt.Sprintf("  [%s] %s", n.ID, n.Title))
		}
	}
	return nil
}
