package cli

import (
	"context"
	"os"
	"strings"
)

func (a *App) Interests(ctx context.Context) error {
	interests, err := a.api.GetInterests(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(interests) == 0 {
		printlnFn("No interests set.")
		return nil
	}
	printlnFn("Interests: " + strings.Join(interests, ", "))
	return nil
}

func (a *App) SetInterests(ctx context.Context) error {
	line, err := GetSimpleText(a.reader, "Enter interests, comma-separated (e.g. music, sports)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	var interests []string
	for _, tag := range strings.Split(line, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			interests = append(interests, tag)
		}
	}

	if err := a.api.SetInterests(ctx, interests); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Interests saved.")
	return nil
}
