// Package cli implements the interactive CampusHub terminal client.
package cli

import (
	"bufio"
	"context"
	"os"

	"campushub/internal/client/client"
	"campushub/internal/client/config"
	"campushub/internal/client/services"
	"campushub/internal/client/session"
)

type App struct {
	config *config.Config
	api    client.Client
	search *services.SearchSession
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := session.Open(ctx, c.SessionDBPath)
	if err != nil {
		return nil, err
	}

	sess := session.NewSQLiteRepository(db)
	api := client.NewRESTClient(c.ServerBaseURL, c.RequestTimeout, sess)

	return &App{
		config: c,
		api:    api,
		search: services.NewSearchSession(api),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.IsLoggedIn(context.Background())
}

func (a *App) Run(ctx context.Context) {
	printlnFn("CampusHub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "signed in"
	}
	return "guest"
}
