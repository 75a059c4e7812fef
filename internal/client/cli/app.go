// Package cli implements the interactive portal client: a small REPL for
// logging in, browsing the price list and reading the terms.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/dkarlsson/priceportal/internal/client/client"
	"github.com/dkarlsson/priceportal/internal/client/config"
	"github.com/dkarlsson/priceportal/internal/client/services"
)

type App struct {
	config         *config.Config
	authService    services.AuthService
	contentService services.ContentService
	userEmail      string
	reader         *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)

	as := services.NewAuthService(apiClient, db)
	cs := services.NewContentService(apiClient)

	return &App{config: c, authService: as, contentService: cs, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)

	if found, err := a.authService.Restore(ctx); err == nil && found {
		log.Println("Restored previous session")
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.IsLoggedIn(ctx)
}
