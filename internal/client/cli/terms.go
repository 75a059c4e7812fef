package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dkarlsson/priceportal/internal/client/client"
)

func (a *App) terms(ctx context.Context, language string) {
	if !a.isLoggedIn(ctx) {
		fmt.Println("Please log in first")
		return
	}

	doc, err := a.contentService.Terms(ctx, language)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			log.Printf("No terms available for language %q", language)
			return
		}
		log.Printf("error fetching terms: %s", err.Error())
		return
	}

	fmt.Println(doc.Title)
	fmt.Println()
	fmt.Println(doc.Content)
}
