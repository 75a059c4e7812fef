package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) pricelist(ctx context.Context) {
	if !a.isLoggedIn(ctx) {
		fmt.Println("Please log in first")
		return
	}

	items, err := a.contentService.Pricelist(ctx)
	if err != nil {
		log.Printf("error fetching pricelist: %s", err.Error())
		return
	}

	if len(items) == 0 {
		fmt.Println("The price list is empty")
		return
	}

	for _, item := range items {
		fmt.Printf("%-30s %10.2f %s\n", item.Name, item.Price, item.Currency)
	}
}
