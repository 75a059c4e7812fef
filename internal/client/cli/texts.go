package cli

import (
	"context"
	"fmt"
	"log"
)

// texts stays available before login: the UI strings are what a client needs
// to render its login screen in the first place.
func (a *App) texts(ctx context.Context, language string) {
	result, err := a.contentService.Texts(ctx, language)
	if err != nil {
		log.Printf("error fetching texts: %s", err.Error())
		return
	}

	if len(result) == 0 {
		fmt.Printf("No texts available for language %q\n", language)
		return
	}

	for _, text := range result {
		fmt.Printf("%-20s %s\n", text.Key, text.Content)
	}
}
