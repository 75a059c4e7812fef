package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus(ctx context.Context) string {
	if a.userEmail != "" {
		return fmt.Sprintf("(%s)", a.userEmail)
	}
	if a.isLoggedIn(ctx) {
		return "(logged in)"
	}
	return ""
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the portal CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("portal %s> ", a.getStatus(ctx))
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Println("Available commands: pricelist, terms <lang>, texts <lang>, logout, exit")
			} else {
				fmt.Println("Available commands: login, texts <lang>, exit")
			}

		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "pricelist":
			a.pricelist(ctx)
		case "terms":
			lang := "en"
			if len(args) > 0 {
				lang = args[0]
			}
			a.terms(ctx, lang)
		case "texts":
			lang := "en"
			if len(args) > 0 {
				lang = args[0]
			}
			a.texts(ctx, lang)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
