package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dkarlsson/priceportal/internal/client/client"
	"github.com/dkarlsson/priceportal/internal/common"
)

func (a *App) Login(ctx context.Context) {

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(password)

	err = a.authService.Login(ctx, email, string(password))
	if err != nil {
		switch {
		case errors.Is(err, client.ErrUnavailable):
			log.Println("Server unavailable, try again later")
		case errors.Is(err, client.ErrUnauthorized):
			log.Println("Invalid credentials")
		case errors.Is(err, client.ErrValidation):
			log.Println("Email and password are required")
		default:
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return
	}

	a.userEmail = email
	log.Println("Login successful")
}

func (a *App) Logout(ctx context.Context) {
	if err := a.authService.Logout(ctx); err != nil {
		log.Printf("Logout error: %s", err.Error())
		return
	}
	a.userEmail = ""
	log.Println("Logged out")
}
