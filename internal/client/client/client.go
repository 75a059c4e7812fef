// Package client implements the portal API client and the local database
// used to persist the session token between runs.
package client

import (
	"context"

	"github.com/dkarlsson/priceportal/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	Pricelist(ctx context.Context) ([]models.PriceItem, error)
	Terms(ctx context.Context, language string) (*models.Terms, error)
	Texts(ctx context.Context, language string) ([]models.Text, error)
	Ping(ctx context.Context) error
	SetToken(token string)
	Close() error
}
