package services

import (
	"context"

	"github.com/dkarlsson/priceportal/internal/client/client"
	"github.com/dkarlsson/priceportal/internal/client/models"
)

// ContentService fetches public portal content through the API client.
type ContentService interface {
	Pricelist(ctx context.Context) ([]models.PriceItem, error)
	Terms(ctx context.Context, language string) (*models.Terms, error)
	Texts(ctx context.Context, language string) ([]models.Text, error)
}

type contentService struct {
	client client.Client
}

func NewContentService(client client.Client) ContentService {
	return &contentService{client: client}
}

func (c *contentService) Pricelist(ctx context.Context) ([]models.PriceItem, error) {
	return c.client.Pricelist(ctx)
}

func (c *contentService) Terms(ctx context.Context, language string) (*models.Terms, error) {
	return c.client.Terms(ctx, language)
}

func (c *contentService) Texts(ctx context.Context, language string) ([]models.Text, error) {
	return c.client.Texts(ctx, language)
}
