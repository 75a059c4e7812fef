package pricelist

import (
	"context"

	"github.com/dkarlsson/priceportal/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.PriceItem, error)
}
