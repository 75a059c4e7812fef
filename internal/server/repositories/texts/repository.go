package texts

import (
	"context"

	"github.com/dkarlsson/priceportal/internal/server/models"
)

type Repository interface {
	ListByLanguage(ctx context.Context, language string) ([]models.Text, error)
}
