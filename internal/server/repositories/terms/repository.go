package terms

import (
	"context"

	"github.com/dkarlsson/priceportal/internal/server/models"
)

// Repository fetches a localized terms document. Absence of the requested
// language maps to common.ErrorNotFound.
type Repository interface {
	GetByLanguage(ctx context.Context, language string) (*models.Terms, error)
}
