package users

import (
	"context"

	"github.com/dkarlsson/priceportal/internal/server/models"
)

// Repository is the identity store adapter. GetByEmail performs a single
// read of the identity record for a normalized email and distinguishes
// absence (common.ErrorNotFound) from store failure (any other error).
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
