package terms

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkarlsson/priceportal/internal/common"
	"github.com/dkarlsson/priceportal/internal/dbx"
	"github.com/dkarlsson/priceportal/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByLanguage(ctx context.Context, language string) (*models.Terms, error) {
	query :=
		`SELECT language, title, content FROM terms
		 WHERE language = $1
		 `

	doc := &models.Terms{}
	err := r.db.QueryRowContext(ctx, query, language).Scan(&doc.Language, &doc.Title, &doc.Content)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return doc, nil
}
