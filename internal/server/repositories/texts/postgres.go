package texts

import (
	"context"
	"fmt"

	"github.com/dkarlsson/priceportal/internal/dbx"
	"github.com/dkarlsson/priceportal/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByLanguage(ctx context.Context, language string) ([]models.Text, error) {
	query :=
		`SELECT key, content FROM texts
		 WHERE language = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, language)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Text{}
	for rows.Next() {
		var text models.Text
		if err := rows.Scan(&text.Key, &text.Content); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
