package pricelist

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

func (r *PostgresRepository) List(ctx context.Context) ([]models.PriceItem, error) {
	query :=
		`SELECT id, name, price, currency FROM pricelist
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.PriceItem{}
	for rows.Next() {
		var item models.PriceItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Currency); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}
