package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkarlsson/priceportal/internal/common"
	"github.com/dkarlsson/priceportal/internal/server/models"
	"github.com/dkarlsson/priceportal/internal/server/repositories/repomanager"
)

// ContentService serves the public read-through content: the price list,
// localized terms documents, and localized UI texts.
type ContentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewContentService constructs a ContentService bound to the given database.
func NewContentService(db *sql.DB, m repomanager.RepositoryManager) *ContentService {
	return &ContentService{db: db, repomanager: m}
}

// Pricelist returns all price list rows.
func (s *ContentService) Pricelist(ctx context.Context) ([]models.PriceItem, error) {
	items, err := s.repomanager.Pricelist(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching pricelist: %w", err)
	}
	return items, nil
}

// Terms returns the terms document for the given language, or
// common.ErrorNotFound when no document exists for it.
func (s *ContentService) Terms(ctx context.Context, language string) (*models.Terms, error) {
	doc, err := s.repomanager.Terms(s.db).GetByLanguage(ctx, language)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching terms: %w", err)
	}
	return doc, nil
}

// Texts returns the localized UI strings for the given language.
func (s *ContentService) Texts(ctx context.Context, language string) ([]models.Text, error) {
	result, err := s.repomanager.Texts(s.db).ListByLanguage(ctx, language)
	if err != nil {
		return nil, fmt.Errorf("error fetching texts: %w", err)
	}
	return result, nil
}
