package texts

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestListByLanguage_ReturnsRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"key", "content"}).
		AddRow("login", "Log in").
		AddRow("pricelist", "Price List")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT key, content FROM texts`)).
		WithArgs("en").
		WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	result, err := repo.ListByLanguage(context.Background(), "en")
	if err != nil {
		t.Fatalf("ListByLanguage error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 texts, got %d", len(result))
	}
	if result[0].Key != "login" || result[1].Content != "Price List" {
		t.Fatalf("unexpected texts: %+v", result)
	}
}

func TestListByLanguage_StoreError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT key, content FROM texts`)).
		WithArgs("en").
		WillReturnError(errors.New("connection refused"))

	repo := NewPostgresRepository(db)
	if _, err := repo.ListByLanguage(context.Background(), "en"); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
