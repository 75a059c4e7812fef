// Package services contains application services for the portal client.
// This file defines the session service: logging in against the server and
// keeping the issued token in the local database.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dkarlsson/priceportal/internal/client/client"
	"github.com/dkarlsson/priceportal/internal/client/repositories/metadata"
	"github.com/dkarlsson/priceportal/internal/common"
)

// AuthService manages the client session.
//
// Contract:
//   - Login: authenticate against the server; on success the new token
//     replaces whatever was stored before, on failure the stored token is
//     left untouched.
//   - Restore: load a previously stored token, if any, and attach it to the
//     API client.
//   - Logout: discard the stored token.
//   - Token: the currently stored token, empty when logged out.
//   - Close: release underlying client resources.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Restore(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
	Token(ctx context.Context) (string, error)
	IsLoggedIn(ctx context.Context) bool
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

// Login exchanges the credentials for a session token and persists it. The
// store is only written after the server accepted the credentials.
func (a *authService) Login(ctx context.Context, email, password string) error {
	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.getMetadataRepo().Set(ctx, common.TokenStorageKey, []byte(token)); err != nil {
		return fmt.Errorf("token saving error: %w", err)
	}

	a.client.SetToken(token)
	return nil
}

// Restore loads the stored token into the API client. It reports whether a
// token was present.
func (a *authService) Restore(ctx context.Context) (bool, error) {
	token, err := a.getMetadataRepo().Get(ctx, common.TokenStorageKey)
	if err != nil {
		return false, err
	}
	if len(token) == 0 {
		return false, nil
	}
	a.client.SetToken(string(token))
	return true, nil
}

// Logout removes the stored token.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.getMetadataRepo().Delete(ctx, common.TokenStorageKey); err != nil {
		return err
	}
	a.client.SetToken("")
	return nil
}

// Token returns the stored session token, or an empty string when none is
// stored.
func (a *authService) Token(ctx context.Context) (string, error) {
	token, err := a.getMetadataRepo().Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", err
	}
	return string(token), nil
}

// IsLoggedIn reports whether a session token is currently stored.
func (a *authService) IsLoggedIn(ctx context.Context) bool {
	token, err := a.Token(ctx)
	return err == nil && token != ""
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
