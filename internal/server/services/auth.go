// Package services contains server-side business logic. This file implements
// AuthService, which exchanges submitted credentials for a signed session
// token.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/dkarlsson/priceportal/internal/common"
	"github.com/dkarlsson/priceportal/internal/logging"
	"github.com/dkarlsson/priceportal/internal/server/auth"
	"github.com/dkarlsson/priceportal/internal/server/config"
	"github.com/dkarlsson/priceportal/internal/server/repositories/repomanager"
)

// AuthService is the authentication gateway. Each Login call walks the
// gates validate -> look up -> verify -> issue and returns either a signed
// session token or one of the common sentinel errors:
//
//   - common.ErrorValidation: email or password empty after trimming
//   - common.ErrorUnauthorized: unknown email or password mismatch
//     (indistinguishable to the caller, distinguished in the logs)
//   - common.ErrorConfiguration: no signing secret configured
//   - common.ErrorInternal: store failure or signing failure
//
// The service holds no mutable state across attempts; concurrent logins are
// independent.
type AuthService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	verifier      auth.Verifier
	jwtSecret     []byte
	tokenValidity time.Duration
	logger        logging.Logger
	now           func() time.Time
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, v auth.Verifier, cfg *config.Config, l logging.Logger) *AuthService {
	return &AuthService{
		db:            db,
		repomanager:   m,
		verifier:      v,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		logger:        l.With("module", "auth_service"),
		now:           time.Now,
	}
}

// Login verifies the submitted credentials and, on success, returns a new
// session token. The email is trimmed and lowercased and the password
// trimmed before any lookup or comparison. Exactly one store lookup is
// performed per attempt; a store failure (including context cancellation)
// is terminal and never reported as invalid credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		s.logger.Warn(ctx, "login rejected", "reason", "missing_fields")
		return "", common.ErrorValidation
	}

	s.logger.Info(ctx, "login attempt", "email", email)

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "login rejected", "reason", "user_not_found", "email", email)
			return "", common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "login failed", "reason", "store_error", "error", err.Error())
		return "", common.ErrorInternal
	}

	if !s.verifier.Verify(password, user.Password) {
		s.logger.Warn(ctx, "login rejected", "reason", "password_mismatch", "email", email)
		return "", common.ErrorUnauthorized
	}

	// The secret is checked here rather than inside the signing call so a
	// missing value surfaces as an operator error, not a library failure.
	if len(s.jwtSecret) == 0 {
		s.logger.Error(ctx, "login failed", "reason", "missing_signing_secret")
		return "", common.ErrorConfiguration
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.now(), s.tokenValidity)
	if err != nil {
		s.logger.Error(ctx, "login failed", "reason", "signing_error", "error", err.Error())
		return "", common.ErrorInternal
	}

	s.logger.Info(ctx, "login successful", "email", email)
	return token, nil
}
