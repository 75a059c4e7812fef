// Package auth implements the token issuer and the pluggable credential
// verifier strategies.
package auth

import (
	"errors"
	"time"

	"github.com/dkarlsson/priceportal/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity assertions embedded in a session token:
// the standard registered claims plus the subject's user ID and email.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
}

// GenerateToken signs an HS256 session token asserting the given identity.
// The token is issued at now and expires at now + validityDuration; the
// validity window is entirely determined by the embedded expiry, there is
// no server-side revocation.
func GenerateToken(userID, email string, secretKey []byte, now time.Time, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the token's signature and expiry and returns its
// claims. Expired tokens yield common.ErrTokenExpired; any other
// verification failure yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
