// Package common contains shared constants and sentinel errors used across
// the portal components.
package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound = errors.New("not found")

	// service specific errors
	ErrorValidation    = errors.New("validation error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorInternal      = errors.New("internal error")
	ErrorConfiguration = errors.New("configuration error")

	// token specific errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
