package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrValidation   = errors.New("email and password are required")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
)
