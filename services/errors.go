package services

import (
	"errors"
	"gin-manufacturer/repositories"
)

var (
	ErrMalformedToken   = errors.New("token is missing")
	ErrInvalidToken     = errors.New("invalid token")
	ErrNotFound         = repositories.ErrNotFound
	ErrPaymentsDisabled = errors.New("payment provider is not configured")
)
