package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrEventNotFound    = errors.New("event not found")
	ErrDuplicateEvent   = errors.New("event already exists")
	ErrSessionNotFound  = errors.New("session not found")
	ErrUnknownDimension = errors.New("unknown filter dimension")
	ErrAppInfoNotFound  = errors.New("app info not found")
	ErrCatalogNotReady  = errors.New("catalog not loaded")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}
