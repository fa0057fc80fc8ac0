package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DaniBVN/Tarif/internal/service"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateDateRange ensures the range is ordered and non-zero.
func validateDateRange(dateRange service.DateRange) error {
	if dateRange.Start.IsZero() || dateRange.End.IsZero() {
		return fmt.Errorf("%w: zero date", ErrInvalidDateRange)
	}
	if dateRange.Start.After(dateRange.End) {
		return ErrInvalidDateRange
	}
	return nil
}
