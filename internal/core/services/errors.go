package services

import (
	"errors"
	"fmt"

	"github.com/konskyyy/ewidencja-sprzetu/internal/apperrors"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
)

func isClientError(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrForbidden)
}

func validateKind(kind domain.EntityKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unsupported kind %q", apperrors.ErrValidation, kind)
	}
	return nil
}

func validatePositiveID(field string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be a positive integer", apperrors.ErrValidation, field)
	}
	return nil
}
