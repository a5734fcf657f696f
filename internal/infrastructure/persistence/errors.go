package persistence

import (
	"errors"

	"github.com/rentals/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translate maps a gorm error to a domain error. The gorm connection is
// opened with TranslateError so driver specific unique and foreign key
// violations arrive as gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func translate(err error, notFound, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.NewNotFoundError(notFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &shared.DomainError{
			Code:    shared.ErrAlreadyExists.Code,
			Message: "A record with the same unique value already exists",
			Kind:    shared.KindAlreadyExists,
			Err:     err,
		}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &shared.DomainError{
			Code:    shared.ErrInvalidState.Code,
			Message: "The record is referenced by other records or references a missing one",
			Kind:    shared.KindInvalidState,
			Err:     err,
		}
	}
	var de *shared.DomainError
	if errors.As(err, &de) {
		return err
	}
	return shared.WrapStorageError("failed to "+op, err)
}
