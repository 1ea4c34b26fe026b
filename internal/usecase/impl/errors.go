package impl

import (
	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"
)

// passThrough returns err unchanged when it already carries an AppError and wraps it otherwise.
func passThrough(err error, message string) error {
	if _, ok := errors.AsTarget[domainerrors.AppError](err); ok {
		return err
	}

	return errors.Wrap(err, message)
}
