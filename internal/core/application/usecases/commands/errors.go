package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// notFound attaches the entity sentinel to a repository not-found error. Other errors pass
// through unchanged.
func notFound(err error, paramName string, id kernel.UUID, entity error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewObjectNotFoundErrorWithCause(paramName, id.String(), entity)
	}
	return err
}
