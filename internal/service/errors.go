package service

import (
	"errors"

	"github.com/lshigami/examdesk/internal/apperror"
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

// storeFailure classifies a repository error for the caller.
func storeFailure(err error, op string) error {
	switch {
	case repository.IsDuplicate(err):
		return apperror.Conflict(apperror.CodeDuplicate, "%s: record already exists", op)
	case errors.Is(err, repository.ErrStaleWrite):
		return apperror.Conflict(apperror.CodeStaleWrite, "%s: record was changed by another request, retry", op)
	}
	log.Error().Err(err).Str("op", op).Msg("Store operation failed")
	return apperror.Store(err, "%s", op)
}
