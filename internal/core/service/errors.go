package service

import (
	"errors"
	"fmt"

	"github.com/fittrack/fitness-api/internal/core/domain"
)

var domainErrs = []error{
	domain.ErrInvalidInput,
	domain.ErrInvalidCredentials,
	domain.ErrTooManyAttempts,
	domain.ErrUserExists,
	domain.ErrUserNotFound,
	domain.ErrWorkoutNotFound,
	domain.ErrExerciseNotFound,
}

// mapStoreError lets known domain errors pass through and collapses anything
// else (driver failures, lost connections) into ErrStoreUnavailable. The
// original cause stays attached for server-side logs but the HTTP layer only
// ever renders the sentinel's generic message.
func mapStoreError(err error) error {
	for _, known := range domainErrs {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
