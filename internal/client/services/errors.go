package services

import (
	"fmt"

	"github.com/dmitrijs2005/mentorly-admin/internal/common"
)

// ValidationError names the offending field. It unwraps to ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

var ErrValidation = fmt.Errorf("invalid input: %w", common.ErrorValidation)

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
