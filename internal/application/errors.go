package application

import (
	"errors"
	"fmt"

	"starfolio/internal/domain"
	"starfolio/internal/ports"
)

// Sentinel errors for common conditions
var (
	ErrUnknownView       = errors.New("unknown view")
	ErrUnknownTab        = errors.New("unknown tab")
	ErrUnknownSky        = domain.ErrUnknownSky
	ErrUnsupportedFormat = ports.ErrUnsupportedFormat
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
	// Kind is the sentinel the failure matches with errors.Is, if any
	Kind error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}
