package sim

import (
	"errors"
	"fmt"
)

// Domain errors for input validation.
var (
	// ErrNegativeInput indicates a physical quantity that cannot be negative.
	ErrNegativeInput = errors.New("sim: negative value for physical quantity")

	// ErrFractionBounds indicates a dimensionless fraction outside [0, 1].
	ErrFractionBounds = errors.New("sim: fraction outside [0, 1]")

	// ErrAngleBounds indicates a launch angle outside [0, 90] degrees.
	ErrAngleBounds = errors.New("sim: angle outside [0, 90] degrees")

	// ErrNonPositive indicates a parameter that must be strictly positive.
	ErrNonPositive = errors.New("sim: parameter must be positive")

	// ErrUnknownParam indicates a parameter name the model does not define.
	ErrUnknownParam = errors.New("sim: unknown parameter")

	// ErrUnknownModel indicates a model name absent from the registry.
	ErrUnknownModel = errors.New("sim: unknown model")
)

// InputError wraps a validation failure with model and parameter context.
type InputError struct {
	Model   string
	Param   string
	Value   float64
	Wrapped error
}

func (e *InputError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %v", e.Model, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s=%g: %v", e.Model, e.Param, e.Value, e.Wrapped)
}

func (e *InputError) Unwrap() error {
	return e.Wrapped
}
