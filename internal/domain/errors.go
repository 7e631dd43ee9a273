package domain

import "errors"

// Domain errors represent error conditions in the equipsize domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidArgument is returned when an input lies outside what a
	// correlation supports (unknown pitch type, design temperature beyond
	// the allowable stress table).
	ErrInvalidArgument = errors.New("equipsize: invalid argument")

	// ErrNonConvergence is returned when a fixed-point iteration does not
	// settle within its iteration bound or produces a non-finite value.
	ErrNonConvergence = errors.New("equipsize: iteration did not converge")

	// ErrInvalidConfig is returned when CLI configuration validation fails.
	ErrInvalidConfig = errors.New("equipsize: invalid configuration")

	// ErrInvalidCase is returned when a case file entry fails validation.
	ErrInvalidCase = errors.New("equipsize: invalid case")
)
