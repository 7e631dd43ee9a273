// Package domain holds the error vocabulary shared by the equipsize
// calculators and the layers that drive them.
//
// It has no dependencies on infrastructure concerns (files, logging, CLI).
// Callers match errors with errors.Is:
//
//	if errors.Is(err, domain.ErrNonConvergence) { ... }
package domain
