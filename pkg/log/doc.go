// Package log provides the logging abstraction used by the equipsize
// calculators and CLI.
//
// Calculators accept a [Logger] and default to [NoopLogger], so library users
// get no output unless they opt in. The CLI wires a zerolog console logger:
//
//	zl, err := log.NewConsole(os.Stderr, "info")
//	logger := log.NewZerologAdapterWithLogger(zl)
//	est := vessel.New(vessel.WithLogger(logger))
package log
