// Package engine runs a batch of sizing calculations and collects their
// results into a Report.
//
// Each case in a case file becomes a Calculator. Calculators run in the
// order they were registered; a failing case is recorded in Report.Errors
// and does not stop the remaining cases.
package engine
