// Package units holds the physical constants and unit conversion factors
// used by the sizing correlations.
package units

import "math"

// Physical constants.
const (
	// Gravity is the gravitational acceleration, m/s².
	Gravity = 9.81
)

// Conversion factors. The correlations in pkg/vessel are empirical fits in
// English units, so SI inputs are converted on the way in and the weight
// converted back on the way out.
const (
	KgPerM3ToLbPerIn3 = 0.000036127298147753
	MetreToInch       = 39.3701
	KPaToPsi          = 0.145038
	KgToLb            = 2.20462
	SecondsPerHour    = 3600.0
)

// KelvinToFahrenheit converts an absolute temperature to °F.
func KelvinToFahrenheit(k float64) float64 {
	return (k-273.15)*9/5 + 32.0
}

// CircleArea returns the area of a circle of diameter d.
func CircleArea(d float64) float64 {
	return math.Pi / 4 * d * d
}

// AnnulusArea returns the area between two concentric circles of outer
// diameter do and inner diameter di.
func AnnulusArea(do, di float64) float64 {
	return math.Pi * (do*do - di*di) / 4
}
