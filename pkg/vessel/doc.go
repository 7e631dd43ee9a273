// Package vessel estimates the shell weight of a vertical pressure vessel or
// tower from its operating envelope and dimensions.
//
// The wall thickness correlations are empirical fits in English units (psig,
// °F, psi, inches), so inputs are given in SI (kPa, K, m, kg/m³), converted
// internally, and the weight is returned in kilograms (pounds alongside).
//
// # Regimes
//
// A vessel whose lowest operating pressure is at least 101 kPa is designed
// for internal pressure: the wind/seismic thickness tE is averaged with the
// pressure thickness tp as (2·tp + tE)/2. Below 101 kPa the vessel is
// designed against external pressure: tE comes from the elastic buckling
// correlation, an empirical stiffening term is added when positive, and a
// corrosion allowance of 0.125 in is always added.
//
// Both tE equations are implicit in the thickness and are solved with
// [solve.FixedPoint] starting from 0.25 in.
//
// # Boundaries
//
// Regime boundaries are evaluated in order: design pressure uses P ≤ 34.5,
// then P ≤ 6895, then the linear rule; the wall procedure uses P ≥ 101 for
// the internal-pressure branch. Modulus bands are half-open ([lo, hi)) and
// allowable stress bands are closed above ((lo, hi]).
package vessel
