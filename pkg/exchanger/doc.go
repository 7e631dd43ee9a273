// Package exchanger estimates first-pass geometry and weight of a
// shell-and-tube heat exchanger.
//
// The four building blocks are independent:
//
//   - [EstimateTubeCount]: tubes needed for a heat transfer area
//   - [BaffleSpacing]: baffle count and spacing from the shell diameter
//   - [ShellDiameter]: shell diameter from tube count and pitch layout
//   - [Weight]: shell, tube and baffle steel weight
//
// [Design] chains them into a single pass.
//
// # Baffle weight
//
// Baffles are weighed with the shell steel density. The baffle weight is
// part of the shell weight and is added to the total a second time.
package exchanger
