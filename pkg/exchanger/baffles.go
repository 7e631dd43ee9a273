package exchanger

import "math"

// baffleDiameterDivisor sets roughly one baffle per 0.9 m of shell diameter.
const baffleDiameterDivisor = 0.9

// BaffleSpacing estimates the number of baffles and their spacing for a
// shell of the given inner diameter (m) and a baffle cut in percent.
// Halves round to even. When no baffle is needed both results are zero.
func BaffleSpacing(shellDiameter, cutPercent float64) (int, float64) {
	count := int(math.Max(0, math.RoundToEven(shellDiameter/baffleDiameterDivisor)))
	if count == 0 {
		return 0, 0
	}
	return count, shellDiameter / (float64(count) + cutPercent/100)
}
