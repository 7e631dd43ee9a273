package equipsize_test

import (
	"fmt"

	"github.com/bft-labs/equipsize"
)

func ExampleSizeSeparator() {
	res := equipsize.SizeSeparator(equipsize.SeparatorInput{
		VaporDensity:  1.2,
		LiquidDensity: 1000,
		GasFlow:       1.0,
		LiquidFlow:    0.01,
		GasViscosity:  1.8e-5,
	})
	fmt.Printf("diameter %.3f m, volume %.2f m3\n", res.Diameter, res.Volume)
	// Output: diameter 2.246 m, volume 26.68 m3
}

func ExampleDesignExchanger() {
	res, err := equipsize.DesignExchanger(equipsize.ExchangerInput{
		Area:       50,
		TubeOD:     0.025,
		TubeLength: 5,
		MaxTubes:   500,
		Pitch:      equipsize.PitchTriangular,
		BaffleCut:  25,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d tubes, shell %.3f m, %.1f kg\n", res.TubeCount, res.ShellDiameter, res.Weight.Total)
	// Output: 128 tubes, shell 0.228 m, 1099.8 kg
}

func ExampleVesselWeight() {
	res, err := equipsize.VesselWeight(equipsize.VesselInput{
		LowestPressure:     101,
		HighestTemperature: 300,
		Diameter:           1,
		Length:             5,
		Density:            7850,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s, %.2f in, %.1f kg\n", res.Regime, res.Thickness, res.Weight)
	// Output: internal-pressure, 0.25 in, 914.1 kg
}
