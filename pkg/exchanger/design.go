package exchanger

import "fmt"

// DesignInput collects everything needed for a first-pass exchanger.
type DesignInput struct {
	Area             float64 // m²
	TubeOD           float64 // m
	TubeLength       float64 // m
	MaxTubes         int
	MinTubes         int
	Pitch            Pitch
	MinShellDiameter float64 // m
	BaffleCut        float64 // %

	ShellThickness  float64
	TubeThickness   float64
	BaffleThickness float64
	ShellDensity    float64
	TubeDensity     float64
}

// DesignResult is the outcome of Design. When Feasible is false only
// TubeCount is meaningful.
type DesignResult struct {
	Feasible      bool
	TubeCount     int
	ShellDiameter float64 // m
	BaffleCount   int
	BaffleSpacing float64 // m
	Weight        WeightResult
}

// Design chains EstimateTubeCount, ShellDiameter, BaffleSpacing and Weight.
// An infeasible tube count is reported through DesignResult.Feasible, not
// as an error.
func Design(in DesignInput) (DesignResult, error) {
	if _, err := in.Pitch.Factor(); err != nil {
		return DesignResult{}, err
	}

	tubes := EstimateTubeCount(TubeCountInput{
		Area:     in.Area,
		TubeOD:   in.TubeOD,
		Length:   in.TubeLength,
		MaxTubes: in.MaxTubes,
		MinTubes: in.MinTubes,
	})
	if tubes == Infeasible {
		return DesignResult{Feasible: false, TubeCount: Infeasible}, nil
	}

	shell, err := ShellDiameter(ShellInput{
		TubeCount:        tubes,
		TubeOD:           in.TubeOD,
		Pitch:            in.Pitch,
		MinShellDiameter: in.MinShellDiameter,
	})
	if err != nil {
		return DesignResult{}, fmt.Errorf("shell diameter: %w", err)
	}

	baffles, spacing := BaffleSpacing(shell, in.BaffleCut)

	weight := Weight(WeightInput{
		ShellDiameter:   shell,
		TubeLength:      in.TubeLength,
		TubeOD:          in.TubeOD,
		TubeCount:       tubes,
		BaffleSpacing:   spacing,
		ShellThickness:  in.ShellThickness,
		TubeThickness:   in.TubeThickness,
		BaffleThickness: in.BaffleThickness,
		ShellDensity:    in.ShellDensity,
		TubeDensity:     in.TubeDensity,
	})

	return DesignResult{
		Feasible:      true,
		TubeCount:     tubes,
		ShellDiameter: shell,
		BaffleCount:   baffles,
		BaffleSpacing: spacing,
		Weight:        weight,
	}, nil
}
