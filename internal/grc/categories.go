package grc

import (
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
)

// ColumnV20 returns the SORA 2.0 column for a vehicle. The kinetic energy
// band only counts when both speed and mass are known.
func ColumnV20(maxDimensionM, maxSpeedMS, mtomKg float64) int {
	col := inclusiveBand(maxDimensionM, sora.DimensionThresholdsV20[:])
	if maxSpeedMS > 0 && mtomKg > 0 {
		ke := sora.KineticEnergyJ(mtomKg, maxSpeedMS)
		col = max(col, exclusiveBand(ke, sora.KineticEnergyThresholdsV20[:]))
	}
	return col
}

// ColumnV25 returns the SORA 2.5 size/speed column. Whichever of dimension
// and speed falls in the higher band decides.
func ColumnV25(maxDimensionM, maxSpeedMS float64) int {
	return max(
		inclusiveBand(maxDimensionM, sora.DimensionThresholdsV25[:]),
		inclusiveBand(maxSpeedMS, sora.SpeedThresholdsV25[:]),
	)
}

// PopulationRowV25 returns the SORA 2.5 density row. A controlled ground area
// pins row 0 whatever the measured density.
func PopulationRowV25(density float64, controlledGroundArea bool) int {
	if controlledGroundArea {
		return 0
	}
	return exclusiveBand(density, sora.PopulationThresholdsV25[:]) + 1
}

// inclusiveBand returns the index of the first threshold v does not exceed,
// or len(thresholds) when v is above all of them
func inclusiveBand(v float64, thresholds []float64) int {
	for i, t := range thresholds {
		if v <= t {
			return i
		}
	}
	return len(thresholds)
}

// exclusiveBand returns the index of the first threshold v is strictly below
func exclusiveBand(v float64, thresholds []float64) int {
	for i, t := range thresholds {
		if v < t {
			return i
		}
	}
	return len(thresholds)
}
