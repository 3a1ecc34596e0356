package grc

import (
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
)

// applyMitigations walks M1, M2 and M3 in order. M1 may not take the GRC below
// the controlled ground area value of its column; nothing goes below 1.
func applyMitigations(version sora.Version, intrinsic, col int, m sora.GRCMitigations) (int, []sora.GRCAdjustment) {
	grc := intrinsic
	adjustments := make([]sora.GRCAdjustment, 0, 3)

	for _, id := range []sora.Mitigation{sora.MitigationM1, sora.MitigationM2, sora.MitigationM3} {
		level := m.Level(id)
		credit := sora.MitigationCredit(version, id, level)

		floor := sora.MinGRC
		if id == sora.MitigationM1 {
			// a floor never raises a value that already sits below it
			floor = max(floor, min(grc, sora.ColumnFloor(version, col)))
		}

		after := max(grc+credit, floor)
		adjustments = append(adjustments, sora.GRCAdjustment{
			Mitigation: id,
			Level:      level,
			Credit:     credit,
			Before:     grc,
			After:      after,
			Floored:    after != grc+credit,
		})
		grc = after
	}

	return grc, adjustments
}
