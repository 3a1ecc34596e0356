package grc

import (
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
)

func computeV25(r sora.GRCRequestV25) (sora.GRCResult, error) {
	row := PopulationRowV25(r.PopulationDensity, r.ControlledGroundArea)
	col := ColumnV25(r.MaxDimensionM, r.MaxSpeedMS)

	res := newResult(sora.Version25, row, col, r.Mitigations)

	if isSmallUA(r) {
		res.SmallUA = true
		res.IntrinsicGRC = sora.SmallUAIntrinsicGRC
	} else {
		intrinsic, err := sora.IntrinsicGRCV25(row, col)
		if err != nil {
			return sora.GRCResult{}, err
		}
		res.IntrinsicGRC = intrinsic
	}

	res.FinalGRC, res.Adjustments = applyMitigations(sora.Version25, res.IntrinsicGRC, col, r.Mitigations)
	return res, nil
}

// isSmallUA applies the 250 g / 25 m/s override. An unknown mass never
// qualifies.
func isSmallUA(r sora.GRCRequestV25) bool {
	return r.MTOMKg > 0 &&
		r.MTOMKg <= sora.SmallUAMaxMTOMKg &&
		r.MaxSpeedMS <= sora.SmallUAMaxSpeedMS
}
