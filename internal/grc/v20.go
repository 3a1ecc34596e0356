package grc

import (
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
)

func computeV20(r sora.GRCRequestV20) (sora.GRCResult, error) {
	row, _ := sora.ScenarioRowV20(r.Scenario)
	col := ColumnV20(r.MaxDimensionM, r.MaxSpeedMS, r.MTOMKg)

	intrinsic, err := sora.IntrinsicGRCV20(row, col)
	if err != nil {
		return sora.GRCResult{}, err
	}

	res := newResult(sora.Version20, row, col, r.Mitigations)
	res.IntrinsicGRC = intrinsic

	// Above 7 the operation leaves SORA 2.0; mitigations cannot bring it back
	if intrinsic > sora.MaxGRCV20 {
		res.OutOfScope = true
		res.FinalGRC = intrinsic
		return res, nil
	}

	res.FinalGRC, res.Adjustments = applyMitigations(sora.Version20, intrinsic, col, r.Mitigations)
	return res, nil
}
