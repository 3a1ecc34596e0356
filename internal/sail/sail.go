// Package sail maps a final GRC and a final ARC to a SAIL level, or to
// Category C when the operation leaves the SAIL framework.
package sail

import (
	"fmt"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/validation"
)

// Compute validates req and looks the pair up in the matrix of its version.
// Category C is a result, not an error.
func Compute(req sora.SAILRequest) (sora.SAILResult, error) {
	if err := validation.ValidateSAIL(req); err != nil {
		return sora.SAILResult{}, err
	}

	switch r := req.(type) {
	case sora.SAILRequestV20:
		return computeV20(r)
	case *sora.SAILRequestV20:
		return computeV20(*r)
	case sora.SAILRequestV25:
		return computeV25(r)
	case *sora.SAILRequestV25:
		return computeV25(*r)
	}
	return sora.SAILResult{}, fmt.Errorf("sail: unhandled request type %T", req)
}

func computeV20(r sora.SAILRequestV20) (sora.SAILResult, error) {
	if r.FinalGRC > sora.MaxGRCV20 {
		res := sora.NewCategoryCResult(sora.Version20, r.FinalGRC)
		res.FinalARC = r.FinalARC
		return res, nil
	}

	level, ok := sora.SAILV20(r.FinalGRC, r.FinalARC)
	if !ok {
		return sora.SAILResult{}, &sora.ValidationError{
			Version: sora.Version20,
			Field:   "final_grc",
			Value:   r.FinalGRC,
			Message: "is outside the SAIL matrix",
		}
	}

	res := sora.NewSAILLevelResult(sora.Version20, r.FinalGRC, level)
	res.FinalARC = r.FinalARC
	return res, nil
}

func computeV25(r sora.SAILRequestV25) (sora.SAILResult, error) {
	level, ok := sora.SAILV25(r.FinalGRC, r.ResidualARCLevel)
	if !ok {
		return sora.SAILResult{}, &sora.ValidationError{
			Version: sora.Version25,
			Field:   "final_grc",
			Value:   r.FinalGRC,
			Message: "is outside the SAIL matrix",
		}
	}

	res := sora.NewSAILLevelResult(sora.Version25, r.FinalGRC, level)
	res.ResidualARCLevel = r.ResidualARCLevel
	return res, nil
}
