// Package arc classifies the air risk of an operation: the airspace encounter
// category, the initial ARC and the ARC left after tactical mitigation.
package arc

import (
	"fmt"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/validation"
)

// Compute validates req and classifies it. SORA 2.0 results carry letter
// ratings, SORA 2.5 results numeric levels.
func Compute(req sora.ARCRequest) (sora.ARCResult, error) {
	if err := validation.ValidateARC(req); err != nil {
		return sora.ARCResult{}, err
	}

	in := req.Airspace()
	aec := EncounterCategory(in)

	switch req.Version() {
	case sora.Version20:
		return computeV20(aec, in.TacticalMitigation), nil
	case sora.Version25:
		return computeV25(aec, in.TacticalMitigation), nil
	}
	return sora.ARCResult{}, fmt.Errorf("arc: unhandled version %q", req.Version())
}

func computeV20(aec int, tactical sora.MitigationLevel) sora.ARCResult {
	initial := sora.AECRating(aec)
	final, reduced := ReduceRating(initial, tactical)

	return sora.ARCResult{
		Version:            sora.Version20,
		AEC:                aec,
		AECDescription:     sora.AECDescription(aec),
		InitialRating:      initial,
		FinalRating:        final,
		TacticalMitigation: tactical,
		Reduced:            reduced,
	}
}

func computeV25(aec int, tactical sora.MitigationLevel) sora.ARCResult {
	initial := sora.AECLevelV25(aec)
	final, reduced := ReduceLevel(initial, tactical)

	return sora.ARCResult{
		Version:            sora.Version25,
		AEC:                aec,
		AECDescription:     sora.AECDescription(aec),
		InitialLevel:       initial,
		FinalLevel:         final,
		TacticalMitigation: tactical,
		Reduced:            reduced,
	}
}
