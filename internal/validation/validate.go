package validation

import (
	"fmt"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
)

// ValidateGRC checks the numeric ranges and enumerations of a ground risk
// request. Every failure is reported, not just the first.
func ValidateGRC(req sora.GRCRequest) error {
	errs := sora.NewErrorList()

	switch r := req.(type) {
	case sora.GRCRequestV20:
		validateGRCV20(errs, r)
	case *sora.GRCRequestV20:
		if r == nil {
			errs.Add("", "request", nil, "is required")
			break
		}
		validateGRCV20(errs, *r)
	case sora.GRCRequestV25:
		validateGRCV25(errs, r)
	case *sora.GRCRequestV25:
		if r == nil {
			errs.Add("", "request", nil, "is required")
			break
		}
		validateGRCV25(errs, *r)
	case nil:
		errs.Add("", "request", nil, "is required")
	default:
		errs.Add("", "request", fmt.Sprintf("%T", req), "is not a ground risk request")
	}

	return errs.ToError()
}

func validateGRCV20(errs *sora.ErrorList, r sora.GRCRequestV20) {
	v := sora.Version20
	checkMeasure(errs, v, "max_dimension_m", r.MaxDimensionM)
	checkMeasure(errs, v, "max_speed_ms", r.MaxSpeedMS)
	checkMeasure(errs, v, "mtom_kg", r.MTOMKg)
	if !r.Scenario.IsValid() {
		errs.Add(v, "scenario", string(r.Scenario), "must be a SORA 2.0 operational scenario")
	}
	checkMitigations(errs, v, r.Mitigations)
}

func validateGRCV25(errs *sora.ErrorList, r sora.GRCRequestV25) {
	v := sora.Version25
	checkMeasure(errs, v, "max_dimension_m", r.MaxDimensionM)
	checkMeasure(errs, v, "max_speed_ms", r.MaxSpeedMS)
	checkMeasure(errs, v, "population_density", r.PopulationDensity)
	checkMeasure(errs, v, "mtom_kg", r.MTOMKg)
	checkMitigations(errs, v, r.Mitigations)
}

// ValidateARC checks the enumerations, ranges and flag consistency of an air
// risk request
func ValidateARC(req sora.ARCRequest) error {
	errs := sora.NewErrorList()

	switch r := req.(type) {
	case sora.ARCRequestV20, sora.ARCRequestV25:
		validateAirspace(errs, r.Version(), r.Airspace())
	case *sora.ARCRequestV20:
		if r == nil {
			errs.Add("", "request", nil, "is required")
			break
		}
		validateAirspace(errs, sora.Version20, r.AirspaceInputs)
	case *sora.ARCRequestV25:
		if r == nil {
			errs.Add("", "request", nil, "is required")
			break
		}
		validateAirspace(errs, sora.Version25, r.AirspaceInputs)
	case nil:
		errs.Add("", "request", nil, "is required")
	default:
		errs.Add("", "request", fmt.Sprintf("%T", req), "is not an air risk request")
	}

	return errs.ToError()
}

func validateAirspace(errs *sora.ErrorList, v sora.Version, in sora.AirspaceInputs) {
	checkMeasure(errs, v, "altitude_agl_ft", in.AltitudeAGLFt)
	if !sora.IsFinite(in.AltitudeAMSLFt) {
		errs.Add(v, "altitude_amsl_ft", in.AltitudeAMSLFt, "must be a finite number")
	}
	if !in.AirspaceClass.IsValid() {
		errs.Add(v, "airspace_class", string(in.AirspaceClass), "must be one of A-G")
	}
	if !in.Environment.IsValid() {
		errs.Add(v, "environment", string(in.Environment), "must be urban, suburban, rural or controlled")
	}
	if !in.TacticalMitigation.IsValid() {
		errs.Add(v, "tactical_mitigation", int(in.TacticalMitigation), "must be None, Low, Medium or High")
	}
	// The encounter category sequence assumes these flags never coincide
	if in.AtypicalSegregated && in.NearAerodrome {
		errs.Add(v, "atypical_segregated", true, "cannot be combined with near_aerodrome")
	}
}

// ValidateSAIL checks that the final GRC and ARC are inside the matrix of the
// request's version
func ValidateSAIL(req sora.SAILRequest) error {
	errs := sora.NewErrorList()

	switch r := req.(type) {
	case sora.SAILRequestV20:
		validateSAILV20(errs, r)
	case *sora.SAILRequestV20:
		if r == nil {
			errs.Add("", "request", nil, "is required")
			break
		}
		validateSAILV20(errs, *r)
	case sora.SAILRequestV25:
		validateSAILV25(errs, r)
	case *sora.SAILRequestV25:
		if r == nil {
			errs.Add("", "request", nil, "is required")
			break
		}
		validateSAILV25(errs, *r)
	case nil:
		errs.Add("", "request", nil, "is required")
	default:
		errs.Add("", "request", fmt.Sprintf("%T", req), "is not a SAIL request")
	}

	return errs.ToError()
}

func validateSAILV20(errs *sora.ErrorList, r sora.SAILRequestV20) {
	v := sora.Version20
	// GRC above 7 is legal input and classifies as Category C
	if r.FinalGRC < sora.MinGRC || r.FinalGRC > sora.MaxIntrinsicGRC {
		errs.Add(v, "final_grc", r.FinalGRC, fmt.Sprintf("must be between %d and %d", sora.MinGRC, sora.MaxIntrinsicGRC))
	}
	if !r.FinalARC.IsValid() {
		errs.Add(v, "final_arc", int(r.FinalARC), "must be ARC-a, ARC-b, ARC-c or ARC-d")
	}
}

func validateSAILV25(errs *sora.ErrorList, r sora.SAILRequestV25) {
	v := sora.Version25
	if r.FinalGRC < sora.MinGRC || r.FinalGRC > sora.MaxIntrinsicGRC {
		errs.Add(v, "final_grc", r.FinalGRC, fmt.Sprintf("must be between %d and %d", sora.MinGRC, sora.MaxIntrinsicGRC))
	}
	if !r.ResidualARCLevel.IsValid() {
		errs.Add(v, "residual_arc_level", int(r.ResidualARCLevel),
			fmt.Sprintf("must be between %d and %d", sora.MinARCLevel, sora.MaxARCLevel))
	}
}

func checkMeasure(errs *sora.ErrorList, v sora.Version, field string, value float64) {
	if !sora.IsFinite(value) {
		errs.Add(v, field, value, "must be a finite number")
		return
	}
	if value < 0 {
		errs.Add(v, field, value, "must not be negative")
	}
}

func checkMitigations(errs *sora.ErrorList, v sora.Version, m sora.GRCMitigations) {
	for _, id := range []sora.Mitigation{sora.MitigationM1, sora.MitigationM2, sora.MitigationM3} {
		if level := m.Level(id); !level.IsValid() {
			errs.Add(v, "mitigations."+string(id), int(level), "must be None, Low, Medium or High")
		}
	}
}
