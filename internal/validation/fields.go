package validation

import (
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
)

// Wire shapes. Pointer fields tell an omitted value apart from a zero value so
// the builders can enforce which fields each version requires or forbids.

// MitigationFields is the wire form of the ground-risk mitigation vector
type MitigationFields struct {
	M1 *string `json:"m1,omitempty" yaml:"m1,omitempty"`
	M2 *string `json:"m2,omitempty" yaml:"m2,omitempty"`
	M3 *string `json:"m3,omitempty" yaml:"m3,omitempty"`
}

// GRCFields is the wire form of a ground risk request
type GRCFields struct {
	Version              string            `json:"version" yaml:"version"`
	MaxDimensionM        *float64          `json:"max_dimension_m,omitempty" yaml:"max_dimension_m,omitempty"`
	MaxSpeedMS           *float64          `json:"max_speed_ms,omitempty" yaml:"max_speed_ms,omitempty"`
	MTOMKg               *float64          `json:"mtom_kg,omitempty" yaml:"mtom_kg,omitempty"`
	Scenario             *string           `json:"scenario,omitempty" yaml:"scenario,omitempty"`
	PopulationDensity    *float64          `json:"population_density,omitempty" yaml:"population_density,omitempty"`
	ControlledGroundArea *bool             `json:"controlled_ground_area,omitempty" yaml:"controlled_ground_area,omitempty"`
	Mitigations          *MitigationFields `json:"mitigations,omitempty" yaml:"mitigations,omitempty"`
}

// ARCFields is the wire form of an air risk request. Altitude above ground is
// given in exactly one of feet or metres.
type ARCFields struct {
	Version            string   `json:"version" yaml:"version"`
	AltitudeAGLFt      *float64 `json:"altitude_agl_ft,omitempty" yaml:"altitude_agl_ft,omitempty"`
	AltitudeAGLM       *float64 `json:"altitude_agl_m,omitempty" yaml:"altitude_agl_m,omitempty"`
	AltitudeAMSLFt     *float64 `json:"altitude_amsl_ft,omitempty" yaml:"altitude_amsl_ft,omitempty"`
	AirspaceClass      *string  `json:"airspace_class,omitempty" yaml:"airspace_class,omitempty"`
	Environment        *string  `json:"environment,omitempty" yaml:"environment,omitempty"`
	NearAerodrome      *bool    `json:"near_aerodrome,omitempty" yaml:"near_aerodrome,omitempty"`
	ModeSVeil          *bool    `json:"mode_s_veil,omitempty" yaml:"mode_s_veil,omitempty"`
	TMZ                *bool    `json:"tmz,omitempty" yaml:"tmz,omitempty"`
	AtypicalSegregated *bool    `json:"atypical_segregated,omitempty" yaml:"atypical_segregated,omitempty"`
	TacticalMitigation *string  `json:"tactical_mitigation,omitempty" yaml:"tactical_mitigation,omitempty"`
}

// SAILFields is the wire form of a SAIL request. SORA 2.0 takes a letter ARC,
// SORA 2.5 a numeric residual level.
type SAILFields struct {
	Version          string  `json:"version" yaml:"version"`
	FinalGRC         *int    `json:"final_grc,omitempty" yaml:"final_grc,omitempty"`
	FinalARC         *string `json:"final_arc,omitempty" yaml:"final_arc,omitempty"`
	ResidualARCLevel *int    `json:"residual_arc_level,omitempty" yaml:"residual_arc_level,omitempty"`
}

// AssessmentFields is the wire form of an end-to-end assessment. The top level
// version applies to both halves unless they carry their own.
type AssessmentFields struct {
	Version string    `json:"version" yaml:"version"`
	GRC     GRCFields `json:"grc" yaml:"grc"`
	ARC     ARCFields `json:"arc" yaml:"arc"`
}

// BuildGRCRequest turns wire fields into the request variant of their version.
// Missing, forbidden and out-of-range fields are all reported together.
func BuildGRCRequest(f GRCFields) (sora.GRCRequest, error) {
	version, err := sora.ParseVersion(f.Version)
	if err != nil {
		return nil, err
	}

	errs := sora.NewErrorList()
	mitigations := buildMitigations(errs, version, f.Mitigations)

	var req sora.GRCRequest
	switch version {
	case sora.Version20:
		requireField(errs, version, "max_dimension_m", f.MaxDimensionM != nil)
		requireField(errs, version, "scenario", f.Scenario != nil)
		forbid(errs, version, "population_density", f.PopulationDensity != nil)
		forbid(errs, version, "controlled_ground_area", f.ControlledGroundArea != nil)
		if (f.MaxSpeedMS == nil) != (f.MTOMKg == nil) {
			errs.Add(version, "max_speed_ms", nil, "and mtom_kg must be supplied together")
		}

		r := sora.GRCRequestV20{
			MaxDimensionM: deref(f.MaxDimensionM),
			MaxSpeedMS:    deref(f.MaxSpeedMS),
			MTOMKg:        deref(f.MTOMKg),
			Mitigations:   mitigations,
		}
		if f.Scenario != nil {
			scenario, perr := sora.ParseOperationalScenario(*f.Scenario)
			if perr != nil {
				errs.Add(version, "scenario", *f.Scenario, "must be a SORA 2.0 operational scenario")
			}
			r.Scenario = scenario
		}
		req = r

	case sora.Version25:
		controlled := f.ControlledGroundArea != nil && *f.ControlledGroundArea
		requireField(errs, version, "max_dimension_m", f.MaxDimensionM != nil)
		requireField(errs, version, "max_speed_ms", f.MaxSpeedMS != nil)
		if !controlled {
			requireField(errs, version, "population_density", f.PopulationDensity != nil)
		}
		forbid(errs, version, "scenario", f.Scenario != nil)

		req = sora.GRCRequestV25{
			MaxDimensionM:        deref(f.MaxDimensionM),
			MaxSpeedMS:           deref(f.MaxSpeedMS),
			PopulationDensity:    deref(f.PopulationDensity),
			ControlledGroundArea: controlled,
			MTOMKg:               deref(f.MTOMKg),
			Mitigations:          mitigations,
		}
	}

	if errs.HasErrors() {
		return nil, errs.ToError()
	}
	if err := ValidateGRC(req); err != nil {
		return nil, err
	}
	return req, nil
}

// BuildARCRequest turns wire fields into the request variant of their version
func BuildARCRequest(f ARCFields) (sora.ARCRequest, error) {
	version, err := sora.ParseVersion(f.Version)
	if err != nil {
		return nil, err
	}

	errs := sora.NewErrorList()
	var in sora.AirspaceInputs

	switch {
	case f.AltitudeAGLFt != nil && f.AltitudeAGLM != nil:
		errs.Add(version, "altitude_agl_ft", nil, "cannot be combined with altitude_agl_m")
	case f.AltitudeAGLFt != nil:
		in.AltitudeAGLFt = *f.AltitudeAGLFt
	case f.AltitudeAGLM != nil:
		// checked here so a bad value is reported under the name the caller sent
		checkMeasure(errs, version, "altitude_agl_m", *f.AltitudeAGLM)
		in.AltitudeAGLFt = sora.MetersToFeet(*f.AltitudeAGLM)
	default:
		errs.Add(version, "altitude_agl_ft", nil, "is required (or altitude_agl_m)")
	}

	// Without an AMSL figure the AGL altitude is the best available lower bound
	in.AltitudeAMSLFt = in.AltitudeAGLFt
	if f.AltitudeAMSLFt != nil {
		in.AltitudeAMSLFt = *f.AltitudeAMSLFt
	}

	if f.AirspaceClass == nil {
		errs.Add(version, "airspace_class", nil, "is required")
	} else if class, perr := sora.ParseAirspaceClass(*f.AirspaceClass); perr != nil {
		errs.Add(version, "airspace_class", *f.AirspaceClass, "must be one of A-G")
	} else {
		in.AirspaceClass = class
	}

	if f.Environment == nil {
		errs.Add(version, "environment", nil, "is required")
	} else if env, perr := sora.ParseEnvironmentType(*f.Environment); perr != nil {
		errs.Add(version, "environment", *f.Environment, "must be urban, suburban, rural or controlled")
	} else {
		in.Environment = env
	}

	if f.TacticalMitigation != nil {
		level, perr := sora.ParseMitigationLevel(*f.TacticalMitigation)
		if perr != nil {
			errs.Add(version, "tactical_mitigation", *f.TacticalMitigation, "must be None, Low, Medium or High")
		}
		in.TacticalMitigation = level
	}

	in.NearAerodrome = derefBool(f.NearAerodrome)
	in.ModeSVeil = derefBool(f.ModeSVeil)
	in.TMZ = derefBool(f.TMZ)
	in.AtypicalSegregated = derefBool(f.AtypicalSegregated)

	if errs.HasErrors() {
		return nil, errs.ToError()
	}

	req, err := sora.NewARCRequest(version, in)
	if err != nil {
		return nil, err
	}
	if err := ValidateARC(req); err != nil {
		return nil, err
	}
	return req, nil
}

// BuildSAILRequest turns wire fields into the request variant of their
// version. A SORA 2.0 payload carrying a numeric level, or a SORA 2.5 payload
// carrying a letter, is rejected here.
func BuildSAILRequest(f SAILFields) (sora.SAILRequest, error) {
	version, err := sora.ParseVersion(f.Version)
	if err != nil {
		return nil, err
	}

	errs := sora.NewErrorList()
	requireField(errs, version, "final_grc", f.FinalGRC != nil)

	var req sora.SAILRequest
	switch version {
	case sora.Version20:
		requireField(errs, version, "final_arc", f.FinalARC != nil)
		forbid(errs, version, "residual_arc_level", f.ResidualARCLevel != nil)

		r := sora.SAILRequestV20{FinalGRC: derefInt(f.FinalGRC)}
		if f.FinalARC != nil {
			rating, perr := sora.ParseARCRating(*f.FinalARC)
			if perr != nil {
				errs.Add(version, "final_arc", *f.FinalARC, "must be ARC-a, ARC-b, ARC-c or ARC-d")
			}
			r.FinalARC = rating
		}
		req = r

	case sora.Version25:
		requireField(errs, version, "residual_arc_level", f.ResidualARCLevel != nil)
		forbid(errs, version, "final_arc", f.FinalARC != nil)

		req = sora.SAILRequestV25{
			FinalGRC:         derefInt(f.FinalGRC),
			ResidualARCLevel: sora.ARCLevel(derefInt(f.ResidualARCLevel)),
		}
	}

	if errs.HasErrors() {
		return nil, errs.ToError()
	}
	if err := ValidateSAIL(req); err != nil {
		return nil, err
	}
	return req, nil
}

// BuildAssessment builds both halves of an assessment and checks that they
// share a version
func BuildAssessment(f AssessmentFields) (sora.GRCRequest, sora.ARCRequest, error) {
	grcFields, arcFields := f.GRC, f.ARC
	if grcFields.Version == "" {
		grcFields.Version = f.Version
	}
	if arcFields.Version == "" {
		arcFields.Version = f.Version
	}

	errs := sora.NewErrorList()

	grcReq, grcErr := BuildGRCRequest(grcFields)
	appendPrefixed(errs, "grc.", grcErr)
	arcReq, arcErr := BuildARCRequest(arcFields)
	appendPrefixed(errs, "arc.", arcErr)

	if errs.HasErrors() {
		return nil, nil, errs.ToError()
	}

	if grcReq.Version() != arcReq.Version() {
		return nil, nil, &sora.ValidationError{
			Field:   "version",
			Value:   string(grcReq.Version()) + "/" + string(arcReq.Version()),
			Message: "GRC and ARC must use the same SORA version",
		}
	}
	return grcReq, arcReq, nil
}

func buildMitigations(errs *sora.ErrorList, v sora.Version, f *MitigationFields) sora.GRCMitigations {
	var m sora.GRCMitigations
	if f == nil {
		return m
	}
	m.M1Strategic = parseLevel(errs, v, "mitigations.m1", f.M1)
	m.M2GroundImpact = parseLevel(errs, v, "mitigations.m2", f.M2)
	m.M3EmergencyResponse = parseLevel(errs, v, "mitigations.m3", f.M3)
	return m
}

func parseLevel(errs *sora.ErrorList, v sora.Version, field string, s *string) sora.MitigationLevel {
	if s == nil {
		return sora.MitigationNone
	}
	level, err := sora.ParseMitigationLevel(*s)
	if err != nil {
		errs.Add(v, field, *s, "must be None, Low, Medium or High")
	}
	return level
}

func appendPrefixed(errs *sora.ErrorList, prefix string, err error) {
	if err == nil {
		return
	}
	for _, fe := range sora.FieldErrors(err) {
		copied := *fe
		copied.Field = prefix + fe.Field
		errs.Append(&copied)
	}
}

func requireField(errs *sora.ErrorList, v sora.Version, field string, present bool) {
	if !present {
		errs.Add(v, field, nil, "is required")
	}
}

func forbid(errs *sora.ErrorList, v sora.Version, field string, present bool) {
	if present {
		errs.Add(v, field, nil, "is not accepted by "+v.Label())
	}
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefBool(p *bool) bool {
	return p != nil && *p
}
