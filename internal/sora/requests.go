package sora

// Requests are version-tagged variants behind sealed interfaces. A SORA 2.0
// request has no field for a 2.5-only input and vice versa, so the shape of a
// request is fixed by its type.

// GRCMitigations is the ground-risk mitigation vector. The zero value applies
// no mitigation.
type GRCMitigations struct {
	M1Strategic         MitigationLevel `json:"m1_strategic"`
	M2GroundImpact      MitigationLevel `json:"m2_ground_impact"`
	M3EmergencyResponse MitigationLevel `json:"m3_emergency_response"`
}

// Level returns the level claimed for a mitigation
func (m GRCMitigations) Level(id Mitigation) MitigationLevel {
	switch id {
	case MitigationM1:
		return m.M1Strategic
	case MitigationM2:
		return m.M2GroundImpact
	case MitigationM3:
		return m.M3EmergencyResponse
	}
	return MitigationNone
}

// GRCRequest is implemented by GRCRequestV20 and GRCRequestV25 only
type GRCRequest interface {
	Version() Version
	grcRequest()
}

// GRCRequestV20 holds the SORA 2.0 ground risk inputs
type GRCRequestV20 struct {
	MaxDimensionM float64
	Scenario      OperationalScenario
	// Optional. When both are positive the kinetic energy column also applies.
	MaxSpeedMS  float64
	MTOMKg      float64
	Mitigations GRCMitigations
}

// Version returns Version20
func (GRCRequestV20) Version() Version { return Version20 }
func (GRCRequestV20) grcRequest()      {}

// GRCRequestV25 holds the SORA 2.5 ground risk inputs
type GRCRequestV25 struct {
	MaxDimensionM        float64
	MaxSpeedMS           float64
	PopulationDensity    float64 // people per km²
	ControlledGroundArea bool
	// Optional. Enables the small-UA override when positive.
	MTOMKg      float64
	Mitigations GRCMitigations
}

// Version returns Version25
func (GRCRequestV25) Version() Version { return Version25 }
func (GRCRequestV25) grcRequest()      {}

// AirspaceInputs are the air risk inputs shared by both versions
type AirspaceInputs struct {
	AltitudeAGLFt      float64
	AltitudeAMSLFt     float64
	AirspaceClass      AirspaceClass
	Environment        EnvironmentType
	NearAerodrome      bool
	ModeSVeil          bool
	TMZ                bool
	AtypicalSegregated bool
	TacticalMitigation MitigationLevel
}

// ARCRequest is implemented by ARCRequestV20 and ARCRequestV25 only
type ARCRequest interface {
	Version() Version
	Airspace() AirspaceInputs
	arcRequest()
}

// ARCRequestV20 produces a letter rating
type ARCRequestV20 struct {
	AirspaceInputs
}

// Version returns Version20
func (ARCRequestV20) Version() Version { return Version20 }

// Airspace returns the shared inputs
func (r ARCRequestV20) Airspace() AirspaceInputs { return r.AirspaceInputs }
func (ARCRequestV20) arcRequest()                {}

// ARCRequestV25 produces a numeric residual level
type ARCRequestV25 struct {
	AirspaceInputs
}

// Version returns Version25
func (ARCRequestV25) Version() Version { return Version25 }

// Airspace returns the shared inputs
func (r ARCRequestV25) Airspace() AirspaceInputs { return r.AirspaceInputs }
func (ARCRequestV25) arcRequest()                {}

// NewARCRequest wraps shared inputs in the variant for version
func NewARCRequest(version Version, in AirspaceInputs) (ARCRequest, error) {
	switch version {
	case Version20:
		return ARCRequestV20{AirspaceInputs: in}, nil
	case Version25:
		return ARCRequestV25{AirspaceInputs: in}, nil
	}
	return nil, &ValidationError{Field: "version", Value: string(version), Message: "unsupported SORA version, expected 2.0 or 2.5"}
}

// SAILRequest is implemented by SAILRequestV20 and SAILRequestV25 only
type SAILRequest interface {
	Version() Version
	sailRequest()
}

// SAILRequestV20 maps a final GRC and a letter ARC
type SAILRequestV20 struct {
	FinalGRC int
	FinalARC ARCRating
}

// Version returns Version20
func (SAILRequestV20) Version() Version { return Version20 }
func (SAILRequestV20) sailRequest()     {}

// SAILRequestV25 maps a final GRC and a numeric residual ARC level
type SAILRequestV25 struct {
	FinalGRC         int
	ResidualARCLevel ARCLevel
}

// Version returns Version25
func (SAILRequestV25) Version() Version { return Version25 }
func (SAILRequestV25) sailRequest()     {}
