package sora

import (
	"fmt"
	"strings"
)

// AirspaceClass is an ICAO airspace class, A through G
type AirspaceClass string

const (
	AirspaceClassA AirspaceClass = "A"
	AirspaceClassB AirspaceClass = "B"
	AirspaceClassC AirspaceClass = "C"
	AirspaceClassD AirspaceClass = "D"
	AirspaceClassE AirspaceClass = "E"
	AirspaceClassF AirspaceClass = "F"
	AirspaceClassG AirspaceClass = "G"
)

// IsValid reports whether the class is one of A-G
func (c AirspaceClass) IsValid() bool {
	switch c {
	case AirspaceClassA, AirspaceClassB, AirspaceClassC, AirspaceClassD,
		AirspaceClassE, AirspaceClassF, AirspaceClassG:
		return true
	}
	return false
}

// IsControlled reports whether ATC service is provided (classes A-E)
func (c AirspaceClass) IsControlled() bool {
	switch c {
	case AirspaceClassA, AirspaceClassB, AirspaceClassC, AirspaceClassD, AirspaceClassE:
		return true
	}
	return false
}

// ParseAirspaceClass accepts "c", "C" or "class C"
func ParseAirspaceClass(s string) (AirspaceClass, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "CLASS"))
	c := AirspaceClass(raw)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown airspace class %q", s)
	}
	return c, nil
}

// EnvironmentType describes the ground environment beneath the operation
type EnvironmentType string

const (
	EnvironmentUrban      EnvironmentType = "urban"
	EnvironmentSuburban   EnvironmentType = "suburban"
	EnvironmentRural      EnvironmentType = "rural"
	EnvironmentControlled EnvironmentType = "controlled"
)

// IsValid reports whether the environment is a known value
func (e EnvironmentType) IsValid() bool {
	switch e {
	case EnvironmentUrban, EnvironmentSuburban, EnvironmentRural, EnvironmentControlled:
		return true
	}
	return false
}

// ParseEnvironmentType is case-insensitive
func ParseEnvironmentType(s string) (EnvironmentType, error) {
	e := EnvironmentType(strings.ToLower(strings.TrimSpace(s)))
	if !e.IsValid() {
		return "", fmt.Errorf("unknown environment type %q", s)
	}
	return e, nil
}

// MitigationLevel is the robustness claimed for a mitigation. The zero value
// is MitigationNone, so an omitted mitigation earns no credit.
type MitigationLevel int

const (
	MitigationNone MitigationLevel = iota
	MitigationLow
	MitigationMedium
	MitigationHigh
)

var mitigationNames = [...]string{"None", "Low", "Medium", "High"}

// IsValid reports whether the level is None, Low, Medium or High
func (m MitigationLevel) IsValid() bool {
	return m >= MitigationNone && m <= MitigationHigh
}

// String returns the level name
func (m MitigationLevel) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("MitigationLevel(%d)", int(m))
	}
	return mitigationNames[m]
}

// AtLeast reports whether m is as robust as other
func (m MitigationLevel) AtLeast(other MitigationLevel) bool {
	return m >= other
}

// MarshalText encodes the level by name
func (m MitigationLevel) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("invalid mitigation level %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a level name
func (m *MitigationLevel) UnmarshalText(text []byte) error {
	level, err := ParseMitigationLevel(string(text))
	if err != nil {
		return err
	}
	*m = level
	return nil
}

// ParseMitigationLevel is case-insensitive. An empty string means None.
func ParseMitigationLevel(s string) (MitigationLevel, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return MitigationNone, nil
	}
	for i, name := range mitigationNames {
		if strings.EqualFold(raw, name) {
			return MitigationLevel(i), nil
		}
	}
	return MitigationNone, fmt.Errorf("unknown mitigation level %q", s)
}

// ARCRating is the SORA 2.0 letter air risk class
type ARCRating int

const (
	ARCa ARCRating = iota + 1
	ARCb
	ARCc
	ARCd
)

// IsValid reports whether the rating is ARC-a through ARC-d
func (r ARCRating) IsValid() bool {
	return r >= ARCa && r <= ARCd
}

// Letter returns "a" through "d"
func (r ARCRating) Letter() string {
	if !r.IsValid() {
		return "?"
	}
	return string(rune('a' + int(r-ARCa)))
}

// String returns the canonical "ARC-x" form
func (r ARCRating) String() string {
	return "ARC-" + r.Letter()
}

// MarshalText encodes the rating as "ARC-x"
func (r ARCRating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid ARC rating %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText accepts "c", "ARC-c" or "arc_c"
func (r *ARCRating) UnmarshalText(text []byte) error {
	rating, err := ParseARCRating(string(text))
	if err != nil {
		return err
	}
	*r = rating
	return nil
}

// ParseARCRating accepts "c", "ARC-c" or "arc_c"
func ParseARCRating(s string) (ARCRating, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	raw = strings.TrimPrefix(raw, "arc")
	raw = strings.TrimLeft(raw, "-_ ")
	if len(raw) == 1 && raw[0] >= 'a' && raw[0] <= 'd' {
		return ARCa + ARCRating(raw[0]-'a'), nil
	}
	return 0, fmt.Errorf("unknown ARC rating %q", s)
}

// ARCLevel is the SORA 2.5 numeric residual air risk level, 1 through 10
type ARCLevel int

const (
	MinARCLevel ARCLevel = 1
	MaxARCLevel ARCLevel = 10
)

// IsValid reports whether the level is within 1-10
func (l ARCLevel) IsValid() bool {
	return l >= MinARCLevel && l <= MaxARCLevel
}

// Rating returns the letter stratum the level belongs to
func (l ARCLevel) Rating() ARCRating {
	for _, s := range arcLevelStrata {
		if l >= s.low && l <= s.high {
			return s.rating
		}
	}
	return 0
}

// SAILLevel is the Specific Assurance and Integrity Level, I through VI
type SAILLevel int

const (
	SAILI SAILLevel = iota + 1
	SAILII
	SAILIII
	SAILIV
	SAILV
	SAILVI
)

var sailNames = [...]string{"", "I", "II", "III", "IV", "V", "VI"}

// IsValid reports whether the level is I through VI
func (s SAILLevel) IsValid() bool {
	return s >= SAILI && s <= SAILVI
}

// String returns the roman numeral
func (s SAILLevel) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("SAILLevel(%d)", int(s))
	}
	return sailNames[s]
}

// MarshalText encodes the level as a roman numeral
func (s SAILLevel) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid SAIL level %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a roman numeral
func (s *SAILLevel) UnmarshalText(text []byte) error {
	raw := strings.ToUpper(strings.TrimSpace(string(text)))
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "SAIL"))
	for i := SAILI; i <= SAILVI; i++ {
		if sailNames[i] == raw {
			*s = i
			return nil
		}
	}
	return fmt.Errorf("unknown SAIL level %q", string(text))
}

// OperationalScenario is the SORA 2.0 intrinsic GRC table row selector
type OperationalScenario string

const (
	ScenarioVLOSControlled         OperationalScenario = "vlos-controlled"
	ScenarioBVLOSControlled        OperationalScenario = "bvlos-controlled"
	ScenarioVLOSSparselyPopulated  OperationalScenario = "vlos-sparsely-populated"
	ScenarioBVLOSSparselyPopulated OperationalScenario = "bvlos-sparsely-populated"
	ScenarioVLOSPopulated          OperationalScenario = "vlos-populated"
	ScenarioBVLOSPopulated         OperationalScenario = "bvlos-populated"
	ScenarioVLOSGathering          OperationalScenario = "vlos-gathering"
	ScenarioBVLOSGathering         OperationalScenario = "bvlos-gathering"
)

// IsValid reports whether the scenario maps to a table row
func (s OperationalScenario) IsValid() bool {
	_, ok := scenarioRowsV20[s]
	return ok
}

// ParseOperationalScenario accepts "VLOS_Populated", "vlos-populated" and
// "VLOS Populated" alike
func ParseOperationalScenario(s string) (OperationalScenario, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	raw = strings.NewReplacer("_", "-", " ", "-").Replace(raw)
	scenario := OperationalScenario(raw)
	if !scenario.IsValid() {
		return "", fmt.Errorf("unknown operational scenario %q", s)
	}
	return scenario, nil
}
