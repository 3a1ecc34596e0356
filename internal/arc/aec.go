package arc

import (
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
)

// EncounterCategory walks the airspace encounter category sequence and returns
// AEC 1-12. The first matching branch wins, so the order below is the priority.
func EncounterCategory(in sora.AirspaceInputs) int {
	veil := in.ModeSVeil || in.TMZ
	controlled := in.AirspaceClass.IsControlled()
	urban := in.Environment == sora.EnvironmentUrban
	low := in.AltitudeAGLFt <= sora.LowAltitudeCeilingFt

	switch {
	case in.AtypicalSegregated:
		return 12
	case in.AltitudeAMSLFt > sora.FL600Ft:
		return 11
	case low && !veil && !controlled && isRuralOrSuburban(in.Environment):
		// outranks a nearby aerodrome when the flight stays in uncontrolled airspace
		return 10
	case in.NearAerodrome:
		if isTerminalClass(in.AirspaceClass) {
			return 1
		}
		return 6
	}

	if !low {
		switch {
		case veil:
			return 2
		case controlled:
			return 3
		case urban:
			return 4
		default:
			return 5
		}
	}

	switch {
	case veil:
		return 7
	case controlled:
		return 8
	case urban:
		return 9
	default:
		// rural, suburban and controlled ground areas share the lowest branch
		return 10
	}
}

func isRuralOrSuburban(env sora.EnvironmentType) bool {
	return env == sora.EnvironmentRural || env == sora.EnvironmentSuburban
}

// isTerminalClass reports whether an aerodrome in this class sits in the
// highest-density encounter category
func isTerminalClass(c sora.AirspaceClass) bool {
	switch c {
	case sora.AirspaceClassA, sora.AirspaceClassB, sora.AirspaceClassC, sora.AirspaceClassD:
		return true
	}
	return false
}
