package arc

import (
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
)

// ReduceRating lowers r by one letter when the tactical mitigation is at least
// as robust as that step requires. It never lowers by more than one letter.
func ReduceRating(r sora.ARCRating, tactical sora.MitigationLevel) (sora.ARCRating, bool) {
	need, ok := sora.TacticalStepRequirement(r)
	if !ok || tactical == sora.MitigationNone || !tactical.AtLeast(need) {
		return r, false
	}
	return r - 1, true
}

// ReduceLevel applies the same one-letter policy to a SORA 2.5 level. A
// reduced level lands on the top of the next lower stratum.
func ReduceLevel(level sora.ARCLevel, tactical sora.MitigationLevel) (sora.ARCLevel, bool) {
	rating, reduced := ReduceRating(level.Rating(), tactical)
	if !reduced {
		return level, false
	}
	return sora.StratumTop(rating), true
}
