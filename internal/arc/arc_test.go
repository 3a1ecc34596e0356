package arc

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
)

func airspace(agl float64, class sora.AirspaceClass, env sora.EnvironmentType) sora.AirspaceInputs {
	return sora.AirspaceInputs{
		AltitudeAGLFt:  agl,
		AltitudeAMSLFt: agl + 300,
		AirspaceClass:  class,
		Environment:    env,
	}
}

func TestEncounterCategory(t *testing.T) {
	tests := []struct {
		name   string
		inputs func() sora.AirspaceInputs
		want   int
	}{
		{"atypical wins over everything", func() sora.AirspaceInputs {
			in := airspace(2000, sora.AirspaceClassC, sora.EnvironmentUrban)
			in.AtypicalSegregated = true
			in.ModeSVeil = true
			in.AltitudeAMSLFt = 70000
			return in
		}, 12},
		{"above FL600", func() sora.AirspaceInputs {
			in := airspace(1000, sora.AirspaceClassG, sora.EnvironmentRural)
			in.AltitudeAMSLFt = 61000
			return in
		}, 11},
		{"exactly FL600 is not above it", func() sora.AirspaceInputs {
			in := airspace(1000, sora.AirspaceClassG, sora.EnvironmentRural)
			in.AltitudeAMSLFt = 60000
			return in
		}, 5},
		{"aerodrome in class D", func() sora.AirspaceInputs {
			in := airspace(200, sora.AirspaceClassD, sora.EnvironmentRural)
			in.NearAerodrome = true
			return in
		}, 1},
		{"aerodrome in class E", func() sora.AirspaceInputs {
			in := airspace(200, sora.AirspaceClassE, sora.EnvironmentRural)
			in.NearAerodrome = true
			return in
		}, 6},
		{"aerodrome in class G", func() sora.AirspaceInputs {
			in := airspace(200, sora.AirspaceClassG, sora.EnvironmentUrban)
			in.NearAerodrome = true
			return in
		}, 6},
		{"low rural uncontrolled near aerodrome", func() sora.AirspaceInputs {
			in := airspace(300, sora.AirspaceClassG, sora.EnvironmentRural)
			in.NearAerodrome = true
			return in
		}, 10},
		{"low suburban uncontrolled near aerodrome", func() sora.AirspaceInputs {
			in := airspace(500, sora.AirspaceClassF, sora.EnvironmentSuburban)
			in.NearAerodrome = true
			return in
		}, 10},
		{"aerodrome above the low ceiling in class G", func() sora.AirspaceInputs {
			in := airspace(600, sora.AirspaceClassG, sora.EnvironmentRural)
			in.NearAerodrome = true
			return in
		}, 6},
		{"high in Mode-S veil", func() sora.AirspaceInputs {
			in := airspace(800, sora.AirspaceClassG, sora.EnvironmentRural)
			in.ModeSVeil = true
			return in
		}, 2},
		{"high in TMZ", func() sora.AirspaceInputs {
			in := airspace(800, sora.AirspaceClassC, sora.EnvironmentRural)
			in.TMZ = true
			return in
		}, 2},
		{"high controlled", func() sora.AirspaceInputs { return airspace(800, sora.AirspaceClassE, sora.EnvironmentRural) }, 3},
		{"high uncontrolled urban", func() sora.AirspaceInputs { return airspace(800, sora.AirspaceClassG, sora.EnvironmentUrban) }, 4},
		{"high uncontrolled rural", func() sora.AirspaceInputs { return airspace(800, sora.AirspaceClassF, sora.EnvironmentRural) }, 5},
		{"low in TMZ", func() sora.AirspaceInputs {
			in := airspace(300, sora.AirspaceClassG, sora.EnvironmentRural)
			in.TMZ = true
			return in
		}, 7},
		{"low controlled", func() sora.AirspaceInputs { return airspace(300, sora.AirspaceClassC, sora.EnvironmentRural) }, 8},
		{"500 ft is still low", func() sora.AirspaceInputs { return airspace(500, sora.AirspaceClassC, sora.EnvironmentRural) }, 8},
		{"low uncontrolled urban", func() sora.AirspaceInputs { return airspace(300, sora.AirspaceClassG, sora.EnvironmentUrban) }, 9},
		{"low uncontrolled rural", func() sora.AirspaceInputs { return airspace(300, sora.AirspaceClassG, sora.EnvironmentRural) }, 10},
		{"low uncontrolled suburban", func() sora.AirspaceInputs { return airspace(300, sora.AirspaceClassG, sora.EnvironmentSuburban) }, 10},
		{"low uncontrolled controlled ground", func() sora.AirspaceInputs {
			return airspace(100, sora.AirspaceClassG, sora.EnvironmentControlled)
		}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncounterCategory(tt.inputs()))
		})
	}
}

func TestComputeV20(t *testing.T) {
	tests := []struct {
		name        string
		in          sora.AirspaceInputs
		tactical    sora.MitigationLevel
		wantInitial sora.ARCRating
		wantFinal   sora.ARCRating
		wantReduced bool
	}{
		{"rural low no mitigation", airspace(300, sora.AirspaceClassG, sora.EnvironmentRural), sora.MitigationNone, sora.ARCb, sora.ARCb, false},
		{"rural low with low TMPR", airspace(300, sora.AirspaceClassG, sora.EnvironmentRural), sora.MitigationLow, sora.ARCb, sora.ARCa, true},
		{"urban low with low TMPR", airspace(300, sora.AirspaceClassG, sora.EnvironmentUrban), sora.MitigationLow, sora.ARCc, sora.ARCc, false},
		{"urban low with medium TMPR", airspace(300, sora.AirspaceClassG, sora.EnvironmentUrban), sora.MitigationMedium, sora.ARCc, sora.ARCb, true},
		{"urban low with high TMPR still one step", airspace(300, sora.AirspaceClassG, sora.EnvironmentUrban), sora.MitigationHigh, sora.ARCc, sora.ARCb, true},
		{"high controlled with medium TMPR", airspace(1500, sora.AirspaceClassC, sora.EnvironmentRural), sora.MitigationMedium, sora.ARCd, sora.ARCd, false},
		{"high controlled with high TMPR", airspace(1500, sora.AirspaceClassC, sora.EnvironmentRural), sora.MitigationHigh, sora.ARCd, sora.ARCc, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			in.TacticalMitigation = tt.tactical

			res, err := Compute(sora.ARCRequestV20{AirspaceInputs: in})
			require.NoError(t, err)
			assert.Equal(t, sora.Version20, res.Version)
			assert.Equal(t, tt.wantInitial, res.InitialRating)
			assert.Equal(t, tt.wantFinal, res.FinalRating)
			assert.Equal(t, tt.wantReduced, res.Reduced)
			assert.Zero(t, res.InitialLevel)
			assert.Zero(t, res.FinalLevel)
			assert.NotEmpty(t, res.AECDescription)
		})
	}
}

func TestComputeV20AtypicalIsARCa(t *testing.T) {
	in := airspace(300, sora.AirspaceClassG, sora.EnvironmentRural)
	in.AtypicalSegregated = true
	in.TacticalMitigation = sora.MitigationHigh

	res, err := Compute(sora.ARCRequestV20{AirspaceInputs: in})
	require.NoError(t, err)
	assert.Equal(t, 12, res.AEC)
	assert.Equal(t, sora.ARCa, res.InitialRating)
	assert.Equal(t, sora.ARCa, res.FinalRating)
	assert.False(t, res.Reduced)
}

func TestComputeV25(t *testing.T) {
	tests := []struct {
		name        string
		in          sora.AirspaceInputs
		tactical    sora.MitigationLevel
		wantAEC     int
		wantInitial sora.ARCLevel
		wantFinal   sora.ARCLevel
	}{
		{"rural low", airspace(300, sora.AirspaceClassG, sora.EnvironmentRural), sora.MitigationNone, 10, 4, 4},
		{"rural low reduced", airspace(300, sora.AirspaceClassG, sora.EnvironmentRural), sora.MitigationLow, 10, 4, 2},
		{"urban low", airspace(300, sora.AirspaceClassG, sora.EnvironmentUrban), sora.MitigationLow, 9, 5, 5},
		{"urban low reduced", airspace(300, sora.AirspaceClassG, sora.EnvironmentUrban), sora.MitigationMedium, 9, 5, 4},
		{"class C aerodrome", func() sora.AirspaceInputs {
			in := airspace(100, sora.AirspaceClassC, sora.EnvironmentUrban)
			in.NearAerodrome = true
			return in
		}(), sora.MitigationHigh, 1, 10, 7},
		{"high uncontrolled rural", airspace(900, sora.AirspaceClassG, sora.EnvironmentRural), sora.MitigationMedium, 5, 6, 4},
		{"rural low near uncontrolled aerodrome", func() sora.AirspaceInputs {
			in := airspace(300, sora.AirspaceClassG, sora.EnvironmentRural)
			in.NearAerodrome = true
			return in
		}(), sora.MitigationNone, 10, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			in.TacticalMitigation = tt.tactical

			res, err := Compute(sora.ARCRequestV25{AirspaceInputs: in})
			require.NoError(t, err)
			assert.Equal(t, sora.Version25, res.Version)
			assert.Equal(t, tt.wantAEC, res.AEC)
			assert.Equal(t, tt.wantInitial, res.InitialLevel)
			assert.Equal(t, tt.wantFinal, res.FinalLevel)
			assert.Equal(t, tt.wantInitial != tt.wantFinal, res.Reduced)
			assert.Zero(t, res.InitialRating)
		})
	}
}

func TestComputeRejectsConflictingFlags(t *testing.T) {
	in := airspace(300, sora.AirspaceClassD, sora.EnvironmentRural)
	in.AtypicalSegregated = true
	in.NearAerodrome = true

	for _, req := range []sora.ARCRequest{sora.ARCRequestV20{AirspaceInputs: in}, sora.ARCRequestV25{AirspaceInputs: in}} {
		_, err := Compute(req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, sora.ErrValidation))

		fields := sora.FieldErrors(err)
		require.Len(t, fields, 1)
		assert.Equal(t, "atypical_segregated", fields[0].Field)
	}
}

func TestComputeRejectsInvalidInputs(t *testing.T) {
	in := sora.AirspaceInputs{
		AltitudeAGLFt:      -10,
		AirspaceClass:      "H",
		Environment:        "jungle",
		TacticalMitigation: 9,
	}

	_, err := Compute(sora.ARCRequestV20{AirspaceInputs: in})
	require.Error(t, err)

	var list *sora.ErrorList
	require.ErrorAs(t, err, &list)
	assert.Len(t, list.Errors, 4)
	assert.True(t, errors.Is(err, sora.ErrValidation))

	_, err = Compute(nil)
	assert.True(t, errors.Is(err, sora.ErrValidation))
}

func TestReduceRating(t *testing.T) {
	tests := []struct {
		rating   sora.ARCRating
		tactical sora.MitigationLevel
		want     sora.ARCRating
	}{
		{sora.ARCa, sora.MitigationHigh, sora.ARCa},
		{sora.ARCb, sora.MitigationNone, sora.ARCb},
		{sora.ARCb, sora.MitigationLow, sora.ARCa},
		{sora.ARCc, sora.MitigationLow, sora.ARCc},
		{sora.ARCc, sora.MitigationMedium, sora.ARCb},
		{sora.ARCd, sora.MitigationMedium, sora.ARCd},
		{sora.ARCd, sora.MitigationHigh, sora.ARCc},
	}

	for _, tt := range tests {
		t.Run(tt.rating.String()+"/"+tt.tactical.String(), func(t *testing.T) {
			got, reduced := ReduceRating(tt.rating, tt.tactical)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != tt.rating, reduced)
		})
	}
}

func TestARCProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	classes := []sora.AirspaceClass{
		sora.AirspaceClassA, sora.AirspaceClassB, sora.AirspaceClassC, sora.AirspaceClassD,
		sora.AirspaceClassE, sora.AirspaceClassF, sora.AirspaceClassG,
	}
	envs := []sora.EnvironmentType{
		sora.EnvironmentUrban, sora.EnvironmentSuburban, sora.EnvironmentRural, sora.EnvironmentControlled,
	}

	genInputs := gopter.CombineGens(
		gen.Float64Range(0, 5000),
		gen.Float64Range(-1000, 70000),
		gen.IntRange(0, len(classes)-1),
		gen.IntRange(0, len(envs)-1),
		gen.Bool(), gen.Bool(), gen.Bool(), gen.Bool(),
		gen.IntRange(int(sora.MitigationNone), int(sora.MitigationHigh)),
	).Map(func(vs []interface{}) sora.AirspaceInputs {
		in := sora.AirspaceInputs{
			AltitudeAGLFt:      vs[0].(float64),
			AltitudeAMSLFt:     vs[1].(float64),
			AirspaceClass:      classes[vs[2].(int)],
			Environment:        envs[vs[3].(int)],
			NearAerodrome:      vs[4].(bool),
			ModeSVeil:          vs[5].(bool),
			TMZ:                vs[6].(bool),
			AtypicalSegregated: vs[7].(bool),
			TacticalMitigation: sora.MitigationLevel(vs[8].(int)),
		}
		if in.AtypicalSegregated {
			in.NearAerodrome = false
		}
		return in
	})

	properties.Property("tactical mitigation lowers by at most one letter", prop.ForAll(
		func(in sora.AirspaceInputs) bool {
			res, err := Compute(sora.ARCRequestV20{AirspaceInputs: in})
			if err != nil {
				return false
			}
			diff := int(res.InitialRating) - int(res.FinalRating)
			return (diff == 0 && !res.Reduced) || (diff == 1 && res.Reduced)
		},
		genInputs,
	))

	properties.Property("both versions agree on the letter stratum", prop.ForAll(
		func(in sora.AirspaceInputs) bool {
			v20, err20 := Compute(sora.ARCRequestV20{AirspaceInputs: in})
			v25, err25 := Compute(sora.ARCRequestV25{AirspaceInputs: in})
			if err20 != nil || err25 != nil {
				return false
			}
			return v20.AEC == v25.AEC &&
				v25.InitialLevel.Rating() == v20.InitialRating &&
				v25.FinalLevel.Rating() == v20.FinalRating &&
				v25.FinalLevel <= v25.InitialLevel
		},
		genInputs,
	))

	properties.TestingRun(t)
}
