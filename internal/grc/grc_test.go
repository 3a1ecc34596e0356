package grc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
)

func TestComputeV20IntrinsicGRC(t *testing.T) {
	tests := []struct {
		name      string
		dimension float64
		scenario  sora.OperationalScenario
		want      int
	}{
		{"small vlos controlled", 0.5, sora.ScenarioVLOSControlled, 1},
		{"bvlos controlled shares the row", 0.5, sora.ScenarioBVLOSControlled, 1},
		{"exactly 1 m stays in first column", 1.0, sora.ScenarioVLOSSparselyPopulated, 2},
		{"just above 1 m", 1.01, sora.ScenarioVLOSSparselyPopulated, 3},
		{"exactly 3 m", 3.0, sora.ScenarioBVLOSSparselyPopulated, 4},
		{"exactly 8 m", 8.0, sora.ScenarioVLOSPopulated, 6},
		{"large populated", 12, sora.ScenarioVLOSPopulated, 8},
		{"large bvlos populated", 12, sora.ScenarioBVLOSPopulated, 10},
		{"small gathering", 0.8, sora.ScenarioVLOSGathering, 7},
		{"small bvlos gathering", 0.8, sora.ScenarioBVLOSGathering, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(sora.GRCRequestV20{MaxDimensionM: tt.dimension, Scenario: tt.scenario})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.IntrinsicGRC)
			assert.Equal(t, sora.Version20, res.Version)
		})
	}
}

func TestComputeV20GreyCells(t *testing.T) {
	for _, scenario := range []sora.OperationalScenario{sora.ScenarioVLOSGathering, sora.ScenarioBVLOSGathering} {
		for _, dimension := range []float64{2, 5, 9, 30} {
			_, err := Compute(sora.GRCRequestV20{MaxDimensionM: dimension, Scenario: scenario})
			require.Error(t, err)
			assert.True(t, errors.Is(err, sora.ErrGreyCell), "%s at %.0f m", scenario, dimension)
			assert.False(t, errors.Is(err, sora.ErrValidation))

			var grey *sora.GreyCellError
			require.ErrorAs(t, err, &grey)
			assert.Equal(t, sora.Version20, grey.Version)
			assert.Contains(t, grey.Row, "gathering")
		}
	}
}

func TestComputeV20OutOfScope(t *testing.T) {
	res, err := Compute(sora.GRCRequestV20{
		MaxDimensionM: 10,
		Scenario:      sora.ScenarioBVLOSPopulated,
		Mitigations: sora.GRCMitigations{
			M1Strategic:         sora.MitigationHigh,
			M2GroundImpact:      sora.MitigationHigh,
			M3EmergencyResponse: sora.MitigationHigh,
		},
	})
	require.NoError(t, err)

	assert.True(t, res.OutOfScope)
	assert.Equal(t, 10, res.IntrinsicGRC)
	assert.Equal(t, 10, res.FinalGRC, "mitigations are not applied out of scope")
	assert.Empty(t, res.Adjustments)
	assert.Equal(t, sora.MitigationHigh, res.Mitigations.M1Strategic, "mitigations are still echoed")
}

func TestComputeV20KineticEnergyColumn(t *testing.T) {
	// 0.5 m but 25 kg at 60 m/s is 45 kJ, which sits in the 8 m column
	res, err := Compute(sora.GRCRequestV20{
		MaxDimensionM: 0.5,
		Scenario:      sora.ScenarioVLOSSparselyPopulated,
		MaxSpeedMS:    60,
		MTOMKg:        25,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Column)
	assert.Equal(t, 4, res.IntrinsicGRC)

	// without mass the dimension alone decides
	res, err = Compute(sora.GRCRequestV20{
		MaxDimensionM: 0.5,
		Scenario:      sora.ScenarioVLOSSparselyPopulated,
		MaxSpeedMS:    60,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Column)
	assert.Equal(t, 2, res.IntrinsicGRC)
}

func TestComputeV20Mitigations(t *testing.T) {
	tests := []struct {
		name        string
		dimension   float64
		scenario    sora.OperationalScenario
		mitigations sora.GRCMitigations
		want        int
	}{
		{
			name:      "no mitigation",
			dimension: 2, scenario: sora.ScenarioBVLOSPopulated,
			want: 6,
		},
		{
			name:      "medium M1",
			dimension: 2, scenario: sora.ScenarioBVLOSPopulated,
			mitigations: sora.GRCMitigations{M1Strategic: sora.MitigationMedium},
			want:        4,
		},
		{
			name:      "high M1 stops at the column floor",
			dimension: 2, scenario: sora.ScenarioVLOSPopulated,
			mitigations: sora.GRCMitigations{M1Strategic: sora.MitigationHigh},
			want:        2,
		},
		{
			name:      "low M2 and M3 earn nothing",
			dimension: 2, scenario: sora.ScenarioVLOSPopulated,
			mitigations: sora.GRCMitigations{M2GroundImpact: sora.MitigationLow, M3EmergencyResponse: sora.MitigationLow},
			want:        5,
		},
		{
			name:      "all high floors at 1",
			dimension: 0.5, scenario: sora.ScenarioVLOSSparselyPopulated,
			mitigations: sora.GRCMitigations{
				M1Strategic:         sora.MitigationHigh,
				M2GroundImpact:      sora.MitigationHigh,
				M3EmergencyResponse: sora.MitigationHigh,
			},
			want: 1,
		},
		{
			name:      "gathering row can be mitigated",
			dimension: 0.5, scenario: sora.ScenarioVLOSGathering,
			mitigations: sora.GRCMitigations{M2GroundImpact: sora.MitigationHigh, M3EmergencyResponse: sora.MitigationHigh},
			want:        4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(sora.GRCRequestV20{
				MaxDimensionM: tt.dimension,
				Scenario:      tt.scenario,
				Mitigations:   tt.mitigations,
			})
			require.NoError(t, err)
			assert.False(t, res.OutOfScope)
			assert.Equal(t, tt.want, res.FinalGRC)
			require.Len(t, res.Adjustments, 3)
			assert.Equal(t, res.IntrinsicGRC, res.Adjustments[0].Before)
			assert.Equal(t, res.FinalGRC, res.Adjustments[2].After)
		})
	}
}

func TestComputeV20ColumnFloorTrail(t *testing.T) {
	res, err := Compute(sora.GRCRequestV20{
		MaxDimensionM: 2,
		Scenario:      sora.ScenarioVLOSPopulated,
		Mitigations:   sora.GRCMitigations{M1Strategic: sora.MitigationHigh},
	})
	require.NoError(t, err)

	m1 := res.Adjustments[0]
	assert.Equal(t, sora.MitigationM1, m1.Mitigation)
	assert.Equal(t, -4, m1.Credit)
	assert.Equal(t, 5, m1.Before)
	assert.Equal(t, 2, m1.After)
	assert.True(t, m1.Floored)
}

func TestComputeV25IntrinsicGRC(t *testing.T) {
	tests := []struct {
		name       string
		dimension  float64
		speed      float64
		density    float64
		controlled bool
		wantRow    int
		wantCol    int
		want       int
	}{
		{"controlled small", 0.9, 20, 0, true, 0, 0, 1},
		{"controlled overrides density", 0.9, 20, 90000, true, 0, 0, 1},
		{"remote small", 0.9, 20, 1, false, 1, 0, 2},
		{"density 5 moves up a band", 0.9, 20, 5, false, 2, 0, 3},
		{"speed decides the column", 0.9, 70, 100, false, 3, 2, 6},
		{"dimension decides the column", 15, 20, 100, false, 3, 3, 7},
		{"above every threshold", 30, 200, 1000, false, 4, 4, 9},
		{"dense small", 0.9, 20, 60000, false, 6, 0, 7},
		{"dense 8 m", 6, 60, 50000, false, 6, 2, 9},
		{"just below 50000", 6, 60, 49999, false, 5, 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(sora.GRCRequestV25{
				MaxDimensionM:        tt.dimension,
				MaxSpeedMS:           tt.speed,
				PopulationDensity:    tt.density,
				ControlledGroundArea: tt.controlled,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantRow, res.Row)
			assert.Equal(t, tt.wantCol, res.Column)
			assert.Equal(t, tt.want, res.IntrinsicGRC)
			assert.False(t, res.OutOfScope)
		})
	}
}

func TestComputeV25GreyCell(t *testing.T) {
	_, err := Compute(sora.GRCRequestV25{MaxDimensionM: 25, MaxSpeedMS: 150, PopulationDensity: 80000})
	require.Error(t, err)
	assert.True(t, errors.Is(err, sora.ErrGreyCell))

	var grey *sora.GreyCellError
	require.ErrorAs(t, err, &grey)
	assert.Equal(t, sora.Version25, grey.Version)
	assert.Equal(t, 6, grey.RowIndex)
	assert.Equal(t, 4, grey.ColumnIndex)
	assert.Contains(t, err.Error(), "manual assessment required")

	_, err = Compute(sora.GRCRequestV25{MaxDimensionM: 15, MaxSpeedMS: 30, PopulationDensity: 50000})
	assert.True(t, errors.Is(err, sora.ErrGreyCell))
}

func TestComputeV25SmallUA(t *testing.T) {
	res, err := Compute(sora.GRCRequestV25{
		MaxDimensionM:     0.3,
		MaxSpeedMS:        19,
		PopulationDensity: 100000,
		MTOMKg:            0.249,
	})
	require.NoError(t, err)
	assert.True(t, res.SmallUA)
	assert.Equal(t, 1, res.IntrinsicGRC)
	assert.Equal(t, 1, res.FinalGRC)

	// too fast
	res, err = Compute(sora.GRCRequestV25{
		MaxDimensionM:     0.3,
		MaxSpeedMS:        26,
		PopulationDensity: 100,
		MTOMKg:            0.2,
	})
	require.NoError(t, err)
	assert.False(t, res.SmallUA)
	assert.Equal(t, 5, res.IntrinsicGRC)
}

func TestComputeV25SmallUAFloorDoesNotRaise(t *testing.T) {
	// the 20 m column floors M1 at 3; the override already sits below it
	res, err := Compute(sora.GRCRequestV25{
		MaxDimensionM:     15,
		MaxSpeedMS:        10,
		PopulationDensity: 10,
		MTOMKg:            0.2,
		Mitigations:       sora.GRCMitigations{M1Strategic: sora.MitigationHigh},
	})
	require.NoError(t, err)
	assert.True(t, res.SmallUA)
	assert.Equal(t, 1, res.FinalGRC)
}

func TestComputeV25Mitigations(t *testing.T) {
	res, err := Compute(sora.GRCRequestV25{
		MaxDimensionM:     2.5,
		MaxSpeedMS:        30,
		PopulationDensity: 3000,
		Mitigations: sora.GRCMitigations{
			M1Strategic:         sora.MitigationLow,
			M2GroundImpact:      sora.MitigationHigh,
			M3EmergencyResponse: sora.MitigationHigh,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, res.IntrinsicGRC)
	assert.Equal(t, 2, res.FinalGRC)
}

func TestComputeRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		req   sora.GRCRequest
		field string
	}{
		{"negative dimension", sora.GRCRequestV20{MaxDimensionM: -1, Scenario: sora.ScenarioVLOSControlled}, "max_dimension_m"},
		{"nan dimension", sora.GRCRequestV25{MaxDimensionM: math.NaN(), MaxSpeedMS: 10, PopulationDensity: 10}, "max_dimension_m"},
		{"infinite speed", sora.GRCRequestV25{MaxDimensionM: 1, MaxSpeedMS: math.Inf(1), PopulationDensity: 10}, "max_speed_ms"},
		{"negative density", sora.GRCRequestV25{MaxDimensionM: 1, MaxSpeedMS: 10, PopulationDensity: -5}, "population_density"},
		{"unknown scenario", sora.GRCRequestV20{MaxDimensionM: 1, Scenario: "over-the-moon"}, "scenario"},
		{"bad mitigation level", sora.GRCRequestV20{
			MaxDimensionM: 1,
			Scenario:      sora.ScenarioVLOSControlled,
			Mitigations:   sora.GRCMitigations{M2GroundImpact: 7},
		}, "mitigations.M2"},
		{"nil request", nil, "request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, sora.ErrValidation))
			assert.False(t, errors.Is(err, sora.ErrGreyCell))

			fields := sora.FieldErrors(err)
			require.NotEmpty(t, fields)
			assert.Equal(t, tt.field, fields[0].Field)
		})
	}
}

func TestComputeAcceptsPointerVariants(t *testing.T) {
	res, err := Compute(&sora.GRCRequestV20{MaxDimensionM: 0.5, Scenario: sora.ScenarioVLOSControlled})
	require.NoError(t, err)
	assert.Equal(t, 1, res.IntrinsicGRC)

	var nilReq *sora.GRCRequestV25
	_, err = Compute(nilReq)
	assert.True(t, errors.Is(err, sora.ErrValidation))
}

func TestCategoryBands(t *testing.T) {
	assert.Equal(t, 0, ColumnV20(0, 0, 0))
	assert.Equal(t, 3, ColumnV20(8.01, 0, 0))
	assert.Equal(t, 0, ColumnV20(0.5, 10, 10), "500 J stays below 700 J")
	assert.Equal(t, 1, ColumnV20(0.5, 20, 10), "2 kJ moves to the 3 m column")
	assert.Equal(t, 3, ColumnV20(0.5, 200, 100), "2 MJ lands in the last column")

	assert.Equal(t, 0, ColumnV25(1, 25))
	assert.Equal(t, 1, ColumnV25(1, 25.1))
	assert.Equal(t, 3, ColumnV25(20, 0))
	assert.Equal(t, 4, ColumnV25(0, 121))

	assert.Equal(t, 0, PopulationRowV25(1e6, true))
	assert.Equal(t, 1, PopulationRowV25(0, false))
	assert.Equal(t, 1, PopulationRowV25(4.99, false))
	assert.Equal(t, 2, PopulationRowV25(5, false))
	assert.Equal(t, 5, PopulationRowV25(49999, false))
	assert.Equal(t, 6, PopulationRowV25(50000, false))
}
