package sora

// Regulatory tables. Each version has exactly one copy of each table and every
// engine reads through the lookup functions below. Nothing writes to these
// arrays after package initialisation.

// greyCell marks an intrinsic GRC cell the regulation leaves undefined
const greyCell = 0

// SORA 2.0 intrinsic GRC, rows by operational scenario, columns by
// dimension band (1 m, 3 m, 8 m, >8 m)
var intrinsicGRCV20 = [7][4]int{
	{1, 2, 3, 4},                      // VLOS/BVLOS over controlled ground area
	{2, 3, 4, 5},                      // VLOS sparsely populated
	{3, 4, 5, 6},                      // BVLOS sparsely populated
	{4, 5, 6, 8},                      // VLOS populated
	{5, 6, 8, 10},                     // BVLOS populated
	{7, greyCell, greyCell, greyCell}, // VLOS over gathering of people
	{8, greyCell, greyCell, greyCell}, // BVLOS over gathering of people
}

var scenarioRowsV20 = map[OperationalScenario]int{
	ScenarioVLOSControlled:         0,
	ScenarioBVLOSControlled:        0,
	ScenarioVLOSSparselyPopulated:  1,
	ScenarioBVLOSSparselyPopulated: 2,
	ScenarioVLOSPopulated:          3,
	ScenarioBVLOSPopulated:         4,
	ScenarioVLOSGathering:          5,
	ScenarioBVLOSGathering:         6,
}

var scenarioRowLabelsV20 = [7]string{
	"controlled ground area",
	"VLOS sparsely populated",
	"BVLOS sparsely populated",
	"VLOS populated",
	"BVLOS populated",
	"VLOS gathering of people",
	"BVLOS gathering of people",
}

// DimensionThresholdsV20 are the inclusive upper bounds, in metres, of the
// first three SORA 2.0 columns; anything larger falls in the last column
var DimensionThresholdsV20 = [3]float64{1, 3, 8}

// KineticEnergyThresholdsV20 are the exclusive upper bounds, in joules, of the
// typical kinetic energy for the first three SORA 2.0 columns
var KineticEnergyThresholdsV20 = [3]float64{700, 34000, 1084000}

var dimensionColumnLabelsV20 = [4]string{"1 m / <700 J", "3 m / <34 kJ", "8 m / <1084 kJ", ">8 m / >1084 kJ"}

// SORA 2.5 intrinsic GRC, rows by population density band, columns by
// dimension/speed band
var intrinsicGRCV25 = [7][5]int{
	{1, 1, 2, 3, 3},               // controlled ground area
	{2, 3, 4, 5, 6},               // < 5 people/km²
	{3, 4, 5, 6, 7},               // < 50
	{4, 5, 6, 7, 8},               // < 500
	{5, 6, 7, 8, 9},               // < 5,000
	{6, 7, 8, 9, 10},              // < 50,000
	{7, 8, 9, greyCell, greyCell}, // >= 50,000
}

// DimensionThresholdsV25 are inclusive upper bounds in metres
var DimensionThresholdsV25 = [4]float64{1, 3, 8, 20}

// SpeedThresholdsV25 are inclusive upper bounds in metres per second
var SpeedThresholdsV25 = [4]float64{25, 35, 75, 120}

// PopulationThresholdsV25 are exclusive upper bounds in people per km² for
// density bands 1-5; band 6 is everything at or above the last value
var PopulationThresholdsV25 = [5]float64{5, 50, 500, 5000, 50000}

var sizeSpeedColumnLabelsV25 = [5]string{"1 m / 25 m/s", "3 m / 35 m/s", "8 m / 75 m/s", "20 m / 120 m/s", "40 m / 200 m/s"}

var populationRowLabelsV25 = [7]string{
	"controlled ground area",
	"< 5 people/km²",
	"< 50 people/km²",
	"< 500 people/km²",
	"< 5,000 people/km²",
	"< 50,000 people/km²",
	">= 50,000 people/km²",
}

// Small-UA override for SORA 2.5
const (
	SmallUAMaxMTOMKg    = 0.25
	SmallUAMaxSpeedMS   = 25.0
	SmallUAIntrinsicGRC = 1
)

// GRC bounds
const (
	MinGRC          = 1
	MaxGRCV20       = 7 // highest final GRC inside the SAIL framework
	MaxIntrinsicGRC = 10
)

// Mitigation identifies a ground-risk mitigation
type Mitigation string

const (
	MitigationM1 Mitigation = "M1" // strategic
	MitigationM2 Mitigation = "M2" // effects of ground impact reduced
	MitigationM3 Mitigation = "M3" // emergency response plan
)

// GRC credit per mitigation level (None, Low, Medium, High). Negative values
// lower the GRC.
var mitigationCreditsV20 = map[Mitigation][4]int{
	MitigationM1: {0, -1, -2, -4},
	MitigationM2: {0, 0, -1, -2},
	MitigationM3: {0, 0, 0, -1},
}

var mitigationCreditsV25 = map[Mitigation][4]int{
	MitigationM1: {0, -1, -2, -4},
	MitigationM2: {0, 0, -1, -2},
	MitigationM3: {0, 0, 0, -1},
}

// Air risk
const (
	// LowAltitudeCeilingFt separates the low and high AEC branches (inclusive)
	LowAltitudeCeilingFt = 500.0
	// FL600Ft is the flight level above which AEC 11 applies
	FL600Ft = 60000.0
)

// initial ARC-x per airspace encounter category, index 1-12
var aecRatings = [13]ARCRating{
	0,
	ARCd, ARCd, ARCd, ARCc, ARCc, ARCc,
	ARCc, ARCc, ARCc, ARCb, ARCb, ARCa,
}

// initial SORA 2.5 residual level per airspace encounter category, index 1-12
var aecLevelsV25 = [13]ARCLevel{
	0,
	10, 9, 8, 7, 6, 7,
	6, 6, 5, 4, 3, 1,
}

var aecDescriptions = [13]string{
	"",
	"airport/heliport environment in class A-D airspace",
	"above 500 ft AGL in Mode-S veil or TMZ",
	"above 500 ft AGL in controlled airspace",
	"above 500 ft AGL in uncontrolled airspace over urban area",
	"above 500 ft AGL in uncontrolled airspace over rural area",
	"airport/heliport environment in class E-G airspace",
	"below 500 ft AGL in Mode-S veil or TMZ",
	"below 500 ft AGL in controlled airspace",
	"below 500 ft AGL in uncontrolled airspace over urban area",
	"below 500 ft AGL in uncontrolled airspace over rural area",
	"above FL600",
	"atypical or segregated airspace",
}

type arcStratum struct {
	rating    ARCRating
	low, high ARCLevel
}

// SORA 2.5 residual level strata, lowest risk first
var arcLevelStrata = [4]arcStratum{
	{ARCa, 1, 2},
	{ARCb, 3, 4},
	{ARCc, 5, 7},
	{ARCd, 8, 10},
}

// minimum tactical mitigation robustness needed to step down from a rating
var tacticalStepRequirement = map[ARCRating]MitigationLevel{
	ARCb: MitigationLow,
	ARCc: MitigationMedium,
	ARCd: MitigationHigh,
}

// SORA 2.0 SAIL, rows by final GRC 1-7, columns by ARC-a..ARC-d
var sailTableV20 = [7][4]SAILLevel{
	{SAILI, SAILII, SAILIV, SAILVI},    // GRC 1
	{SAILI, SAILII, SAILIV, SAILVI},    // GRC 2
	{SAILII, SAILII, SAILIV, SAILVI},   // GRC 3
	{SAILIII, SAILIII, SAILIV, SAILVI}, // GRC 4
	{SAILIV, SAILIV, SAILIV, SAILVI},   // GRC 5
	{SAILV, SAILV, SAILV, SAILVI},      // GRC 6
	{SAILVI, SAILVI, SAILVI, SAILVI},   // GRC 7
}

// SORA 2.5 SAIL, rows by final GRC 1-10, columns by residual ARC level 1-10
var sailTableV25 = [10][10]SAILLevel{
	{SAILI, SAILI, SAILII, SAILII, SAILIV, SAILIV, SAILIV, SAILVI, SAILVI, SAILVI},       // GRC 1
	{SAILI, SAILI, SAILII, SAILII, SAILIV, SAILIV, SAILIV, SAILVI, SAILVI, SAILVI},       // GRC 2
	{SAILII, SAILII, SAILII, SAILII, SAILIV, SAILIV, SAILIV, SAILVI, SAILVI, SAILVI},     // GRC 3
	{SAILIII, SAILIII, SAILIII, SAILIII, SAILIV, SAILIV, SAILIV, SAILVI, SAILVI, SAILVI}, // GRC 4
	{SAILIV, SAILIV, SAILIV, SAILIV, SAILIV, SAILIV, SAILIV, SAILVI, SAILVI, SAILVI},     // GRC 5
	{SAILV, SAILV, SAILV, SAILV, SAILV, SAILV, SAILV, SAILVI, SAILVI, SAILVI},            // GRC 6
	{SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI},     // GRC 7
	{SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI},     // GRC 8
	{SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI},     // GRC 9
	{SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI, SAILVI},     // GRC 10
}

// CategoryC is the terminal classification for operations outside SAIL
const CategoryC = "C"

// ScenarioRowV20 returns the SORA 2.0 table row for a scenario
func ScenarioRowV20(s OperationalScenario) (int, bool) {
	row, ok := scenarioRowsV20[s]
	return row, ok
}

// IntrinsicGRCV20 looks up a SORA 2.0 cell. A grey cell returns a
// *GreyCellError naming the row and column.
func IntrinsicGRCV20(row, col int) (int, error) {
	if row < 0 || row >= len(intrinsicGRCV20) || col < 0 || col >= len(intrinsicGRCV20[0]) {
		return 0, &ValidationError{Version: Version20, Field: "intrinsic GRC cell", Value: [2]int{row, col}, Message: "is outside the table"}
	}
	v := intrinsicGRCV20[row][col]
	if v == greyCell {
		return 0, &GreyCellError{
			Version:     Version20,
			Table:       "intrinsic GRC table",
			Row:         scenarioRowLabelsV20[row],
			Column:      dimensionColumnLabelsV20[col],
			RowIndex:    row,
			ColumnIndex: col,
		}
	}
	return v, nil
}

// IntrinsicGRCV25 looks up a SORA 2.5 cell. A grey cell returns a
// *GreyCellError naming the row and column.
func IntrinsicGRCV25(row, col int) (int, error) {
	if row < 0 || row >= len(intrinsicGRCV25) || col < 0 || col >= len(intrinsicGRCV25[0]) {
		return 0, &ValidationError{Version: Version25, Field: "intrinsic GRC cell", Value: [2]int{row, col}, Message: "is outside the table"}
	}
	v := intrinsicGRCV25[row][col]
	if v == greyCell {
		return 0, &GreyCellError{
			Version:     Version25,
			Table:       "intrinsic GRC table",
			Row:         populationRowLabelsV25[row],
			Column:      sizeSpeedColumnLabelsV25[col],
			RowIndex:    row,
			ColumnIndex: col,
		}
	}
	return v, nil
}

// ColumnFloor returns the controlled-ground-area value of a column, the lowest
// GRC strategic mitigation may reach in that column
func ColumnFloor(version Version, col int) int {
	switch version {
	case Version20:
		if col >= 0 && col < len(intrinsicGRCV20[0]) {
			return intrinsicGRCV20[0][col]
		}
	case Version25:
		if col >= 0 && col < len(intrinsicGRCV25[0]) {
			return intrinsicGRCV25[0][col]
		}
	}
	return MinGRC
}

// RowLabel returns the audit label of an intrinsic GRC row
func RowLabel(version Version, row int) string {
	switch version {
	case Version20:
		if row >= 0 && row < len(scenarioRowLabelsV20) {
			return scenarioRowLabelsV20[row]
		}
	case Version25:
		if row >= 0 && row < len(populationRowLabelsV25) {
			return populationRowLabelsV25[row]
		}
	}
	return ""
}

// ColumnLabel returns the audit label of an intrinsic GRC column
func ColumnLabel(version Version, col int) string {
	switch version {
	case Version20:
		if col >= 0 && col < len(dimensionColumnLabelsV20) {
			return dimensionColumnLabelsV20[col]
		}
	case Version25:
		if col >= 0 && col < len(sizeSpeedColumnLabelsV25) {
			return sizeSpeedColumnLabelsV25[col]
		}
	}
	return ""
}

// MitigationCredit returns the GRC adjustment for a mitigation at a level
func MitigationCredit(version Version, m Mitigation, level MitigationLevel) int {
	if !level.IsValid() {
		return 0
	}
	var credits map[Mitigation][4]int
	switch version {
	case Version20:
		credits = mitigationCreditsV20
	case Version25:
		credits = mitigationCreditsV25
	default:
		return 0
	}
	row, ok := credits[m]
	if !ok {
		return 0
	}
	return row[level]
}

// AECRating returns the initial letter rating for an airspace encounter category
func AECRating(aec int) ARCRating {
	if aec < 1 || aec >= len(aecRatings) {
		return 0
	}
	return aecRatings[aec]
}

// AECLevelV25 returns the initial SORA 2.5 residual level for an airspace
// encounter category
func AECLevelV25(aec int) ARCLevel {
	if aec < 1 || aec >= len(aecLevelsV25) {
		return 0
	}
	return aecLevelsV25[aec]
}

// AECDescription returns the audit text for an airspace encounter category
func AECDescription(aec int) string {
	if aec < 1 || aec >= len(aecDescriptions) {
		return ""
	}
	return aecDescriptions[aec]
}

// TacticalStepRequirement returns the robustness needed to lower a rating by
// one letter. ARC-a cannot be lowered.
func TacticalStepRequirement(r ARCRating) (MitigationLevel, bool) {
	level, ok := tacticalStepRequirement[r]
	return level, ok
}

// StratumTop returns the highest SORA 2.5 level inside a letter stratum
func StratumTop(r ARCRating) ARCLevel {
	for _, s := range arcLevelStrata {
		if s.rating == r {
			return s.high
		}
	}
	return 0
}

// SAILV20 looks up the SORA 2.0 matrix. ok is false outside GRC 1-7 / ARC a-d.
func SAILV20(grc int, arc ARCRating) (SAILLevel, bool) {
	if grc < MinGRC || grc > len(sailTableV20) || !arc.IsValid() {
		return 0, false
	}
	return sailTableV20[grc-1][arc-ARCa], true
}

// SAILV25 looks up the SORA 2.5 matrix. ok is false outside GRC 1-10 / level 1-10.
func SAILV25(grc int, level ARCLevel) (SAILLevel, bool) {
	if grc < MinGRC || grc > len(sailTableV25) || !level.IsValid() {
		return 0, false
	}
	return sailTableV25[grc-1][level-MinARCLevel], true
}

// SAILTableV20 returns a copy of the SORA 2.0 SAIL matrix
func SAILTableV20() [7][4]SAILLevel { return sailTableV20 }

// SAILTableV25 returns a copy of the SORA 2.5 SAIL matrix
func SAILTableV25() [10][10]SAILLevel { return sailTableV25 }

// IntrinsicGRCTableV20 returns a copy of the SORA 2.0 intrinsic GRC table;
// grey cells are 0
func IntrinsicGRCTableV20() [7][4]int { return intrinsicGRCV20 }

// IntrinsicGRCTableV25 returns a copy of the SORA 2.5 intrinsic GRC table;
// grey cells are 0
func IntrinsicGRCTableV25() [7][5]int { return intrinsicGRCV25 }
