package sora

// GRCAdjustment records one mitigation step for the audit trail
type GRCAdjustment struct {
	Mitigation Mitigation      `json:"mitigation"`
	Level      MitigationLevel `json:"level"`
	Credit     int             `json:"credit"`
	Before     int             `json:"before"`
	After      int             `json:"after"`
	Floored    bool            `json:"floored,omitempty"`
}

// GRCResult is the outcome of a ground risk classification
type GRCResult struct {
	Version      Version         `json:"version"`
	IntrinsicGRC int             `json:"intrinsic_grc"`
	FinalGRC     int             `json:"final_grc"`
	OutOfScope   bool            `json:"out_of_scope"`
	Mitigations  GRCMitigations  `json:"mitigations"`
	Adjustments  []GRCAdjustment `json:"adjustments"`
	Row          int             `json:"row"`
	Column       int             `json:"column"`
	RowLabel     string          `json:"row_label"`
	ColumnLabel  string          `json:"column_label"`
	// SmallUA is set when the SORA 2.5 small-UA rule fixed the intrinsic GRC
	SmallUA bool `json:"small_ua,omitempty"`
}

// ARCResult is the outcome of an air risk classification. SORA 2.0 results
// carry ratings, SORA 2.5 results carry levels.
type ARCResult struct {
	Version            Version         `json:"version"`
	AEC                int             `json:"aec"`
	AECDescription     string          `json:"aec_description"`
	InitialRating      ARCRating       `json:"initial_arc,omitempty"`
	FinalRating        ARCRating       `json:"final_arc,omitempty"`
	InitialLevel       ARCLevel        `json:"initial_arc_level,omitempty"`
	FinalLevel         ARCLevel        `json:"final_arc_level,omitempty"`
	TacticalMitigation MitigationLevel `json:"tactical_mitigation"`
	Reduced            bool            `json:"reduced"`
}

// SAILResult carries exactly one of SAIL and Category
type SAILResult struct {
	Version          Version    `json:"version"`
	Source           string     `json:"source"`
	FinalGRC         int        `json:"final_grc"`
	FinalARC         ARCRating  `json:"final_arc,omitempty"`
	ResidualARCLevel ARCLevel   `json:"residual_arc_level,omitempty"`
	SAIL             *SAILLevel `json:"sail,omitempty"`
	Category         string     `json:"category,omitempty"`
}

// IsCategoryC reports whether the operation falls outside the SAIL framework
func (r SAILResult) IsCategoryC() bool {
	return r.Category == CategoryC
}

// Level returns the SAIL level, or 0 for Category C
func (r SAILResult) Level() SAILLevel {
	if r.SAIL == nil {
		return 0
	}
	return *r.SAIL
}

// SAILSource names the table a SAIL result came from
func SAILSource(version Version) string {
	return version.Label() + " SAIL matrix"
}

// NewSAILLevelResult builds a result holding a SAIL level
func NewSAILLevelResult(version Version, finalGRC int, level SAILLevel) SAILResult {
	l := level
	return SAILResult{
		Version:  version,
		Source:   SAILSource(version),
		FinalGRC: finalGRC,
		SAIL:     &l,
	}
}

// NewCategoryCResult builds a terminal Category C result
func NewCategoryCResult(version Version, finalGRC int) SAILResult {
	return SAILResult{
		Version:  version,
		Source:   SAILSource(version),
		FinalGRC: finalGRC,
		Category: CategoryC,
	}
}
