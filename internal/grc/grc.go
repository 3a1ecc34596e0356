// Package grc computes the intrinsic and final Ground Risk Class
package grc

import (
	"fmt"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/validation"
)

// Compute validates req and classifies it with the table of its version.
// A grey cell returns a *sora.GreyCellError; bad input a validation error.
func Compute(req sora.GRCRequest) (sora.GRCResult, error) {
	if err := validation.ValidateGRC(req); err != nil {
		return sora.GRCResult{}, err
	}

	switch r := req.(type) {
	case sora.GRCRequestV20:
		return computeV20(r)
	case *sora.GRCRequestV20:
		return computeV20(*r)
	case sora.GRCRequestV25:
		return computeV25(r)
	case *sora.GRCRequestV25:
		return computeV25(*r)
	}
	return sora.GRCResult{}, fmt.Errorf("grc: unhandled request type %T", req)
}

func newResult(version sora.Version, row, col int, m sora.GRCMitigations) sora.GRCResult {
	return sora.GRCResult{
		Version:     version,
		Mitigations: m,
		Adjustments: []sora.GRCAdjustment{},
		Row:         row,
		Column:      col,
		RowLabel:    sora.RowLabel(version, row),
		ColumnLabel: sora.ColumnLabel(version, col),
	}
}
