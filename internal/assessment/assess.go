package assessment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/pkg/logger"
)

// Assessment is the full GRC, ARC and SAIL chain for one operation
type Assessment struct {
	Version sora.Version    `json:"version"`
	GRC     sora.GRCResult  `json:"grc"`
	ARC     sora.ARCResult  `json:"arc"`
	SAIL    sora.SAILResult `json:"sail"`
	// Digest is the hex SHA-256 of the canonical JSON of the other fields
	Digest string `json:"digest,omitempty"`
}

// Assess classifies ground and air risk independently and feeds both final
// values to the SAIL matrix of the same version
func (s *Service) Assess(ctx context.Context, grcReq sora.GRCRequest, arcReq sora.ARCRequest) (Assessment, error) {
	grcVersion, arcVersion := versionOf(grcReq), versionOf(arcReq)
	if grcVersion != "" && arcVersion != "" && grcVersion != arcVersion {
		return Assessment{}, mismatch(grcVersion, arcVersion)
	}

	grcRes, err := s.ComputeGRC(ctx, grcReq)
	if err != nil {
		return Assessment{}, fmt.Errorf("ground risk: %w", err)
	}
	arcRes, err := s.ComputeARC(ctx, arcReq)
	if err != nil {
		return Assessment{}, fmt.Errorf("air risk: %w", err)
	}

	sailRes, err := s.ComputeSAIL(ctx, SAILRequestFor(grcRes, arcRes))
	if err != nil {
		return Assessment{}, fmt.Errorf("sail: %w", err)
	}

	a := Assessment{
		Version: grcRes.Version,
		GRC:     grcRes,
		ARC:     arcRes,
		SAIL:    sailRes,
	}

	if s.digest {
		digest, err := Digest(a)
		if err != nil {
			return Assessment{}, err
		}
		a.Digest = digest
	}

	s.logger.Debug("assessment complete",
		logger.Stringer("version", a.Version),
		logger.Int("final_grc", a.GRC.FinalGRC),
		logger.String("digest", a.Digest),
	)
	return a, nil
}

// SAILRequestFor builds the SAIL request matching the version of a GRC and an
// ARC result: a letter rating for SORA 2.0, a residual level for SORA 2.5
func SAILRequestFor(g sora.GRCResult, a sora.ARCResult) sora.SAILRequest {
	if g.Version == sora.Version25 {
		return sora.SAILRequestV25{FinalGRC: g.FinalGRC, ResidualARCLevel: a.FinalLevel}
	}
	return sora.SAILRequestV20{FinalGRC: g.FinalGRC, FinalARC: a.FinalRating}
}

type digestPayload struct {
	Version sora.Version    `json:"version"`
	GRC     sora.GRCResult  `json:"grc"`
	ARC     sora.ARCResult  `json:"arc"`
	SAIL    sora.SAILResult `json:"sail"`
}

// Digest hashes the RFC 8785 canonical form of an assessment, so identical
// inputs always give the same digest whatever the field order on the wire
func Digest(a Assessment) (string, error) {
	raw, err := json.Marshal(digestPayload{Version: a.Version, GRC: a.GRC, ARC: a.ARC, SAIL: a.SAIL})
	if err != nil {
		return "", fmt.Errorf("failed to encode assessment: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize assessment: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
