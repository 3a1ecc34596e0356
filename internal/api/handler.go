package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/assessment"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/config"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/validation"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/pkg/logger"
)

var errEmptyBody = errors.New("request body is empty")

// Handler serves the calculation endpoints
type Handler struct {
	service        *assessment.Service
	schemas        *SchemaSet
	defaultVersion string
	started        time.Time
	logger         *logger.Logger
}

// NewHandler creates a new handler
func NewHandler(service *assessment.Service, schemas *SchemaSet, cfg *config.Config, log *logger.Logger) *Handler {
	return &Handler{
		service:        service,
		schemas:        schemas,
		defaultVersion: cfg.Engine.DefaultVersion,
		started:        time.Now(),
		logger:         log.Named("api-handler"),
	}
}

// PostGRC classifies ground risk
func (h *Handler) PostGRC(w http.ResponseWriter, r *http.Request) {
	var fields validation.GRCFields
	if err := h.decode(r, SchemaGRC, &fields); err != nil {
		h.writeError(w, r, err)
		return
	}
	fields.Version = h.versionOrDefault(fields.Version)

	req, err := validation.BuildGRCRequest(fields)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.service.ComputeGRC(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// PostARC classifies air risk
func (h *Handler) PostARC(w http.ResponseWriter, r *http.Request) {
	var fields validation.ARCFields
	if err := h.decode(r, SchemaARC, &fields); err != nil {
		h.writeError(w, r, err)
		return
	}
	fields.Version = h.versionOrDefault(fields.Version)

	req, err := validation.BuildARCRequest(fields)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.service.ComputeARC(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// PostSAIL maps a final GRC and ARC to a SAIL
func (h *Handler) PostSAIL(w http.ResponseWriter, r *http.Request) {
	var fields validation.SAILFields
	if err := h.decode(r, SchemaSAIL, &fields); err != nil {
		h.writeError(w, r, err)
		return
	}
	fields.Version = h.versionOrDefault(fields.Version)

	req, err := validation.BuildSAILRequest(fields)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.service.ComputeSAIL(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// PostAssessment runs GRC, ARC and SAIL in one call
func (h *Handler) PostAssessment(w http.ResponseWriter, r *http.Request) {
	var fields validation.AssessmentFields
	if err := h.decode(r, SchemaAssessment, &fields); err != nil {
		h.writeError(w, r, err)
		return
	}
	fields.Version = h.versionOrDefault(fields.Version)

	grcReq, arcReq, err := validation.BuildAssessment(fields)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.service.Assess(r.Context(), grcReq, arcReq)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// VersionInfo describes one supported rule generation
type VersionInfo struct {
	Version  sora.Version `json:"version"`
	Label    string       `json:"label"`
	ARCScale string       `json:"arc_scale"`
	Source   string       `json:"sail_source"`
	Default  bool         `json:"default,omitempty"`
}

// GetVersions lists the supported SORA versions
func (h *Handler) GetVersions(w http.ResponseWriter, r *http.Request) {
	versions := sora.SupportedVersions()
	out := make([]VersionInfo, 0, len(versions))
	for _, v := range versions {
		scale := "letter"
		if v == sora.Version25 {
			scale = "numeric"
		}
		out = append(out, VersionInfo{
			Version:  v,
			Label:    v.Label(),
			ARCScale: scale,
			Source:   sora.SAILSource(v),
			Default:  h.defaultVersion != "" && h.isDefault(v),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"versions": out})
}

// GetHealth returns the health status
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	})
}

func (h *Handler) isDefault(v sora.Version) bool {
	parsed, err := sora.ParseVersion(h.defaultVersion)
	return err == nil && parsed == v
}

func (h *Handler) versionOrDefault(v string) string {
	if v == "" {
		return h.defaultVersion
	}
	return v
}

// decode reads the body, checks it against the named schema and unmarshals
// it into dst
func (h *Handler) decode(r *http.Request, schema string, dst any) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return errEmptyBody
	}
	if err := h.schemas.Validate(schema, data); err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
