// Package assessment runs the risk engines behind one service value that is
// built once at startup and shared by every caller. It adds logging, metrics
// and tracing around the pure engine calls and chains GRC, ARC and SAIL into a
// full assessment.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/arc"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/grc"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/metrics"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sail"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/pkg/logger"
)

// TracerName identifies spans started by the service
const TracerName = "github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/assessment"

// Engine names used in logs, spans and metric labels
const (
	EngineGRC  = "grc"
	EngineARC  = "arc"
	EngineSAIL = "sail"
)

// Recorder receives calculation metrics. *metrics.Collector implements it.
type Recorder interface {
	ObserveCalculation(engine string, version sora.Version, outcome string, elapsed time.Duration)
	ObserveSAIL(result sora.SAILResult)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCalculation(string, sora.Version, string, time.Duration) {}
func (nopRecorder) ObserveSAIL(sora.SAILResult)                                   {}

// Option configures a Service
type Option func(*Service)

// WithRecorder sends calculation metrics to r
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithTracer replaces the global tracer
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithDigest controls whether assessments carry a canonical digest
func WithDigest(enabled bool) Option {
	return func(s *Service) {
		s.digest = enabled
	}
}

// Service wraps the engines. It holds no per-request state and is safe for
// concurrent use.
type Service struct {
	logger   *logger.Logger
	recorder Recorder
	tracer   trace.Tracer
	digest   bool
}

// NewService creates a service. Without options it records nothing, uses the
// global tracer and computes digests.
func NewService(log *logger.Logger, opts ...Option) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	s := &Service{
		logger:   log.Named("assessment"),
		recorder: nopRecorder{},
		tracer:   otel.Tracer(TracerName),
		digest:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ComputeGRC classifies ground risk
func (s *Service) ComputeGRC(ctx context.Context, req sora.GRCRequest) (sora.GRCResult, error) {
	res, err := run(ctx, s, EngineGRC, versionOf(req), func() (sora.GRCResult, error) {
		return grc.Compute(req)
	})
	if err == nil {
		s.logger.Debug("ground risk classified",
			logger.Stringer("version", res.Version),
			logger.Int("intrinsic_grc", res.IntrinsicGRC),
			logger.Int("final_grc", res.FinalGRC),
			logger.Bool("out_of_scope", res.OutOfScope),
		)
	}
	return res, err
}

// ComputeARC classifies air risk
func (s *Service) ComputeARC(ctx context.Context, req sora.ARCRequest) (sora.ARCResult, error) {
	res, err := run(ctx, s, EngineARC, versionOf(req), func() (sora.ARCResult, error) {
		return arc.Compute(req)
	})
	if err == nil {
		s.logger.Debug("air risk classified",
			logger.Stringer("version", res.Version),
			logger.Int("aec", res.AEC),
			logger.Bool("reduced", res.Reduced),
		)
	}
	return res, err
}

// ComputeSAIL maps a final GRC and ARC to a SAIL or Category C
func (s *Service) ComputeSAIL(ctx context.Context, req sora.SAILRequest) (sora.SAILResult, error) {
	res, err := run(ctx, s, EngineSAIL, versionOf(req), func() (sora.SAILResult, error) {
		return sail.Compute(req)
	})
	if err != nil {
		return res, err
	}

	s.recorder.ObserveSAIL(res)
	if res.IsCategoryC() {
		s.logger.Info("operation outside the SAIL framework",
			logger.Stringer("version", res.Version),
			logger.Int("final_grc", res.FinalGRC),
			logger.String("category", res.Category),
		)
	} else {
		s.logger.Debug("SAIL assigned",
			logger.Stringer("version", res.Version),
			logger.Stringer("sail", res.Level()),
		)
	}
	return res, nil
}

// run wraps one engine call in a span, a timing and a metric
func run[T any](ctx context.Context, s *Service, engine string, version sora.Version, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	_, span := s.tracer.Start(ctx, engine+".compute", trace.WithAttributes(
		attribute.String("sora.engine", engine),
		attribute.String("sora.version", string(version)),
	))
	defer span.End()

	start := time.Now()
	res, err := fn()
	elapsed := time.Since(start)

	outcome := Outcome(err)
	s.recorder.ObserveCalculation(engine, version, outcome, elapsed)
	span.SetAttributes(attribute.String("sora.outcome", outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		s.logFailure(engine, version, outcome, err)
		return zero, err
	}
	return res, nil
}

func (s *Service) logFailure(engine string, version sora.Version, outcome string, err error) {
	fields := []logger.Field{
		logger.String("engine", engine),
		logger.String("version", string(version)),
		logger.Error(err),
	}
	switch outcome {
	case metrics.OutcomeGreyCell:
		s.logger.Info("grey cell, manual assessment required", fields...)
	case metrics.OutcomeValidation:
		s.logger.Debug("request rejected", fields...)
	default:
		s.logger.Error("calculation failed", fields...)
	}
}

// Outcome classifies an engine error for metrics and logs
func Outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, sora.ErrGreyCell):
		return metrics.OutcomeGreyCell
	case errors.Is(err, sora.ErrValidation):
		return metrics.OutcomeValidation
	}
	return metrics.OutcomeError
}

type versioned interface {
	Version() sora.Version
}

// versionOf tolerates nil requests, including typed nil pointers, so they
// reach the validator
func versionOf(req versioned) sora.Version {
	if req == nil {
		return ""
	}
	if rv := reflect.ValueOf(req); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return ""
	}
	return req.Version()
}

func mismatch(grcVersion, arcVersion sora.Version) error {
	return &sora.ValidationError{
		Field:   "version",
		Value:   fmt.Sprintf("%s/%s", grcVersion, arcVersion),
		Message: "GRC and ARC must use the same SORA version",
	}
}
