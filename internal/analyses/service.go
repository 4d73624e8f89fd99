package analyses

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/go-playground/validator/v10"

	"resume-matcher/internal/matching/scoring"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/telemetry"
)

// Analyzer scores a resume against a job description.
type Analyzer interface {
	Analyze(resumeText, jobDescription string) scoring.Result
}

// Service validates analysis requests and runs them through the engine. A
// request either yields a full result or an error; nothing partial escapes.
type Service struct {
	Engine   Analyzer
	validate *validator.Validate
}

// NewService constructs a Service around engine.
func NewService(engine Analyzer) *Service {
	return &Service{Engine: engine, validate: validator.New()}
}

// Analyze validates req and returns the analysis. Invalid input wraps
// ErrInvalidInput; engine failures, panics included, wrap ErrInternal.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (result scoring.Result, err error) {
	if verr := s.validator().Struct(req); verr != nil {
		metrics.IncAnalysisRejected()
		return scoring.Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, verr)
	}
	metrics.IncAnalysisRequests()

	requestID := requestIDFromContext(ctx)
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			metrics.IncAnalysisFailed()
			telemetry.Error("analysis.panic", map[string]any{
				"request_id": requestID,
				"error":      fmt.Sprint(rec),
				"stack":      string(debug.Stack()),
			})
			result = scoring.Result{}
			err = fmt.Errorf("%w: %v", ErrInternal, rec)
		}
	}()

	if s.Engine == nil {
		metrics.IncAnalysisFailed()
		return scoring.Result{}, fmt.Errorf("%w: analysis engine not configured", ErrInternal)
	}

	result = s.Engine.Analyze(req.ResumeText, req.JobDescription)

	elapsed := metrics.SinceMillis(start)
	metrics.ObserveAnalysisDurationMs(elapsed)
	telemetry.Info("analysis.complete", map[string]any{
		"request_id":       requestID,
		"match_rate":       result.MatchRate,
		"matched_keywords": len(result.MatchedKeywords),
		"missing_terms":    countIssues(result),
		"resume_chars":     len(req.ResumeText),
		"job_chars":        len(req.JobDescription),
		"duration_ms":      elapsed,
	})
	return result, nil
}

// sharedValidate serves Services built without NewService. It is never
// written after init, so concurrent requests may share it.
var sharedValidate = validator.New()

func (s *Service) validator() *validator.Validate {
	if s.validate == nil {
		return sharedValidate
	}
	return s.validate
}

func countIssues(r scoring.Result) int {
	n := 0
	for _, c := range r.Categories {
		n += len(c.Issues)
	}
	return n
}
