package optimize

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"resume-matcher/internal/llm"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/telemetry"
)

// Request is the body of POST /optimize. Issues must be present but may be
// an empty list.
type Request struct {
	ResumeText     string    `json:"resumeText" validate:"required"`
	JobDescription string    `json:"jobDescription" validate:"required"`
	Issues         *[]string `json:"issues" validate:"required"`
}

// Response is returned on success.
type Response struct {
	OptimizedResume string `json:"optimizedResume"`
}

// Service hands validated rewrite requests to an LLM client.
type Service struct {
	LLM      llm.Client
	validate *validator.Validate
}

// NewService constructs a Service.
func NewService(client llm.Client) *Service {
	return &Service{LLM: client, validate: validator.New()}
}

// Optimize validates req and asks the client for a rewritten resume.
func (s *Service) Optimize(ctx context.Context, req Request) (Response, error) {
	if err := s.validator().Struct(req); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	metrics.IncOptimizeRequests()

	if s.LLM == nil {
		metrics.IncOptimizeFailed()
		return Response{}, fmt.Errorf("%w: llm client not configured", ErrRewrite)
	}
	out, err := s.LLM.Rewrite(ctx, llm.RewriteInput{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		Issues:         *req.Issues,
	})
	if err != nil {
		metrics.IncOptimizeFailed()
		return Response{}, fmt.Errorf("%w: %v", ErrRewrite, err)
	}

	telemetry.Info("optimize.complete", map[string]any{
		"issues":       len(*req.Issues),
		"resume_chars": len(req.ResumeText),
		"output_chars": len(out),
	})
	return Response{OptimizedResume: out}, nil
}

var sharedValidate = validator.New()

func (s *Service) validator() *validator.Validate {
	if s.validate == nil {
		return sharedValidate
	}
	return s.validate
}
