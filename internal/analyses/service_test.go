package analyses

import (
	"context"
	"errors"
	"sync"
	"testing"

	"resume-matcher/internal/matching"
	"resume-matcher/internal/matching/scoring"
	"resume-matcher/internal/matching/taxonomy"
)

type panicAnalyzer struct{}

func (panicAnalyzer) Analyze(string, string) scoring.Result {
	panic("index out of range")
}

type countingAnalyzer struct {
	calls int
}

func (a *countingAnalyzer) Analyze(string, string) scoring.Result {
	a.calls++
	return scoring.Result{MatchRate: 50}
}

func TestServiceAnalyze(t *testing.T) {
	svc := NewService(matching.New(taxonomy.Default()))

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{
		ResumeText:     "I have experience with Python and SQL databases.",
		JobDescription: "Looking for a candidate skilled in Python, Java, and leadership.",
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result.MatchRate != 33 {
		t.Fatalf("expected match rate 33, got %d", result.MatchRate)
	}
}

func TestServiceRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  AnalyzeRequest
	}{
		{name: "both empty", req: AnalyzeRequest{}},
		{name: "no resume", req: AnalyzeRequest{JobDescription: "Go developer"}},
		{name: "no job", req: AnalyzeRequest{ResumeText: "Go developer"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &countingAnalyzer{}
			svc := NewService(engine)
			_, err := svc.Analyze(context.Background(), tt.req)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if engine.calls != 0 {
				t.Fatalf("engine should not run for invalid input")
			}
		})
	}
}

func TestServiceAcceptsWhitespace(t *testing.T) {
	engine := &countingAnalyzer{}
	svc := NewService(engine)
	if _, err := svc.Analyze(context.Background(), AnalyzeRequest{ResumeText: " ", JobDescription: "\n"}); err != nil {
		t.Fatalf("whitespace input should be accepted, got %v", err)
	}
	if engine.calls != 1 {
		t.Fatalf("expected one engine call, got %d", engine.calls)
	}
}

func TestServiceRecoversPanics(t *testing.T) {
	svc := NewService(panicAnalyzer{})
	ctx := WithRequestID(context.Background(), "req-1")

	result, err := svc.Analyze(ctx, AnalyzeRequest{ResumeText: "a", JobDescription: "b"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if result.Categories != nil || result.MatchRate != 0 {
		t.Fatalf("expected empty result on failure, got %+v", result)
	}
}

func TestServiceWithoutEngine(t *testing.T) {
	svc := &Service{}
	_, err := svc.Analyze(context.Background(), AnalyzeRequest{ResumeText: "a", JobDescription: "b"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestServiceLiteralConcurrentValidation(t *testing.T) {
	svc := &Service{Engine: matching.New(taxonomy.Default())}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := AnalyzeRequest{ResumeText: "Python", JobDescription: "Python"}
			if i%2 == 0 {
				req.ResumeText = ""
			}
			_, err := svc.Analyze(context.Background(), req)
			if i%2 == 0 && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if i%2 == 1 && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()
	if svc.validate != nil {
		t.Fatalf("validator should not be assigned lazily")
	}
}
