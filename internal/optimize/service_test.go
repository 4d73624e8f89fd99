package optimize

import (
	"context"
	"errors"
	"sync"
	"testing"

	"resume-matcher/internal/llm"
)

type echoClient struct{}

func (echoClient) Rewrite(_ context.Context, in llm.RewriteInput) (string, error) {
	return in.ResumeText, nil
}

func TestServiceLiteralValidatesConcurrently(t *testing.T) {
	svc := &Service{LLM: echoClient{}}
	issues := []string{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := Request{ResumeText: "resume", JobDescription: "job", Issues: &issues}
			if i%2 == 0 {
				req.Issues = nil
			}
			resp, err := svc.Optimize(context.Background(), req)
			if i%2 == 0 {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil || resp.OptimizedResume != "resume" {
				t.Errorf("unexpected result %+v, %v", resp, err)
			}
		}(i)
	}
	wg.Wait()
	if svc.validate != nil {
		t.Fatalf("validator should not be assigned lazily")
	}
}

func TestServiceWithoutClient(t *testing.T) {
	issues := []string{"missing go"}
	_, err := (&Service{}).Optimize(context.Background(), Request{ResumeText: "r", JobDescription: "j", Issues: &issues})
	if !errors.Is(err, ErrRewrite) {
		t.Fatalf("expected ErrRewrite, got %v", err)
	}
}
