package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Client abstracts the provider that rewrites a resume.
type Client interface {
	Rewrite(ctx context.Context, input RewriteInput) (string, error)
}

// RewriteInput captures what a rewrite needs: both texts and the issues the
// analysis reported.
type RewriteInput struct {
	ResumeText     string
	JobDescription string
	Issues         []string
	PromptVersion  string
}

// ErrUnknownProvider is returned by NewClient for unsupported providers.
var ErrUnknownProvider = errors.New("unknown llm provider")

// PlaceholderOutput is what PlaceholderClient returns for every request.
const PlaceholderOutput = "[Optimized resume would be generated here]"

// PlaceholderClient builds the prompt but returns a fixed result.
type PlaceholderClient struct{}

// Rewrite returns PlaceholderOutput once the prompt renders.
func (PlaceholderClient) Rewrite(ctx context.Context, input RewriteInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := BuildRewritePrompt(input); err != nil {
		return "", err
	}
	return PlaceholderOutput, nil
}

// NewClient returns the client for provider.
func NewClient(provider string) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", "placeholder":
		return PlaceholderClient{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}
