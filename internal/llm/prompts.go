package llm

import (
	_ "embed"
	"fmt"
	"strings"
)

var (
	//go:embed prompts/rewrite_v1.txt
	rewritePromptV1 string
)

// DefaultPromptVersion is used when RewriteInput.PromptVersion is empty.
const DefaultPromptVersion = "v1"

// PromptTemplate returns the rewrite prompt template text and whether the version was recognized.
func PromptTemplate(version string) (string, bool) {
	switch version {
	case "v1":
		return rewritePromptV1, true
	default:
		return rewritePromptV1, false
	}
}

// BuildRewritePrompt renders the rewrite prompt. Each issue becomes one
// "- " bullet line.
func BuildRewritePrompt(input RewriteInput) (string, error) {
	version := strings.TrimSpace(input.PromptVersion)
	if version == "" {
		version = DefaultPromptVersion
	}
	template, ok := PromptTemplate(version)
	if !ok {
		return "", fmt.Errorf("unknown prompt version %q", version)
	}

	bullets := make([]string, 0, len(input.Issues))
	for _, issue := range input.Issues {
		bullets = append(bullets, "- "+issue)
	}

	r := strings.NewReplacer(
		"{{RESUME_TEXT}}", input.ResumeText,
		"{{JOB_DESCRIPTION}}", input.JobDescription,
		"{{ISSUES}}", strings.Join(bullets, "\n"),
	)
	return strings.TrimRight(r.Replace(template), "\n"), nil
}
