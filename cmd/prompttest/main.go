package main

// Render the rewrite prompt for a resume and job description:
//   go run ./cmd/prompttest -resume resume.txt -jd job.txt
//   go run ./cmd/prompttest -resume resume.txt -jd job.txt -rewrite

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/bootstrap"
	"resume-matcher/internal/llm"
	"resume-matcher/internal/shared/config"
)

func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path to resume text file")
	jdPath := flag.String("jd", "", "Path to job description text file")
	promptVersion := flag.String("prompt-version", llm.DefaultPromptVersion, "Prompt version")
	rewrite := flag.Bool("rewrite", false, "Send the prompt to the configured LLM provider instead of printing it")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" || strings.TrimSpace(*jdPath) == "" {
		exitErr("resume and jd paths are required")
	}
	resumeText, err := readFile(*resumePath)
	if err != nil {
		exitErr(err.Error())
	}
	jobDescription, err := readFile(*jdPath)
	if err != nil {
		exitErr(err.Error())
	}

	ctx := context.Background()
	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		exitErr(fmt.Sprintf("bootstrap: %v", err))
	}

	if err := run(ctx, os.Stdout, app.AnalysesService, app.OptimizeService.LLM, resumeText, jobDescription, *promptVersion, *rewrite); err != nil {
		exitErr(err.Error())
	}
}

// run analyzes the pair, then renders or sends the rewrite prompt built
// from the reported issues.
func run(ctx context.Context, w io.Writer, svc *analyses.Service, client llm.Client, resumeText, jobDescription, version string, rewrite bool) error {
	result, err := svc.Analyze(ctx, analyses.AnalyzeRequest{ResumeText: resumeText, JobDescription: jobDescription})
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	input := llm.RewriteInput{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		Issues:         result.IssueDescriptions(),
		PromptVersion:  version,
	}

	if rewrite {
		out, err := client.Rewrite(ctx, input)
		if err != nil {
			return fmt.Errorf("llm rewrite: %w", err)
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}

	prompt, err := llm.BuildRewritePrompt(input)
	if err != nil {
		return fmt.Errorf("build prompt: %w", err)
	}
	fmt.Fprintf(w, "# match rate: %d, issues: %d\n", result.MatchRate, len(input.Issues))
	_, err = fmt.Fprintln(w, prompt)
	return err
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
