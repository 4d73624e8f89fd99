package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"resume-matcher/internal/bootstrap"
	"resume-matcher/internal/shared/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "matchctl",
		Short:         "Resume to job description keyword matching",
		Long:          "matchctl analyzes resumes against job descriptions with the same engine the API serves, and manages the skill taxonomy.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newAnalyzeCmd(),
		newExtractCmd(),
		newTokensCmd(),
		newRankCmd(),
		newEnqueueCmd(),
		newTaxonomyCmd(),
	)
	return root
}

// loadApp builds the application from environment configuration so the CLI
// resolves the same taxonomy as the server.
func loadApp(ctx context.Context) (*bootstrap.App, error) {
	return bootstrap.Build(ctx, config.Load())
}

func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func mustMarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}
