package main

import (
	"github.com/spf13/cobra"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/matching/textnorm"
)

func newAnalyzeCmd() *cobra.Command {
	var resumePath, jobPath string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a resume against a job description",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resume, err := readTextFile(resumePath)
			if err != nil {
				return err
			}
			job, err := readTextFile(jobPath)
			if err != nil {
				return err
			}
			app, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			result, err := app.AnalysesService.Analyze(cmd.Context(), analyses.AnalyzeRequest{
				ResumeText:     resume,
				JobDescription: job,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVarP(&resumePath, "resume", "r", "", "Path to the resume text file (required)")
	cmd.Flags().StringVarP(&jobPath, "job", "j", "", "Path to the job description text file (required)")
	mustMarkRequired(cmd, "resume", "job")
	return cmd
}

func newExtractCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Print the skills extracted from a text file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readTextFile(path)
			if err != nil {
				return err
			}
			app, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), app.Engine.Extract(text))
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "Path to the text file (required)")
	mustMarkRequired(cmd, "file")
	return cmd
}

func newTokensCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the normalized keyword tokens of a text file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readTextFile(path)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), textnorm.Tokens(text))
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "Path to the text file (required)")
	mustMarkRequired(cmd, "file")
	return cmd
}
