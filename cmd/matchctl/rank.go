package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/matching/scoring"
)

const defaultRankConcurrency = 4

type rankedJob struct {
	File      string         `json:"file"`
	MatchRate int            `json:"matchRate"`
	Result    scoring.Result `json:"result"`
}

func newRankCmd() *cobra.Command {
	var (
		resumePath  string
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "rank --resume FILE JOB_FILE...",
		Short: "Rank job descriptions by how well a resume matches them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resume, err := readTextFile(resumePath)
			if err != nil {
				return err
			}
			app, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			if concurrency <= 0 {
				concurrency = defaultRankConcurrency
			}

			ranked := make([]rankedJob, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(concurrency)
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					job, err := readTextFile(path)
					if err != nil {
						return err
					}
					result, err := app.AnalysesService.Analyze(ctx, analyses.AnalyzeRequest{
						ResumeText:     resume,
						JobDescription: job,
					})
					if err != nil {
						return fmt.Errorf("analyze %s: %w", path, err)
					}
					ranked[i] = rankedJob{File: filepath.Base(path), MatchRate: result.MatchRate, Result: result}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			sortRanked(ranked)
			return writeJSON(cmd.OutOrStdout(), ranked)
		},
	}
	cmd.Flags().StringVarP(&resumePath, "resume", "r", "", "Path to the resume text file (required)")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", defaultRankConcurrency, "Maximum job descriptions analyzed at once")
	mustMarkRequired(cmd, "resume")
	return cmd
}

// sortRanked orders by match rate descending, then file name.
func sortRanked(ranked []rankedJob) {
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].MatchRate != ranked[j].MatchRate {
			return ranked[i].MatchRate > ranked[j].MatchRate
		}
		return ranked[i].File < ranked[j].File
	})
}
