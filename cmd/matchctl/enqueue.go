package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"resume-matcher/internal/queue"
	"resume-matcher/internal/shared/util"
)

func newEnqueueCmd() *cobra.Command {
	var resumeKey, jobKey, resultKey, jobID string
	cmd := &cobra.Command{
		Use:   "enqueue",
		Short: "Queue an analysis of objects already in the object store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			if app.Queue == nil {
				return errors.New("ANALYSIS_QUEUE_URL is not configured")
			}
			msg, err := buildJobMessage(jobID, resumeKey, jobKey, resultKey, time.Now())
			if err != nil {
				return err
			}
			if err := app.Queue.Send(cmd.Context(), msg); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), msg.JobID)
			return err
		},
	}
	cmd.Flags().StringVar(&resumeKey, "resume-key", "", "Object key of the resume text (required)")
	cmd.Flags().StringVar(&jobKey, "job-key", "", "Object key of the job description text (required)")
	cmd.Flags().StringVar(&resultKey, "result-key", "", "Object key for the result JSON (defaults to results/<job id>.json)")
	cmd.Flags().StringVar(&jobID, "id", "", "Job id (defaults to a new UUID)")
	mustMarkRequired(cmd, "resume-key", "job-key")
	return cmd
}

func buildJobMessage(jobID, resumeKey, jobKey, resultKey string, now time.Time) (queue.Message, error) {
	if jobID == "" {
		jobID = uuid.NewString()
	}
	if resultKey == "" {
		resultKey = "results/" + jobID + ".json"
	}
	keys := []*string{&resumeKey, &jobKey, &resultKey}
	for _, k := range keys {
		cleaned, err := util.CleanKey(*k)
		if err != nil {
			return queue.Message{}, fmt.Errorf("%q: %w", *k, err)
		}
		*k = cleaned
	}
	return queue.Message{
		JobID:             jobID,
		ResumeKey:         resumeKey,
		JobDescriptionKey: jobKey,
		ResultKey:         resultKey,
		EnqueuedAt:        now.UTC().Format(time.RFC3339),
		Version:           queue.MessageVersion,
	}, nil
}
