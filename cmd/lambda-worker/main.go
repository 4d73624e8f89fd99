package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=amd64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-worker

import (
	"context"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"resume-matcher/internal/bootstrap"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/telemetry"
	"resume-matcher/internal/workerproc"
)

var (
	initOnce sync.Once
	initErr  error
	app      *bootstrap.App
)

func initApp(ctx context.Context) {
	cfg := config.Load()
	built, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		initErr = err
		return
	}
	app = built
}

func handler(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	initOnce.Do(func() { initApp(ctx) })
	if initErr != nil {
		telemetry.Error("bootstrap.failed", map[string]any{"error": initErr})
		failures := make([]events.SQSBatchItemFailure, 0, len(event.Records))
		for _, record := range event.Records {
			failures = append(failures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
		}
		return events.SQSEventResponse{BatchItemFailures: failures}, initErr
	}
	return processRecords(ctx, app.Jobs, event.Records), nil
}

// processRecords reports retryable failures back to SQS. Messages that can
// never succeed are dropped so they do not loop.
func processRecords(ctx context.Context, jobs *workerproc.Processor, records []events.SQSMessage) events.SQSEventResponse {
	failures := make([]events.SQSBatchItemFailure, 0)
	for _, record := range records {
		metrics.IncAnalysisJobsReceived()
		err := workerproc.HandleMessage(ctx, jobs, record.Body)
		switch {
		case err == nil:
			metrics.IncAnalysisJobsCompleted()
		case workerproc.Unrecoverable(err):
			telemetry.Error("worker.job.invalid", map[string]any{"sqs_message_id": record.MessageId, "error": err})
			metrics.IncAnalysisJobsDeletedUnrecoverable()
		default:
			telemetry.Error("worker.job.failed", map[string]any{"sqs_message_id": record.MessageId, "error": err})
			metrics.IncAnalysisJobsFailed()
			failures = append(failures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
		}
	}
	return events.SQSEventResponse{BatchItemFailures: failures}
}

func main() {
	lambda.Start(handler)
}
