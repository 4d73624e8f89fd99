// Package workerproc turns queued analysis jobs into stored results. It is
// shared by the long-polling worker and the SQS-triggered Lambda.
package workerproc

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/matching/scoring"
	"resume-matcher/internal/queue"
	"resume-matcher/internal/shared/storage/object"
	"resume-matcher/internal/shared/util"
)

// maxTextBytes is the largest resume or job description a job may reference.
const maxTextBytes = 1 << 20

// MessageMeta captures details useful for logging and diagnostics.
type MessageMeta struct {
	BodyLen int
	BodySHA string
}

// ComputeMeta returns the body length and SHA-256 hash.
func ComputeMeta(body string) MessageMeta {
	if body == "" {
		return MessageMeta{BodyLen: 0, BodySHA: ""}
	}
	sum := sha256.Sum256([]byte(body))
	return MessageMeta{BodyLen: len(body), BodySHA: hex.EncodeToString(sum[:])}
}

// ErrEmptyBody indicates an empty queue payload.
type ErrEmptyBody struct {
	Meta MessageMeta
}

func (e ErrEmptyBody) Error() string { return "empty message body" }

// ErrDecode indicates a JSON decode failure.
type ErrDecode struct {
	Meta MessageMeta
	Err  error
}

func (e ErrDecode) Error() string {
	if e.Err == nil {
		return "decode message"
	}
	return "decode message: " + e.Err.Error()
}

// ErrInvalidMessage indicates a decoded message that can never be processed.
type ErrInvalidMessage struct {
	Meta      MessageMeta
	JobID     string
	RequestID string
	Reason    string
}

func (e ErrInvalidMessage) Error() string { return "invalid message: " + e.Reason }

// ErrProcess indicates processing failed after successful parsing.
type ErrProcess struct {
	JobID     string
	RequestID string
	Err       error
}

func (e ErrProcess) Error() string {
	if e.Err == nil {
		return "process job"
	}
	return "process job: " + e.Err.Error()
}

func (e ErrProcess) Unwrap() error { return e.Err }

// Unrecoverable reports whether err means the message should be dropped
// rather than retried.
func Unrecoverable(err error) bool {
	var (
		empty   ErrEmptyBody
		decode  ErrDecode
		invalid ErrInvalidMessage
	)
	return errors.As(err, &empty) || errors.As(err, &decode) || errors.As(err, &invalid)
}

// ParseMessage validates and decodes the queue payload. Object keys are
// normalized in the returned message.
func ParseMessage(body string) (queue.Message, MessageMeta, error) {
	meta := ComputeMeta(body)
	if strings.TrimSpace(body) == "" {
		return queue.Message{}, meta, ErrEmptyBody{Meta: meta}
	}

	msg, err := queue.DecodeMessage([]byte(body))
	if err != nil {
		return queue.Message{}, meta, ErrDecode{Meta: meta, Err: err}
	}
	invalid := func(reason string) error {
		return ErrInvalidMessage{Meta: meta, JobID: msg.JobID, RequestID: msg.RequestID, Reason: reason}
	}
	if strings.TrimSpace(msg.JobID) == "" {
		return msg, meta, invalid("missing job id")
	}
	if msg.Version > queue.MessageVersion {
		return msg, meta, invalid(fmt.Sprintf("unsupported version %d", msg.Version))
	}
	for _, k := range []struct {
		name string
		val  *string
	}{
		{"resumeKey", &msg.ResumeKey},
		{"jobDescriptionKey", &msg.JobDescriptionKey},
		{"resultKey", &msg.ResultKey},
	} {
		cleaned, err := util.CleanKey(*k.val)
		if err != nil {
			return msg, meta, invalid(k.name + ": " + err.Error())
		}
		*k.val = cleaned
	}
	return msg, meta, nil
}

// Analyzer is the analysis step of a job.
type Analyzer interface {
	Analyze(ctx context.Context, req analyses.AnalyzeRequest) (scoring.Result, error)
}

// Processor reads a job's texts from the object store, analyzes them and
// writes the result JSON back under the job's result key.
type Processor struct {
	Store    object.ObjectStore
	Analyzer Analyzer
}

// NewProcessor constructs a Processor.
func NewProcessor(store object.ObjectStore, analyzer Analyzer) *Processor {
	return &Processor{Store: store, Analyzer: analyzer}
}

// JobResult is the object written for a completed job.
type JobResult struct {
	JobID     string         `json:"jobId"`
	RequestID string         `json:"requestId,omitempty"`
	Result    scoring.Result `json:"result"`
}

// Process runs one parsed job.
func (p *Processor) Process(ctx context.Context, msg queue.Message) error {
	if p == nil || p.Store == nil || p.Analyzer == nil {
		return errors.New("job processor not configured")
	}

	resume, err := p.readText(ctx, msg, msg.ResumeKey)
	if err != nil {
		return err
	}
	job, err := p.readText(ctx, msg, msg.JobDescriptionKey)
	if err != nil {
		return err
	}

	ctx = analyses.WithRequestID(ctx, msg.RequestID)
	result, err := p.Analyzer.Analyze(ctx, analyses.AnalyzeRequest{
		ResumeText:     resume,
		JobDescription: job,
	})
	if err != nil {
		return err
	}

	payload, err := json.Marshal(JobResult{JobID: msg.JobID, RequestID: msg.RequestID, Result: result})
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if _, err := p.Store.SaveWithKey(ctx, msg.ResultKey, "application/json", bytes.NewReader(payload)); err != nil {
		return fmt.Errorf("save result %s: %w", msg.ResultKey, err)
	}
	return nil
}

// readText loads one input object. Objects over maxTextBytes are rejected,
// never truncated.
func (p *Processor) readText(ctx context.Context, msg queue.Message, key string) (string, error) {
	rc, err := p.Store.Open(ctx, key)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", key, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxTextBytes+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	if len(data) > maxTextBytes {
		return "", ErrInvalidMessage{
			JobID:     msg.JobID,
			RequestID: msg.RequestID,
			Reason:    fmt.Sprintf("%s exceeds %d bytes", key, maxTextBytes),
		}
	}
	return string(data), nil
}

type parsedMessageKey struct{}

// WithParsedMessage stores a decoded message in the context for reuse.
func WithParsedMessage(ctx context.Context, msg queue.Message) context.Context {
	return context.WithValue(ctx, parsedMessageKey{}, msg)
}

func parsedMessageFromContext(ctx context.Context) (queue.Message, bool) {
	if ctx == nil {
		return queue.Message{}, false
	}
	msg, ok := ctx.Value(parsedMessageKey{}).(queue.Message)
	return msg, ok
}

// HandleMessage parses, validates, and processes a message payload.
// Invalid input that will never succeed is reported as ErrInvalidMessage;
// any later failure as ErrProcess.
func HandleMessage(ctx context.Context, p *Processor, body string) error {
	if p == nil {
		return errors.New("job processor not configured")
	}

	msg, ok := parsedMessageFromContext(ctx)
	if !ok {
		var err error
		msg, _, err = ParseMessage(body)
		if err != nil {
			return err
		}
	}

	if err := p.Process(ctx, msg); err != nil {
		var invalid ErrInvalidMessage
		if errors.As(err, &invalid) {
			invalid.Meta = ComputeMeta(body)
			return invalid
		}
		if errors.Is(err, analyses.ErrInvalidInput) {
			return ErrInvalidMessage{Meta: ComputeMeta(body), JobID: msg.JobID, RequestID: msg.RequestID, Reason: err.Error()}
		}
		return ErrProcess{JobID: msg.JobID, RequestID: msg.RequestID, Err: err}
	}
	return nil
}
