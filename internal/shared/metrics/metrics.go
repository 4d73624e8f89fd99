package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	analysisRequestsTotal atomic.Uint64
	analysisRejectedTotal atomic.Uint64
	analysisFailedTotal   atomic.Uint64
	optimizeRequestsTotal atomic.Uint64
	optimizeFailedTotal   atomic.Uint64
	rateLimitedTotal      atomic.Uint64

	jobsReceivedTotal             atomic.Uint64
	jobsCompletedTotal            atomic.Uint64
	jobsFailedTotal               atomic.Uint64
	jobsDeletedUnrecoverableTotal atomic.Uint64

	analysisDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000})
)

// IncAnalysisRequests counts an analyze call that passed validation.
func IncAnalysisRequests() {
	analysisRequestsTotal.Add(1)
}

// IncAnalysisRejected counts an analyze call rejected as invalid input.
func IncAnalysisRejected() {
	analysisRejectedTotal.Add(1)
}

// IncAnalysisFailed counts an analyze call that failed internally.
func IncAnalysisFailed() {
	analysisFailedTotal.Add(1)
}

// IncOptimizeRequests counts an optimize call that passed validation.
func IncOptimizeRequests() {
	optimizeRequestsTotal.Add(1)
}

// IncOptimizeFailed counts an optimize call whose client failed.
func IncOptimizeFailed() {
	optimizeFailedTotal.Add(1)
}

// IncRateLimited counts a request turned away by the rate limiter.
func IncRateLimited() {
	rateLimitedTotal.Add(1)
}

// IncAnalysisJobsReceived counts a queued analysis job picked up by a worker.
func IncAnalysisJobsReceived() {
	jobsReceivedTotal.Add(1)
}

// IncAnalysisJobsCompleted counts a queued job whose result was written.
func IncAnalysisJobsCompleted() {
	jobsCompletedTotal.Add(1)
}

// IncAnalysisJobsFailed counts a queued job left on the queue for retry.
func IncAnalysisJobsFailed() {
	jobsFailedTotal.Add(1)
}

// IncAnalysisJobsDeletedUnrecoverable counts a malformed job message that was dropped.
func IncAnalysisJobsDeletedUnrecoverable() {
	jobsDeletedUnrecoverableTotal.Add(1)
}

// ObserveAnalysisDurationMs records an analysis duration in milliseconds.
func ObserveAnalysisDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	analysisDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "analysis_requests_total", "Total analyze requests accepted", analysisRequestsTotal.Load())
	writeCounter(&buf, "analysis_rejected_total", "Total analyze requests rejected as invalid", analysisRejectedTotal.Load())
	writeCounter(&buf, "analysis_failed_total", "Total analyze requests that failed", analysisFailedTotal.Load())
	writeCounter(&buf, "optimize_requests_total", "Total optimize requests accepted", optimizeRequestsTotal.Load())
	writeCounter(&buf, "optimize_failed_total", "Total optimize requests that failed", optimizeFailedTotal.Load())
	writeCounter(&buf, "http_rate_limited_total", "Total requests rejected by the rate limiter", rateLimitedTotal.Load())
	writeCounter(&buf, "analysis_jobs_received_total", "Total analysis jobs received", jobsReceivedTotal.Load())
	writeCounter(&buf, "analysis_jobs_completed_total", "Total analysis jobs completed", jobsCompletedTotal.Load())
	writeCounter(&buf, "analysis_jobs_failed_total", "Total analysis jobs failed", jobsFailedTotal.Load())
	writeCounter(&buf, "analysis_jobs_deleted_unrecoverable_total", "Total analysis job messages dropped as unrecoverable", jobsDeletedUnrecoverableTotal.Load())
	writeHistogram(&buf, "analysis_duration_ms", "Analysis duration in milliseconds", analysisDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe records value in the first bucket that holds it; Snapshot
// consumers accumulate.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// SinceMillis returns the milliseconds elapsed since start.
func SinceMillis(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
