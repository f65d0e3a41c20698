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
	ingestStartedTotal       atomic.Uint64
	ingestCompletedTotal     atomic.Uint64
	ingestFailedTotal        atomic.Uint64
	jobsIngestedTotal        atomic.Uint64
	applicationsCreatedTotal atomic.Uint64

	queueMessagesReceivedTotal atomic.Uint64
	queueMessagesDroppedTotal  atomic.Uint64

	ingestDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncIngestStarted increments the ingest run started counter.
func IncIngestStarted() {
	ingestStartedTotal.Add(1)
}

// IncIngestCompleted increments the ingest run completed counter.
func IncIngestCompleted() {
	ingestCompletedTotal.Add(1)
}

// IncIngestFailed increments the ingest run failed counter.
func IncIngestFailed() {
	ingestFailedTotal.Add(1)
}

// AddJobsIngested adds to the ingested job counter.
func AddJobsIngested(n int) {
	if n > 0 {
		jobsIngestedTotal.Add(uint64(n))
	}
}

// IncApplicationCreated increments the application created counter.
func IncApplicationCreated() {
	applicationsCreatedTotal.Add(1)
}

// IncQueueMessageReceived increments the received queue message counter.
func IncQueueMessageReceived() {
	queueMessagesReceivedTotal.Add(1)
}

// IncQueueMessageDropped counts messages deleted without processing.
func IncQueueMessageDropped() {
	queueMessagesDroppedTotal.Add(1)
}

// ObserveIngestDurationMs records an ingest run duration in milliseconds.
func ObserveIngestDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	ingestDuration.Observe(value)
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
	writeCounter(&buf, "ingest_runs_started_total", "Total ingest runs started", ingestStartedTotal.Load())
	writeCounter(&buf, "ingest_runs_completed_total", "Total ingest runs completed", ingestCompletedTotal.Load())
	writeCounter(&buf, "ingest_runs_failed_total", "Total ingest runs failed", ingestFailedTotal.Load())
	writeCounter(&buf, "jobs_ingested_total", "Total jobs stored by ingest runs", jobsIngestedTotal.Load())
	writeCounter(&buf, "applications_created_total", "Total applications created", applicationsCreatedTotal.Load())
	writeCounter(&buf, "queue_messages_received_total", "Total queue messages received by the worker", queueMessagesReceivedTotal.Load())
	writeCounter(&buf, "queue_messages_dropped_total", "Total queue messages deleted without processing", queueMessagesDroppedTotal.Load())
	writeHistogram(&buf, "ingest_duration_ms", "Ingest run duration in milliseconds", ingestDuration.Snapshot())
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
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
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

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
