package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	assessmentSubmittedTotal atomic.Uint64
	assessmentFailedTotal    atomic.Uint64

	levelBeginnerTotal     atomic.Uint64
	levelIntermediateTotal atomic.Uint64
	levelExpertTotal       atomic.Uint64

	assessmentScore = newHistogram([]float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100})
)

// IncAssessmentSubmitted increments the submitted counter.
func IncAssessmentSubmitted() {
	assessmentSubmittedTotal.Add(1)
}

// IncAssessmentFailed increments the failed counter.
func IncAssessmentFailed() {
	assessmentFailedTotal.Add(1)
}

// IncLevel increments the counter for the assigned proficiency level.
func IncLevel(level string) {
	switch level {
	case "expert":
		levelExpertTotal.Add(1)
	case "intermediate":
		levelIntermediateTotal.Add(1)
	default:
		levelBeginnerTotal.Add(1)
	}
}

// ObserveScorePercent records an assessment percentage.
func ObserveScorePercent(value float64) {
	if value < 0 {
		value = 0
	}
	assessmentScore.Observe(value)
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
	writeCounter(&buf, "assessment_submitted_total", "Total assessments submitted", assessmentSubmittedTotal.Load())
	writeCounter(&buf, "assessment_failed_total", "Total assessment submissions that failed", assessmentFailedTotal.Load())
	writeCounter(&buf, "assessment_level_beginner_total", "Total assessments scored beginner", levelBeginnerTotal.Load())
	writeCounter(&buf, "assessment_level_intermediate_total", "Total assessments scored intermediate", levelIntermediateTotal.Load())
	writeCounter(&buf, "assessment_level_expert_total", "Total assessments scored expert", levelExpertTotal.Load())
	writeHistogram(&buf, "assessment_score_percent", "Assessment score percentage", assessmentScore.Snapshot())
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
