package subtitle

import (
	"math"

	"go.uber.org/zap"
)

// DuplicateCollapser removes near-duplicate re-utterances of the same phrase
// within a short time window, a known hallucination artifact of speech
// decoders that repeat a phrase at nearly the same timestamp
type DuplicateCollapser struct {
	logger *zap.Logger
}

// NewDuplicateCollapser creates a DuplicateCollapser
func NewDuplicateCollapser() *DuplicateCollapser {
	return NewDuplicateCollapserWithLogger(nil)
}

// NewDuplicateCollapserWithLogger creates a DuplicateCollapser with the given logger
func NewDuplicateCollapserWithLogger(logger *zap.Logger) *DuplicateCollapser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DuplicateCollapser{logger: logger}
}

// Collapse groups contiguous runs of mutually near-duplicate segments and
// reduces each run to a single representative
func (dc *DuplicateCollapser) Collapse(segments []Segment) []Segment {
	out := make([]Segment, 0, len(segments))

	for i := 0; i < len(segments); {
		run := dc.collectRun(segments, i)
		out = append(out, reduceRun(run))
		i += len(run)
	}

	return out
}

// collectRun gathers the contiguous run of near-duplicates anchored at
// segments[start]. Each candidate is compared against the anchor's
// normalized text; the adjacency window tracks the run's growing extent.
func (dc *DuplicateCollapser) collectRun(segments []Segment, start int) []Segment {
	run := segments[start : start+1]
	anchorNorm := normalizeForComparison(segments[start].Text)
	runEnd := segments[start].End

	for j := start + 1; j < len(segments); j++ {
		next := segments[j]
		if next.Start-runEnd > dedupeWindowSeconds {
			break
		}

		similarity := similarityRatio(anchorNorm, normalizeForComparison(next.Text))
		if similarity < duplicateSimilarity {
			break
		}

		dc.logger.Debug("absorbing near-duplicate segment",
			zap.String("anchor", segments[start].Text),
			zap.String("duplicate", next.Text),
			zap.Float64("similarity", similarity))

		run = segments[start : j+1]
		runEnd = math.Max(runEnd, next.End)
	}

	return run
}

// reduceRun collapses a run of near-duplicates to one segment keeping the
// longest normalized text (ties favor the earliest) and the union time span
func reduceRun(run []Segment) Segment {
	reduced := run[0]
	bestLen := len(normalizeForComparison(reduced.Text))

	for _, seg := range run[1:] {
		if n := len(normalizeForComparison(seg.Text)); n > bestLen {
			reduced.Text = seg.Text
			bestLen = n
		}
		reduced.End = math.Max(reduced.End, seg.End)
	}

	return reduced
}
