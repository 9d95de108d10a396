package subtitle

import (
	"math"
	"strings"

	"go.uber.org/zap"
)

// SentenceMerger fuses adjacent segments that are fragments of one spoken
// sentence, the most common boundary artifact in raw transcription output
type SentenceMerger struct {
	maxDuration float64
	logger      *zap.Logger
}

// NewSentenceMerger creates a SentenceMerger that refuses fusions whose
// combined extent would exceed maxDuration seconds
func NewSentenceMerger(maxDuration float64) *SentenceMerger {
	return NewSentenceMergerWithLogger(maxDuration, nil)
}

// NewSentenceMergerWithLogger creates a SentenceMerger with the given logger
func NewSentenceMergerWithLogger(maxDuration float64, logger *zap.Logger) *SentenceMerger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SentenceMerger{
		maxDuration: maxDuration,
		logger:      logger,
	}
}

// Merge walks the time-ordered input keeping one open accumulator segment.
// Each next segment either fuses into the accumulator or closes it; the
// final accumulator is always emitted.
func (sm *SentenceMerger) Merge(segments []Segment) []Segment {
	if len(segments) == 0 {
		return []Segment{}
	}

	merged := make([]Segment, 0, len(segments))
	open := segments[0]

	for _, next := range segments[1:] {
		if fused, ok := sm.tryFuse(open, next); ok {
			open = fused
			continue
		}
		merged = append(merged, open)
		open = next
	}

	return append(merged, open)
}

// tryFuse applies the merge heuristic to the open accumulator and the next
// segment, returning the fused segment when all conditions hold
func (sm *SentenceMerger) tryFuse(open, next Segment) (Segment, bool) {
	openText := strings.TrimSpace(open.Text)
	nextText := strings.TrimSpace(next.Text)

	// A finished sentence never continues into the next segment
	if endsSentence(openText) {
		return Segment{}, false
	}

	// The next segment must read like a continuation: it starts with a
	// small/function word, or the open text is too short to stand alone
	if !startsWithSmallWord(nextText) && wordCount(openText) > shortFragmentWords {
		return Segment{}, false
	}

	gap := math.Max(0, next.Start-open.End)
	if gap >= mergeGapSeconds {
		return Segment{}, false
	}

	fused := Segment{
		Start: open.Start,
		End:   next.End,
		Text:  strings.TrimSpace(openText + " " + nextText),
	}

	// Guard against runaway merges: reject fusions that would be too long
	// on screen or too fast to read
	fusedDur := fused.End - fused.Start
	if fusedDur > sm.maxDuration || charsPerSecond(fused.Text, fusedDur) > maxCharsPerSecond {
		return Segment{}, false
	}

	sm.logger.Debug("fused sentence fragments",
		zap.String("text", fused.Text),
		zap.Float64("start", fused.Start),
		zap.Float64("end", fused.End))

	return fused, true
}
