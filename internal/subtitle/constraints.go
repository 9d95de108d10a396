package subtitle

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ConstraintEnforcer finalizes deduplicated segments for display: optional
// grammar styling, line wrapping, and resolution of reading-rate or duration
// violations by splitting or clamping
type ConstraintEnforcer struct {
	grammarStyle    bool
	maxCharsPerLine int
	minDuration     float64
	maxDuration     float64
	logger          *zap.Logger
}

// NewConstraintEnforcer creates a ConstraintEnforcer from pipeline options
func NewConstraintEnforcer(opts Options) *ConstraintEnforcer {
	return NewConstraintEnforcerWithLogger(opts, nil)
}

// NewConstraintEnforcerWithLogger creates a ConstraintEnforcer with the given logger
func NewConstraintEnforcerWithLogger(opts Options, logger *zap.Logger) *ConstraintEnforcer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConstraintEnforcer{
		grammarStyle:    opts.GrammarStyle,
		maxCharsPerLine: opts.MaxCharsPerLine,
		minDuration:     opts.MinDuration,
		maxDuration:     opts.MaxDuration,
		logger:          logger,
	}
}

// Enforce processes segments in order, threading a sentence-end flag across
// segments for capitalization decisions. A segment is either re-split (fast
// and long enough) or wrapped and duration-clamped - never both; split
// halves are emitted flat and are not re-examined.
func (ce *ConstraintEnforcer) Enforce(segments []Segment) []Segment {
	final := make([]Segment, 0, len(segments))
	sentenceEnd := true

	for _, seg := range segments {
		var text string
		if ce.grammarStyle {
			text = applyGrammarStyle(seg.Text, sentenceEnd)
		} else {
			text = strings.TrimSpace(seg.Text)
		}

		// Nothing to display; the sentence-end flag is left untouched
		if text == "" {
			continue
		}

		if ce.grammarStyle {
			sentenceEnd = endsSentence(text)
		}

		dur := seg.End - seg.Start
		words := strings.Fields(text)

		if charsPerSecond(text, dur) > maxCharsPerSecond &&
			dur >= splitMinDurationSeconds &&
			len(words) >= splitMinWords {
			halves := splitSegment(seg, words)
			ce.logger.Debug("split fast segment",
				zap.String("text", text),
				zap.Float64("duration", dur),
				zap.Int("halves", len(halves)))
			final = append(final, halves...)
			continue
		}

		end := seg.End
		if dur < ce.minDuration {
			end = seg.Start + ce.minDuration
		} else if dur > ce.maxDuration {
			end = seg.Start + ce.maxDuration
		}

		final = append(final, Segment{
			Start: seg.Start,
			End:   end,
			Text:  wrapLines(words, ce.maxCharsPerLine),
		})
	}

	return final
}

// splitSegment cuts a segment at its temporal midpoint and word-count
// midpoint. Empty halves are dropped.
func splitSegment(seg Segment, words []string) []Segment {
	mid := seg.Start + (seg.End-seg.Start)/2
	half := len(words) / 2

	first := strings.TrimSpace(strings.Join(words[:half], " "))
	second := strings.TrimSpace(strings.Join(words[half:], " "))

	halves := make([]Segment, 0, 2)
	if first != "" {
		halves = append(halves, Segment{Start: seg.Start, End: mid, Text: first})
	}
	if second != "" {
		halves = append(halves, Segment{Start: mid, End: seg.End, Text: second})
	}
	return halves
}

// wrapLines greedily packs words into a first display line of at most
// maxCharsPerLine characters; once a word overflows, it and every remaining
// word go to the second line. A word longer than the limit that would start
// a line is placed alone on it. At most two lines are produced.
func wrapLines(words []string, maxCharsPerLine int) string {
	var line1, line2 []string
	line1Len := 0

	for _, word := range words {
		if len(line2) > 0 {
			line2 = append(line2, word)
			continue
		}

		wordLen := utf8.RuneCountInString(word)
		if len(line1) == 0 {
			line1 = append(line1, word)
			line1Len = wordLen
			continue
		}

		if line1Len+1+wordLen <= maxCharsPerLine {
			line1 = append(line1, word)
			line1Len += 1 + wordLen
		} else {
			line2 = append(line2, word)
		}
	}

	if len(line2) == 0 {
		return strings.Join(line1, " ")
	}
	return strings.Join(line1, " ") + "\n" + strings.Join(line2, " ")
}
