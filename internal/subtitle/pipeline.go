package subtitle

import (
	"fmt"

	"go.uber.org/zap"
)

// Default display constraints applied when the caller does not override them
const (
	DefaultMaxCharsPerLine = 42
	DefaultMinDuration     = 1.0
	DefaultMaxDuration     = 6.0
)

// Options holds the caller-facing configuration for one pipeline run.
// Options are immutable for the duration of a run.
type Options struct {
	// GrammarStyle enables light grammar normalization (whitespace
	// tightening, pronoun and sentence-initial capitalization)
	GrammarStyle bool

	// MaxCharsPerLine is the display line length limit
	MaxCharsPerLine int

	// MinDuration and MaxDuration bound how long a cue stays on screen,
	// in seconds
	MinDuration float64
	MaxDuration float64
}

// DefaultOptions returns the standard display constraints
func DefaultOptions() Options {
	return Options{
		GrammarStyle:    false,
		MaxCharsPerLine: DefaultMaxCharsPerLine,
		MinDuration:     DefaultMinDuration,
		MaxDuration:     DefaultMaxDuration,
	}
}

// Validate checks that the options satisfy the pipeline preconditions
func (o Options) Validate() error {
	if o.MaxCharsPerLine <= 0 {
		return fmt.Errorf("max chars per line must be positive, got %d", o.MaxCharsPerLine)
	}
	if o.MinDuration <= 0 {
		return fmt.Errorf("min duration must be positive, got %v", o.MinDuration)
	}
	if o.MinDuration > o.MaxDuration {
		return fmt.Errorf("min duration %v exceeds max duration %v", o.MinDuration, o.MaxDuration)
	}
	return nil
}

// Pipeline normalizes raw, time-ordered transcription segments into clean,
// display-ready subtitle cues. It is a pure transform: stateless between
// calls, deterministic, and free of I/O.
type Pipeline struct {
	opts      Options
	logger    *zap.Logger
	merger    *SentenceMerger
	collapser *DuplicateCollapser
	enforcer  *ConstraintEnforcer
}

// NewPipeline creates a Pipeline with the given options
func NewPipeline(opts Options) (*Pipeline, error) {
	return NewPipelineWithLogger(opts, nil)
}

// NewPipelineWithLogger creates a Pipeline with the given options and logger
func NewPipelineWithLogger(opts Options, logger *zap.Logger) (*Pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline options: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		opts:      opts,
		logger:    logger,
		merger:    NewSentenceMergerWithLogger(opts.MaxDuration, logger),
		collapser: NewDuplicateCollapserWithLogger(logger),
		enforcer:  NewConstraintEnforcerWithLogger(opts, logger),
	}, nil
}

// Normalize runs the three processing stages in order: sentence merging,
// duplicate collapsing, and constraint enforcement. The input is expected to
// be ordered by non-decreasing start time; the pipeline never reorders.
// Each stage consumes the previous stage's output and produces a new list.
func (p *Pipeline) Normalize(segments []Segment) ([]Segment, error) {
	for i := range segments {
		if err := segments[i].Validate(); err != nil {
			return nil, &NormalizationError{Index: i, Err: err}
		}
	}

	merged := p.merger.Merge(segments)
	deduped := p.collapser.Collapse(merged)
	final := p.enforcer.Enforce(deduped)

	p.logger.Debug("normalized segments",
		zap.Int("input", len(segments)),
		zap.Int("after_merge", len(merged)),
		zap.Int("after_dedupe", len(deduped)),
		zap.Int("output", len(final)))

	return final, nil
}
