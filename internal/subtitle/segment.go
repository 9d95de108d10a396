package subtitle

import (
	"fmt"
	"math"
)

// Segment represents a single timestamped span of subtitle text, with times
// expressed in seconds from the start of the source media
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Duration returns the length of the segment in seconds
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// Validate checks if the Segment has structurally valid values.
// Empty text and zero duration are allowed; they are degenerate, not invalid.
func (s *Segment) Validate() error {
	if math.IsNaN(s.Start) || math.IsInf(s.Start, 0) {
		return fmt.Errorf("start must be a finite number, got %v", s.Start)
	}

	if math.IsNaN(s.End) || math.IsInf(s.End, 0) {
		return fmt.Errorf("end must be a finite number, got %v", s.End)
	}

	if s.Start < 0 {
		return fmt.Errorf("start cannot be negative, got %v", s.Start)
	}

	if s.End < s.Start {
		return fmt.Errorf("end %v is before start %v", s.End, s.Start)
	}

	return nil
}
