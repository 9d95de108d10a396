package subtitle

import "fmt"

// NormalizationError reports a failure while normalizing a segment sequence.
// A structurally invalid segment fails the whole call: partial silent
// corruption of a subtitle stream is worse than an explicit failure.
type NormalizationError struct {
	// Index is the position of the offending input segment, or -1 when the
	// failure is not tied to a single segment.
	Index int
	Err   error
}

// Error implements the error interface
func (e *NormalizationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("normalization failed at segment %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("normalization failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *NormalizationError) Unwrap() error {
	return e.Err
}
