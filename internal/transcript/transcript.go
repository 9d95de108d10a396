package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"subsgenie/internal/subtitle"
)

// Transcript is the envelope an upstream transcription provider emits:
// detected language and media duration alongside the raw segment list.
// Only the segments feed the pipeline; the metadata is informational.
type Transcript struct {
	Language string             `json:"language,omitempty"`
	Duration float64            `json:"duration,omitempty"`
	Segments []subtitle.Segment `json:"segments"`
}

// Parse reads a transcript from JSON. Both the full envelope form
// {"language": ..., "segments": [...]} and a bare segment array
// [{"start": ..., "end": ..., "text": ...}, ...] are accepted.
func Parse(r io.Reader) (*Transcript, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes parses a transcript from raw JSON bytes
func ParseBytes(data []byte) (*Transcript, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("transcript input is empty")
	}

	if trimmed[0] == '[' {
		var segments []subtitle.Segment
		if err := json.Unmarshal(trimmed, &segments); err != nil {
			return nil, fmt.Errorf("failed to parse segment array: %w", err)
		}
		return &Transcript{Segments: segments}, nil
	}

	var t Transcript
	if err := json.Unmarshal(trimmed, &t); err != nil {
		return nil, fmt.Errorf("failed to parse transcript envelope: %w", err)
	}
	return &t, nil
}
