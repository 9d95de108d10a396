package render

import "fmt"

// Format selects the output encoding for a rendered subtitle sequence
type Format string

const (
	// FormatSRT is the indexed SubRip encoding with comma-millisecond timestamps
	FormatSRT Format = "srt"
	// FormatVTT is the WebVTT encoding with dot-millisecond timestamps
	FormatVTT Format = "vtt"
	// FormatTXT is a plain transcript with no timestamps
	FormatTXT Format = "txt"
)

// ParseFormat converts a format name into a Format, rejecting unknown values
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatSRT, FormatVTT, FormatTXT:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected srt, vtt, or txt)", name)
	}
}
