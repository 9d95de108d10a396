package render

import (
	"fmt"
	"math"
)

// FormatTimestamp converts non-negative seconds to the SRT timestamp form
// HH:MM:SS,mmm
func FormatTimestamp(seconds float64) string {
	h, m, s, ms := splitTimestamp(seconds)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// FormatTimestampVTT converts non-negative seconds to the WebVTT timestamp
// form HH:MM:SS.mmm
func FormatTimestampVTT(seconds float64) string {
	h, m, s, ms := splitTimestamp(seconds)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// splitTimestamp decomposes seconds into hour, minute, second, and
// millisecond components, truncating toward zero
func splitTimestamp(seconds float64) (hours, minutes, secs, millis int) {
	hours = int(seconds / 3600)
	minutes = int(math.Mod(seconds, 3600) / 60)
	secs = int(math.Mod(seconds, 60))
	millis = int(math.Mod(seconds, 1) * 1000)
	return hours, minutes, secs, millis
}
