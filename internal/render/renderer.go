package render

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"subsgenie/internal/subtitle"
)

// Renderer serializes a finalized segment sequence into one of the
// supported textual encodings
type Renderer struct {
	logger *zap.Logger
}

// NewRenderer creates a Renderer
func NewRenderer() *Renderer {
	return NewRendererWithLogger(nil)
}

// NewRendererWithLogger creates a Renderer with the given logger
func NewRendererWithLogger(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{logger: logger}
}

// Render serializes segments into the selected format
func (r *Renderer) Render(segments []subtitle.Segment, format Format) (string, error) {
	r.logger.Debug("rendering segments",
		zap.Int("count", len(segments)),
		zap.String("format", string(format)))

	switch format {
	case FormatSRT:
		return renderSRT(segments), nil
	case FormatVTT:
		return renderVTT(segments), nil
	case FormatTXT:
		return renderTXT(segments), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// renderSRT emits 1-based indexed cues with comma-millisecond timestamps
func renderSRT(segments []subtitle.Segment) string {
	var sb strings.Builder
	for i, seg := range segments {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n\n",
			i+1,
			FormatTimestamp(seg.Start),
			FormatTimestamp(seg.End),
			strings.TrimSpace(seg.Text))
	}
	return sb.String()
}

// renderVTT emits the WEBVTT header followed by dot-millisecond cues
func renderVTT(segments []subtitle.Segment) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for _, seg := range segments {
		fmt.Fprintf(&sb, "%s --> %s\n%s\n\n",
			FormatTimestampVTT(seg.Start),
			FormatTimestampVTT(seg.End),
			strings.TrimSpace(seg.Text))
	}
	return sb.String()
}

// renderTXT joins the trimmed segment texts with newlines
func renderTXT(segments []subtitle.Segment) string {
	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		texts = append(texts, strings.TrimSpace(seg.Text))
	}
	return strings.Join(texts, "\n")
}
