package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subsgenie/internal/subtitle"
)

func testSegments() []subtitle.Segment {
	return []subtitle.Segment{
		{Start: 0.0, End: 3.0, Text: "the quick fox jumped"},
		{Start: 3.5, End: 5.25, Text: "over the lazy dog"},
	}
}

func TestRenderer_RenderSRT(t *testing.T) {
	// Arrange
	renderer := NewRenderer()

	// Act
	output, err := renderer.Render(testSegments(), FormatSRT)

	// Assert
	require.NoError(t, err)
	expected := "1\n00:00:00,000 --> 00:00:03,000\nthe quick fox jumped\n\n" +
		"2\n00:00:03,500 --> 00:00:05,250\nover the lazy dog\n\n"
	assert.Equal(t, expected, output)
}

func TestRenderer_RenderVTT(t *testing.T) {
	// Arrange
	renderer := NewRenderer()

	// Act
	output, err := renderer.Render(testSegments(), FormatVTT)

	// Assert
	require.NoError(t, err)
	expected := "WEBVTT\n\n" +
		"00:00:00.000 --> 00:00:03.000\nthe quick fox jumped\n\n" +
		"00:00:03.500 --> 00:00:05.250\nover the lazy dog\n\n"
	assert.Equal(t, expected, output)
}

func TestRenderer_RenderTXT(t *testing.T) {
	// Arrange
	renderer := NewRenderer()

	// Act
	output, err := renderer.Render(testSegments(), FormatTXT)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "the quick fox jumped\nover the lazy dog", output)
}

func TestRenderer_RenderEmptySequence(t *testing.T) {
	// Arrange
	renderer := NewRenderer()

	// Act & Assert
	srt, err := renderer.Render(nil, FormatSRT)
	require.NoError(t, err)
	assert.Equal(t, "", srt)

	vtt, err := renderer.Render(nil, FormatVTT)
	require.NoError(t, err)
	assert.Equal(t, "WEBVTT\n\n", vtt)

	txt, err := renderer.Render(nil, FormatTXT)
	require.NoError(t, err)
	assert.Equal(t, "", txt)
}

func TestRenderer_RenderUnknownFormat(t *testing.T) {
	// Act
	_, err := NewRenderer().Render(testSegments(), Format("ass"))

	// Assert
	assert.Error(t, err)
}

func TestRenderer_MultiLineCueTextIsPreserved(t *testing.T) {
	// Arrange: wrapped cue text keeps its internal newline
	segments := []subtitle.Segment{{Start: 0.0, End: 2.0, Text: "first line\nsecond line"}}

	// Act
	output, err := NewRenderer().Render(segments, FormatSRT)

	// Assert
	require.NoError(t, err)
	assert.True(t, strings.Contains(output, "first line\nsecond line\n\n"))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"srt", FormatSRT, false},
		{"vtt", FormatVTT, false},
		{"txt", FormatTXT, false},
		{"ass", "", true},
		{"", "", true},
		{"SRT", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ParseFormat(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, format)
			}
		})
	}
}
