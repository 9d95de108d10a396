package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfiguration_FlagOverrides(t *testing.T) {
	// Arrange
	t.Setenv("CONFIG_PATH", "")
	opts := cliOptions{format: "vtt", grammar: true}

	// Act
	cfg, err := loadConfiguration(opts)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "vtt", cfg.GetOutputFormat())
	assert.True(t, cfg.GetGrammarStyle())
}

func TestLoadConfiguration_RejectsUnknownFormat(t *testing.T) {
	// Arrange
	t.Setenv("CONFIG_PATH", "")

	// Act
	cfg, err := loadConfiguration(cliOptions{format: "ass"})

	// Assert
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfiguration_NoOverridesKeepsDefaults(t *testing.T) {
	// Arrange
	t.Setenv("CONFIG_PATH", "")

	// Act
	cfg, err := loadConfiguration(cliOptions{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "srt", cfg.GetOutputFormat())
	assert.False(t, cfg.GetGrammarStyle())
}

func TestOpenInput_MissingFile(t *testing.T) {
	// Act
	_, _, err := openInput("/nonexistent/transcript.json")

	// Assert
	assert.Error(t, err)
}

func TestOpenInput_DefaultsToStdin(t *testing.T) {
	// Act
	in, closeIn, err := openInput("")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, os.Stdin, in)
	assert.NoError(t, closeIn())
}

func TestOpenOutput_CreatesFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "out.srt")

	// Act
	out, closeOut, err := openOutput(path)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.NoError(t, closeOut())
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestRunApplication_EndToEnd(t *testing.T) {
	// Arrange
	t.Setenv("CONFIG_PATH", "")
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "transcript.json")
	outputPath := filepath.Join(dir, "out.srt")
	transcript := []byte(`[{"start": 0.0, "end": 2.0, "text": "Hello there."}]`)
	require.NoError(t, os.WriteFile(inputPath, transcript, 0644))

	// Act
	err := runApplication(cliOptions{input: inputPath, output: outputPath})

	// Assert
	require.NoError(t, err)
	output, readErr := os.ReadFile(outputPath)
	require.NoError(t, readErr)
	assert.Equal(t, "1\n00:00:00,000 --> 00:00:02,000\nHello there.\n\n", string(output))
}
