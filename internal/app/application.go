package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"subsgenie/internal/config"
	"subsgenie/internal/logger"
	"subsgenie/internal/render"
	"subsgenie/internal/subtitle"
	"subsgenie/internal/transcript"
)

// Application wires configuration, the normalization pipeline, and the
// renderer into one transcript-to-subtitle conversion
type Application struct {
	config    *config.Configuration
	zapLogger *zap.Logger
	pipeline  *subtitle.Pipeline
	renderer  *render.Renderer
}

// NewApplication creates an application instance with all components
// initialized. Configuration is loaded from the file named by CONFIG_PATH
// when set, otherwise from environment variables.
func NewApplication() (*Application, error) {
	var cfg *config.Configuration
	var err error

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		cfg, err = config.NewConfigurationFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.NewConfigurationFromEnv()
		if err != nil {
			return nil, fmt.Errorf("failed to load config from environment: %w", err)
		}
	}

	return NewApplicationWithConfig(cfg, logger.NewLogger())
}

// NewApplicationWithConfig creates an application instance from an already
// constructed configuration and logger
func NewApplicationWithConfig(cfg *config.Configuration, zapLogger *zap.Logger) (*Application, error) {
	if zapLogger == nil {
		zapLogger = zap.NewNop()
	}

	pipeline, err := subtitle.NewPipelineWithLogger(cfg.PipelineOptions(), zapLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	return &Application{
		config:    cfg,
		zapLogger: zapLogger,
		pipeline:  pipeline,
		renderer:  render.NewRendererWithLogger(zapLogger),
	}, nil
}

// Run reads a transcript from in, normalizes its segments, and writes the
// rendered subtitles to out. The context is only consulted before work
// begins; the pipeline itself has no blocking operations.
func (app *Application) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	select {
	case <-ctx.Done():
		app.zapLogger.Info("context cancelled before processing, shutting down immediately")
		return ctx.Err()
	default:
	}

	format, err := render.ParseFormat(app.config.GetOutputFormat())
	if err != nil {
		return fmt.Errorf("invalid output format configuration: %w", err)
	}

	t, err := transcript.Parse(in)
	if err != nil {
		return fmt.Errorf("failed to parse transcript: %w", err)
	}

	app.zapLogger.Info("normalizing transcript",
		zap.Int("segments", len(t.Segments)),
		zap.String("language", t.Language),
		zap.String("format", string(format)))

	normalized, err := app.pipeline.Normalize(t.Segments)
	if err != nil {
		return fmt.Errorf("failed to normalize segments: %w", err)
	}

	output, err := app.renderer.Render(normalized, format)
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	if _, err := io.WriteString(out, output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	app.zapLogger.Info("transcript converted",
		zap.Int("segments_in", len(t.Segments)),
		zap.Int("cues_out", len(normalized)))

	return nil
}
