package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"subsgenie/internal/app"
	"subsgenie/internal/config"
	"subsgenie/internal/logger"
	"subsgenie/internal/render"
)

// main is the application entry point
func main() {
	var (
		helpFlag    = flag.Bool("help", false, "Show help message")
		versionFlag = flag.Bool("version", false, "Show version information")
		debugFlag   = flag.Bool("debug", false, "Enable debug logging")
		inputFlag   = flag.String("input", "", "Transcript JSON file (default: stdin)")
		outputFlag  = flag.String("output", "", "Output file (default: stdout)")
		formatFlag  = flag.String("format", "", "Output format: srt, vtt, or txt")
		grammarFlag = flag.Bool("grammar", false, "Apply light grammar normalization")
	)
	flag.Parse()

	if *helpFlag {
		printHelp()
		os.Exit(0)
	}

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	opts := cliOptions{
		debug:   *debugFlag,
		input:   *inputFlag,
		output:  *outputFlag,
		format:  *formatFlag,
		grammar: *grammarFlag,
	}

	if err := runApplication(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

// cliOptions carries the parsed command line flags into runApplication
type cliOptions struct {
	debug   bool
	input   string
	output  string
	format  string
	grammar bool
}

// runApplication contains the core application logic that can be tested
func runApplication(opts cliOptions) error {
	zapLogger, err := buildLogger(opts.debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer zapLogger.Sync()

	cfg, err := loadConfiguration(opts)
	if err != nil {
		zapLogger.Error("failed to load configuration", zap.Error(err))
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.NewApplicationWithConfig(cfg, zapLogger)
	if err != nil {
		zapLogger.Error("failed to create application", zap.Error(err))
		return fmt.Errorf("failed to create application: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		zapLogger.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	in, closeIn, err := openInput(opts.input)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(opts.output)
	if err != nil {
		return err
	}

	if err := application.Run(ctx, in, out); err != nil {
		closeOut()
		return fmt.Errorf("application runtime error: %w", err)
	}

	if err := closeOut(); err != nil {
		return fmt.Errorf("failed to finalize output: %w", err)
	}

	return nil
}

// buildLogger selects the production or debug logger
func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return logger.NewDebugLogger()
	}
	return logger.NewLogger(), nil
}

// loadConfiguration loads configuration from CONFIG_PATH or the environment
// and applies command line overrides on top
func loadConfiguration(opts cliOptions) (*config.Configuration, error) {
	var cfg *config.Configuration
	var err error

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		cfg, err = config.NewConfigurationFromFile(configPath)
	} else {
		cfg, err = config.NewConfigurationFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if opts.format != "" {
		if _, err := render.ParseFormat(opts.format); err != nil {
			return nil, err
		}
		cfg.SetOutputFormat(opts.format)
	}
	if opts.grammar {
		cfg.SetGrammarStyle(true)
	}

	return cfg, nil
}

// openInput opens the transcript source, defaulting to stdin
func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	return f, f.Close, nil
}

// openOutput opens the subtitle destination, defaulting to stdout
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	return f, f.Close, nil
}

// printHelp displays command line usage information
func printHelp() {
	fmt.Println("SubsGenie - Transcription Segment Normalizer and Subtitle Formatter")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("    subsgenie [OPTIONS]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("    -input PATH    Transcript JSON file (default: stdin)")
	fmt.Println("    -output PATH   Output file (default: stdout)")
	fmt.Println("    -format NAME   Output format: srt, vtt, or txt")
	fmt.Println("    -grammar       Apply light grammar normalization")
	fmt.Println("    -debug         Enable debug logging")
	fmt.Println("    -help          Show this help message")
	fmt.Println("    -version       Show version information")
	fmt.Println()
	fmt.Println("CONFIGURATION:")
	fmt.Println("    Settings are read from the file named by CONFIG_PATH, or from")
	fmt.Println("    SUBSGENIE_* environment variables. Command line flags take")
	fmt.Println("    precedence over both.")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("    subsgenie -input transcript.json -output movie.srt")
	fmt.Println("    subsgenie -format vtt < transcript.json > movie.vtt")
	fmt.Println("    subsgenie -format txt -grammar < transcript.json")
}

// printVersion displays version and build information
func printVersion() {
	fmt.Println("SubsGenie")
	fmt.Println("Version: 1.2")
	fmt.Println("Build: Segment Normalization Pipeline")
}
