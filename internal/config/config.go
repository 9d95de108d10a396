package config

import (
	"fmt"

	"github.com/spf13/viper"

	"subsgenie/internal/subtitle"
)

// Configuration provides type-safe access to application settings
type Configuration struct {
	viper *viper.Viper
}

// setDefaults applies the standard subtitle display constraints
func setDefaults(v *viper.Viper) {
	v.SetDefault("output.format", "srt")
	v.SetDefault("format.grammar_style", false)
	v.SetDefault("format.max_chars_per_line", subtitle.DefaultMaxCharsPerLine)
	v.SetDefault("format.min_duration", subtitle.DefaultMinDuration)
	v.SetDefault("format.max_duration", subtitle.DefaultMaxDuration)
}

// NewConfiguration creates a new Configuration instance with default settings
func NewConfiguration() *Configuration {
	v := viper.New()
	setDefaults(v)
	return &Configuration{viper: v}
}

// NewConfigurationFromFile creates a Configuration instance from a config file
func NewConfigurationFromFile(configFile string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	return &Configuration{viper: v}, nil
}

// NewConfigurationFromEnv creates a Configuration instance that reads from environment variables
func NewConfigurationFromEnv() (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SUBSGENIE")
	v.AutomaticEnv()

	v.BindEnv("output.format", "SUBSGENIE_OUTPUT_FORMAT")
	v.BindEnv("format.grammar_style", "SUBSGENIE_GRAMMAR_STYLE")
	v.BindEnv("format.max_chars_per_line", "SUBSGENIE_MAX_CHARS_PER_LINE")
	v.BindEnv("format.min_duration", "SUBSGENIE_MIN_DURATION")
	v.BindEnv("format.max_duration", "SUBSGENIE_MAX_DURATION")

	return &Configuration{viper: v}, nil
}

// GetOutputFormat returns the configured output format name
func (c *Configuration) GetOutputFormat() string {
	return c.viper.GetString("output.format")
}

// SetOutputFormat overrides the configured output format name
func (c *Configuration) SetOutputFormat(format string) {
	c.viper.Set("output.format", format)
}

// GetGrammarStyle returns whether light grammar normalization is enabled
func (c *Configuration) GetGrammarStyle() bool {
	return c.viper.GetBool("format.grammar_style")
}

// SetGrammarStyle overrides the grammar normalization flag
func (c *Configuration) SetGrammarStyle(enabled bool) {
	c.viper.Set("format.grammar_style", enabled)
}

// GetMaxCharsPerLine returns the display line length limit
func (c *Configuration) GetMaxCharsPerLine() int {
	return c.viper.GetInt("format.max_chars_per_line")
}

// GetMinDuration returns the minimum cue duration in seconds
func (c *Configuration) GetMinDuration() float64 {
	return c.viper.GetFloat64("format.min_duration")
}

// GetMaxDuration returns the maximum cue duration in seconds
func (c *Configuration) GetMaxDuration() float64 {
	return c.viper.GetFloat64("format.max_duration")
}

// PipelineOptions assembles the subtitle pipeline options from configuration
func (c *Configuration) PipelineOptions() subtitle.Options {
	return subtitle.Options{
		GrammarStyle:    c.GetGrammarStyle(),
		MaxCharsPerLine: c.GetMaxCharsPerLine(),
		MinDuration:     c.GetMinDuration(),
		MaxDuration:     c.GetMaxDuration(),
	}
}
