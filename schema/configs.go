package schema

import (
	"fmt"
	"strings"
)

// Default values for configuration.
const (
	DefaultResultLimit = 10
	MaxResultLimit     = 100
	DefaultPrecision   = 2
	MaxPrecision       = 6
	DefaultReportTitle = "Web Analytics Performance Report"
)

// Config holds the validated runtime configuration for one invocation.
type Config struct {
	InputPath   string
	OutputDir   string
	Formats     []RenderFormat
	Output      OutputMode
	OutputFile  string
	ResultLimit int
	Precision   int
	Title       string
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool
}

// Clone returns a shallow copy so per-request overrides (MCP tools) never
// leak into the base configuration.
func (c *Config) Clone() *Config {
	dup := *c
	dup.Formats = append([]RenderFormat(nil), c.Formats...)
	return &dup
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (config file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	Format     string `mapstructure:"format"`
	OutputDir  string `mapstructure:"output-dir"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Limit      int    `mapstructure:"limit"`
	Precision  int    `mapstructure:"precision"`
	Title      string `mapstructure:"title"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
}

// ProcessAndValidate resolves the raw input into a validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.InputPath = input.InputPathStr
	cfg.OutputDir = input.OutputDir
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	formats, err := parseRenderFormat(input.Format)
	if err != nil {
		return err
	}
	cfg.Formats = formats

	switch mode := OutputMode(strings.ToLower(input.Output)); mode {
	case TextOut, CSVOut, JSONOut, ParquetOut:
		cfg.Output = mode
	default:
		return fmt.Errorf("invalid output mode %q (want text, csv, json or parquet)", input.Output)
	}

	cfg.ResultLimit = input.Limit
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = DefaultResultLimit
	}
	if cfg.ResultLimit > MaxResultLimit {
		cfg.ResultLimit = MaxResultLimit
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 0 || cfg.Precision > MaxPrecision {
		return fmt.Errorf("invalid precision %d (want 0-%d)", input.Precision, MaxPrecision)
	}

	cfg.Title = strings.TrimSpace(input.Title)
	if cfg.Title == "" {
		cfg.Title = DefaultReportTitle
	}

	useColors, err := parseBoolish(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	return nil
}

// parseRenderFormat expands "all" into every delivery format.
func parseRenderFormat(raw string) ([]RenderFormat, error) {
	switch f := RenderFormat(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatJSON, FormatHTML, FormatMarkdown:
		return []RenderFormat{f}, nil
	case FormatAll, "":
		return []RenderFormat{FormatJSON, FormatHTML, FormatMarkdown}, nil
	default:
		return nil, fmt.Errorf("invalid format %q (want json, html, markdown or all)", raw)
	}
}

// parseBoolish accepts the yes/no style values used by CLI flags.
func parseBoolish(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1", "on", "":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("unrecognized value %q (want yes/no/true/false/1/0)", raw)
	}
}
