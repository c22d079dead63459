// Package config provides configuration management for staffdir builds.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvLogLevel  = "STAFFDIR_LOG_LEVEL"
	EnvLogFormat = "STAFFDIR_LOG_FORMAT"
)

// DefaultPath is where commands look for a config file when none is given.
const DefaultPath = "staffdir.yaml"

// Configuration validation errors.
var (
	ErrNoPages           = errors.New("at least one page is required")
	ErrPageMissingName   = errors.New("page name is required")
	ErrPageMissingData   = errors.New("page data file is required")
	ErrPageMissingOutput = errors.New("page output path is required")
	ErrInvalidFormat     = errors.New("page format must be one of: json, markdown, html")
	ErrDuplicatePage     = errors.New("page names must be unique")
	ErrDuplicateOutput   = errors.New("page output paths must be unique")
	ErrInvalidLogLevel   = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat  = errors.New("logging.format must be one of: text, json")
	ErrInvalidWidth      = errors.New("preview.width must be at least 40")
)

// Config represents the complete staffdir configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Preview PreviewConfig `yaml:"preview"`
	Pages   []PageConfig  `yaml:"pages" validate:"required,min=1,dive"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// OutputConfig defines what happens to rendered pages.
type OutputConfig struct {
	Sign           bool `yaml:"sign"`
	ValidateSchema bool `yaml:"validate_schema"`
}

// PreviewConfig controls the terminal preview.
type PreviewConfig struct {
	Width int `yaml:"width" validate:"min=40"`
}

// PageConfig is one roster rendered into one output file.
type PageConfig struct {
	Name   string `yaml:"name" validate:"required"`
	Data   string `yaml:"data" validate:"required"`
	Output string `yaml:"output" validate:"required"`
	Format string `yaml:"format" validate:"oneof=json markdown html"`
}

// DefaultConfig returns a configuration rendering data/staff.yaml to markdown.
func DefaultConfig() *Config {
	cfg := &Config{
		Output: OutputConfig{Sign: true, ValidateSchema: true},
		Pages: []PageConfig{
			{Name: "staff", Data: "data/staff.yaml", Output: "build/staff.md", Format: "markdown"},
		},
	}
	cfg.ApplyDefaults()

	return cfg
}

// LoadConfig loads configuration from YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.ApplyDefaults()
	cfg.ApplyEnv()
	cfg.resolvePaths(filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	if c.Preview.Width == 0 {
		c.Preview.Width = 80
	}

	for i := range c.Pages {
		if c.Pages[i].Format == "" {
			c.Pages[i].Format = formatFromExt(c.Pages[i].Output)
		}
	}
}

// ApplyEnv overrides logging settings from the environment.
func (c *Config) ApplyEnv() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}

	if format := os.Getenv(EnvLogFormat); format != "" {
		c.Logging.Format = strings.ToLower(format)
	}
}

// resolvePaths makes relative page paths relative to the config file.
func (c *Config) resolvePaths(base string) {
	for i := range c.Pages {
		p := &c.Pages[i]
		if p.Data != "" && !filepath.IsAbs(p.Data) {
			p.Data = filepath.Join(base, p.Data)
		}

		if p.Output != "" && !filepath.IsAbs(p.Output) {
			p.Output = filepath.Join(base, p.Output)
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Pages) == 0 {
		return ErrNoPages
	}

	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return translate(verrs[0])
		}

		return err
	}

	names := make(map[string]bool, len(c.Pages))
	outputs := make(map[string]bool, len(c.Pages))

	for i, p := range c.Pages {
		if names[p.Name] {
			return fmt.Errorf("%w: page[%d] %q", ErrDuplicatePage, i, p.Name)
		}

		out := filepath.Clean(p.Output)
		if outputs[out] {
			return fmt.Errorf("%w: page[%d] %q", ErrDuplicateOutput, i, p.Output)
		}

		names[p.Name] = true
		outputs[out] = true
	}

	return nil
}

// translate maps a struct validation failure onto the package's sentinel errors.
func translate(fe validator.FieldError) error {
	ns := fe.Namespace()

	var page string
	if i := strings.Index(ns, "Pages["); i >= 0 {
		if j := strings.Index(ns[i:], "]"); j > 0 {
			if n, err := strconv.Atoi(ns[i+len("Pages[") : i+j]); err == nil {
				page = fmt.Sprintf(": page[%d]", n)
			}
		}
	}

	switch ns {
	case "Config.Logging.Level":
		return ErrInvalidLogLevel
	case "Config.Logging.Format":
		return ErrInvalidLogFormat
	case "Config.Preview.Width":
		return ErrInvalidWidth
	}

	switch fe.StructField() {
	case "Pages":
		return ErrNoPages
	case "Name":
		return fmt.Errorf("%w%s", ErrPageMissingName, page)
	case "Data":
		return fmt.Errorf("%w%s", ErrPageMissingData, page)
	case "Output":
		return fmt.Errorf("%w%s", ErrPageMissingOutput, page)
	case "Format":
		return fmt.Errorf("%w%s", ErrInvalidFormat, page)
	default:
		return fmt.Errorf("invalid %s: %w", ns, fe)
	}
}

// Page returns the page with the given name.
func (c *Config) Page(name string) (PageConfig, bool) {
	for _, p := range c.Pages {
		if p.Name == name {
			return p, true
		}
	}

	return PageConfig{}, false
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Pages: %d, Sign: %t, ValidateSchema: %t, LogLevel: %s}",
		len(c.Pages),
		c.Output.Sign,
		c.Output.ValidateSchema,
		c.Logging.Level,
	)
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".html", ".htm":
		return "html"
	default:
		return "markdown"
	}
}
