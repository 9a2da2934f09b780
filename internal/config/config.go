package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pagegen "github.com/alnah/go-pagegen"
	"github.com/alnah/go-pagegen/internal/fileutil"
	"github.com/alnah/go-pagegen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// DefaultName is the config looked up in the working directory when no
// config is named explicitly.
const DefaultName = "pagegen"

// MaxIndent bounds layout widths.
const MaxIndent = pagegen.MaxIndent

// Config holds all configuration for a generation run.
type Config struct {
	Data      DataConfig      `yaml:"data"`
	Templates TemplatesConfig `yaml:"templates"`
	Output    OutputConfig    `yaml:"output"`
	Layout    LayoutConfig    `yaml:"layout"`
	Markdown  MarkdownConfig  `yaml:"markdown"`
	Build     BuildConfig     `yaml:"build"`
}

// DataConfig names the data files.
type DataConfig struct {
	Cities   string `yaml:"cities"`   // JSON or YAML array of city records
	Services string `yaml:"services"` // JSON or YAML array of service records
}

// TemplatesConfig names the template files.
type TemplatesConfig struct {
	City    string `yaml:"city"`
	Service string `yaml:"service"`
}

// OutputConfig names the output directories.
type OutputConfig struct {
	CityDir    string `yaml:"cityDir"`
	ServiceDir string `yaml:"serviceDir"`
}

// LayoutConfig holds the indentation of each service-page fragment.
type LayoutConfig struct {
	MenuIndent     int `yaml:"menuIndent"`
	BenefitsIndent int `yaml:"benefitsIndent"`
	UsesIndent     int `yaml:"usesIndent"`
	SpecsIndent    int `yaml:"specsIndent"`
	SidebarIndent  int `yaml:"sidebarIndent"`
	FooterIndent   int `yaml:"footerIndent"`
	RelatedIndent  int `yaml:"relatedIndent"`
}

// MarkdownConfig selects fields rendered from Markdown.
type MarkdownConfig struct {
	Fields []string `yaml:"fields"` // e.g. intro_paragraph, unique_paragraph_1
	Unsafe bool     `yaml:"unsafe"` // pass raw HTML through
}

// BuildConfig holds run behavior switches.
type BuildConfig struct {
	Strict bool `yaml:"strict"` // fail when output still contains a known token
}

// DefaultConfig returns the conventional project layout. Unset keys in a
// config file keep these values.
func DefaultConfig() *Config {
	p := pagegen.DefaultPaths()
	l := pagegen.DefaultLayout()
	return &Config{
		Data:      DataConfig{Cities: p.CityData, Services: p.ServiceData},
		Templates: TemplatesConfig{City: p.CityTemplate, Service: p.ServiceTemplate},
		Output:    OutputConfig{CityDir: p.CityOutputDir, ServiceDir: p.ServiceOutputDir},
		Layout: LayoutConfig{
			MenuIndent:     l.MenuIndent,
			BenefitsIndent: l.BenefitsIndent,
			UsesIndent:     l.UsesIndent,
			SpecsIndent:    l.SpecsIndent,
			SidebarIndent:  l.SidebarIndent,
			FooterIndent:   l.FooterIndent,
			RelatedIndent:  l.RelatedIndent,
		},
	}
}

// Validate checks that every path is set and every width is in range.
// Called automatically by LoadConfig, but available for configs assembled
// from flags and environment variables.
func (c *Config) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"data.cities", c.Data.Cities},
		{"data.services", c.Data.Services},
		{"templates.city", c.Templates.City},
		{"templates.service", c.Templates.Service},
		{"output.cityDir", c.Output.CityDir},
		{"output.serviceDir", c.Output.ServiceDir},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s: required", ErrInvalidConfig, r.field)
		}
	}

	indents := []struct {
		field string
		value int
	}{
		{"layout.menuIndent", c.Layout.MenuIndent},
		{"layout.benefitsIndent", c.Layout.BenefitsIndent},
		{"layout.usesIndent", c.Layout.UsesIndent},
		{"layout.specsIndent", c.Layout.SpecsIndent},
		{"layout.sidebarIndent", c.Layout.SidebarIndent},
		{"layout.footerIndent", c.Layout.FooterIndent},
		{"layout.relatedIndent", c.Layout.RelatedIndent},
	}
	for _, in := range indents {
		if in.value < 0 || in.value > MaxIndent {
			return fmt.Errorf("%w: %s: must be between 0 and %d, got %d", ErrInvalidConfig, in.field, MaxIndent, in.value)
		}
	}

	seen := make(map[string]bool, len(c.Markdown.Fields))
	for i, f := range c.Markdown.Fields {
		if f == "" {
			return fmt.Errorf("%w: markdown.fields[%d]: empty field name", ErrInvalidConfig, i)
		}
		if seen[f] {
			return fmt.Errorf("%w: markdown.fields[%d]: duplicate field %q", ErrInvalidConfig, i, f)
		}
		seen[f] = true
	}

	return nil
}

// SetOutputRoot places both output directories under root. Absolute
// directories are left as they are.
func (c *Config) SetOutputRoot(root string) {
	if root == "" {
		return
	}
	if !filepath.IsAbs(c.Output.CityDir) {
		c.Output.CityDir = filepath.Join(root, c.Output.CityDir)
	}
	if !filepath.IsAbs(c.Output.ServiceDir) {
		c.Output.ServiceDir = filepath.Join(root, c.Output.ServiceDir)
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) || fileutil.HasExt(nameOrPath, ".yaml", ".yml") {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads the DefaultName config from the working directory if one
// exists, and DefaultConfig otherwise. It never searches the user config
// directory, so a stray global file cannot change an unconfigured build.
func LoadDefault() (*Config, string, error) {
	for _, ext := range configExtensions {
		path := DefaultName + ext
		if fileutil.FileExists(path) {
			cfg, err := LoadConfig(path)
			return cfg, path, err
		}
	}
	return DefaultConfig(), "", nil
}

var configExtensions = []string{".yaml", ".yml"}

// SearchPaths lists the files a config name resolves to, in lookup order.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-pagegen/
func SearchPaths(name string) []string {
	paths := make([]string, 0, len(configExtensions)*2) // 2 locations
	for _, ext := range configExtensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range configExtensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-pagegen", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
