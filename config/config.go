// Package config loads srcview settings from srcview.yaml or srcview.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/srcview/format"
)

// File names searched by Load, in order.
var FileNames = []string{"srcview.yaml", "srcview.yml", "srcview.toml"}

// ErrConfigNotFound is returned when no config file can be found.
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when config validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all srcview configuration.
type Config struct {
	Render     RenderConfig     `yaml:"render" toml:"render"`
	Decompiler DecompilerConfig `yaml:"decompiler" toml:"decompiler"`
	Cache      CacheConfig      `yaml:"cache" toml:"cache"`
	Server     ServerConfig     `yaml:"server" toml:"server"`
}

// RenderConfig mirrors format.Options.
type RenderConfig struct {
	IndentStyle           string `yaml:"indent_style" toml:"indent_style"`
	IndentWidth           int    `yaml:"indent_width" toml:"indent_width"`
	PrintComments         bool   `yaml:"print_comments" toml:"print_comments"`
	PrintJavadoc          bool   `yaml:"print_javadoc" toml:"print_javadoc"`
	OrderImports          bool   `yaml:"order_imports" toml:"order_imports"`
	MaxEnumConstantsOnRow int    `yaml:"max_enum_constants_on_row" toml:"max_enum_constants_on_row"`
	AlignParameters       bool   `yaml:"align_parameters" toml:"align_parameters"`
	AlignFirstMethodChain bool   `yaml:"align_first_method_chain" toml:"align_first_method_chain"`
}

// DecompilerConfig says where class sources come from. Decompilers are
// tried in the order source root, tree root, command.
type DecompilerConfig struct {
	SourceRoot string   `yaml:"source_root" toml:"source_root"`
	TreeRoot   string   `yaml:"tree_root" toml:"tree_root"`
	ClassRoot  string   `yaml:"class_root" toml:"class_root"`
	Command    []string `yaml:"command" toml:"command"`
}

// CacheConfig configures the sqlite render cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Path    string `yaml:"path" toml:"path"`
}

// ServerConfig configures the HTTP viewer.
type ServerConfig struct {
	Addr  string `yaml:"addr" toml:"addr"`
	Theme string `yaml:"theme" toml:"theme"`
}

// Themes accepted by the viewer.
var Themes = []string{"light", "dark"}

// Default returns the configuration used when no file exists. Fields a file
// leaves out keep these values.
func Default() *Config {
	opts := format.DefaultOptions()
	return &Config{
		Render: RenderConfig{
			IndentStyle:           string(opts.IndentStyle),
			IndentWidth:           opts.IndentWidth,
			PrintComments:         opts.PrintComments,
			PrintJavadoc:          opts.PrintJavadoc,
			OrderImports:          opts.OrderImports,
			MaxEnumConstantsOnRow: opts.MaxEnumConstantsAlignedHorizontally,
			AlignParameters:       opts.ColumnAlignParameters,
			AlignFirstMethodChain: opts.ColumnAlignFirstMethodChain,
		},
		Decompiler: DecompilerConfig{
			SourceRoot: "src",
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    filepath.Join(".srcview", "cache.db"),
		},
		Server: ServerConfig{
			Addr:  "localhost:8080",
			Theme: "light",
		},
	}
}

// Load reads the first config file found in dir. When there is none it
// returns the defaults together with ErrConfigNotFound.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return Default(), ErrConfigNotFound
}

// LoadFile reads the config at path. The format follows the extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), ErrConfigNotFound
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown config format %q", ErrInvalidConfig, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	switch format.IndentStyle(c.Render.IndentStyle) {
	case format.IndentTabs, format.IndentSpaces:
	default:
		return fmt.Errorf("%w: indent_style must be %q or %q, got %q",
			ErrInvalidConfig, format.IndentTabs, format.IndentSpaces, c.Render.IndentStyle)
	}
	if c.Render.IndentWidth <= 0 {
		return fmt.Errorf("%w: indent_width must be positive, got %d",
			ErrInvalidConfig, c.Render.IndentWidth)
	}
	if c.Render.MaxEnumConstantsOnRow < 0 {
		return fmt.Errorf("%w: max_enum_constants_on_row must be non-negative, got %d",
			ErrInvalidConfig, c.Render.MaxEnumConstantsOnRow)
	}
	if c.Cache.Enabled && c.Cache.Path == "" {
		return fmt.Errorf("%w: cache.path is required when the cache is enabled", ErrInvalidConfig)
	}
	if len(c.Decompiler.Command) > 0 && c.Decompiler.ClassRoot == "" {
		return fmt.Errorf("%w: decompiler.class_root is required with decompiler.command", ErrInvalidConfig)
	}
	if !validTheme(c.Server.Theme) {
		return fmt.Errorf("%w: theme must be one of %v, got %q", ErrInvalidConfig, Themes, c.Server.Theme)
	}
	return nil
}

func validTheme(theme string) bool {
	for _, t := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}

// Options converts the render section to printer options.
func (c *Config) Options() format.Options {
	r := c.Render
	return format.Options{
		IndentStyle:                         format.IndentStyle(r.IndentStyle),
		IndentWidth:                         r.IndentWidth,
		PrintComments:                       r.PrintComments,
		PrintJavadoc:                        r.PrintJavadoc,
		OrderImports:                        r.OrderImports,
		MaxEnumConstantsAlignedHorizontally: r.MaxEnumConstantsOnRow,
		ColumnAlignParameters:               r.AlignParameters,
		ColumnAlignFirstMethodChain:         r.AlignFirstMethodChain,
	}
}
