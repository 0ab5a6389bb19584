package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	stellarerrors "github.com/stellar-lang/stellar/internal/errors"
)

// Accepted option values
var (
	ColorModes    = []string{"auto", "always", "never"}
	OutputFormats = []string{"text", "json", "yaml"}
)

// DefaultConfigNames are searched, in order, when no config file is given.
var DefaultConfigNames = []string{"stellar.toml", "stellar.yaml", "stellar.yml"}

// Config represents the stellar tool configuration. Zero values are
// replaced by defaults in Validate.
type Config struct {
	Verbose  bool        `toml:"verbose" yaml:"verbose"`
	Debug    bool        `toml:"debug" yaml:"debug"`
	Color    string      `toml:"color" yaml:"color"`
	Format   string      `toml:"format" yaml:"format"`
	Requires string      `toml:"requires" yaml:"requires"`
	Jobs     int         `toml:"jobs" yaml:"jobs"`
	Watch    WatchConfig `toml:"watch" yaml:"watch"`

	// ConfigFile is the file the configuration was loaded from, if any.
	ConfigFile string `toml:"-" yaml:"-"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	// Debounce is a Go duration string such as "150ms".
	Debounce string `toml:"debounce" yaml:"debounce"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Color:  "auto",
		Format: "text",
		Jobs:   runtime.NumCPU(),
		Watch: WatchConfig{
			Debounce: "100ms",
		},
	}
}

// FindConfig returns the first default config file present in dir, or ""
// if there is none.
func FindConfig(dir string) string {
	for _, name := range DefaultConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadConfig loads configuration from a TOML or YAML file, chosen by
// extension. A missing file or an empty path yields the defaults. Keys
// not known to Config are rejected.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		return config, config.Validate()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, config.Validate()
		}
		return nil, stellarerrors.ReadFailed(configPath, err)
	}

	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".toml":
		meta, err := toml.Decode(string(data), config)
		if err != nil {
			return nil, stellarerrors.InvalidConfig(configPath, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, stellarerrors.InvalidConfig(configPath,
				fmt.Errorf("unknown key %q", undecoded[0].String()))
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
			return nil, stellarerrors.InvalidConfig(configPath, err)
		}
	default:
		return nil, stellarerrors.UnsupportedConfigFormat(configPath)
	}

	config.ConfigFile = configPath
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate fills in defaults for zero values and checks every option.
func (c *Config) Validate() error {
	defaults := DefaultConfig()

	if c.Color == "" {
		c.Color = defaults.Color
	}
	if !slices.Contains(ColorModes, c.Color) {
		return stellarerrors.InvalidOption("color", c.Color, ColorModes)
	}

	if c.Format == "" {
		c.Format = defaults.Format
	}
	if !slices.Contains(OutputFormats, c.Format) {
		return stellarerrors.InvalidOption("format", c.Format, OutputFormats)
	}

	if c.Jobs <= 0 {
		c.Jobs = defaults.Jobs
	}

	if c.Watch.Debounce == "" {
		c.Watch.Debounce = defaults.Watch.Debounce
	}
	if d, err := time.ParseDuration(c.Watch.Debounce); err != nil || d < 0 {
		return stellarerrors.InvalidOption("watch.debounce", c.Watch.Debounce, []string{"a non-negative duration"})
	}

	return CheckRequirement(c.Requires)
}

// DebounceDuration returns the parsed watch debounce interval.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 100 * time.Millisecond
	}
	return d
}
