package runner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runner's settings.
type Config struct {
	// Output is the directory example files and figures are written to.
	Output string `yaml:"output"`

	// Delimiter is the default field delimiter for delimited-text examples.
	Delimiter string `yaml:"delimiter"`

	// Plots toggles the figure-rendering examples.
	Plots bool `yaml:"plots"`

	// LogLevel sets operational log verbosity: "info" or "debug".
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output:    "out",
		Delimiter: ",",
		Plots:     true,
		LogLevel:  "info",
	}
}

// Load reads a YAML config file over the defaults. A missing path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Delimiter) != 1 {
		return cfg, fmt.Errorf("config delimiter %q must be a single character", cfg.Delimiter)
	}
	return cfg, nil
}
