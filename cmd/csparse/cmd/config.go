package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the persistent flags a config file can set defaults
// for. Every field is optional; a zero value means "unset, leave the
// flag default alone".
type fileConfig struct {
	Color     string `yaml:"color"`
	MaxErrors int    `yaml:"max_errors"`
	NoRecover bool   `yaml:"no_recover"`
}

// loadFileConfig reads and parses a config file. A missing file is not
// an error — csparse runs fine with no config at all, unlike a required
// benchmark spec.
func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &fileConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyConfig loads path and fills in any persistent flag the user did
// not explicitly pass on the command line. Explicit flags always win
// over the config file, and the config file always wins over the
// built-in flag default.
func applyConfig(cmd *cobra.Command, path string) error {
	cfg, err := loadFileConfig(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if cfg.Color != "" && !flags.Changed("color") {
		colorMode = cfg.Color
	}
	if cfg.MaxErrors != 0 && !flags.Changed("max-errors") {
		maxErrors = cfg.MaxErrors
	}
	if cfg.NoRecover && !flags.Changed("no-recover") {
		noRecover = true
	}
	return nil
}
