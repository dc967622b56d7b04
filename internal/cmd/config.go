package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configEnv names the environment variable consulted when --config is not
// given.
const configEnv = "FRAGHASH_CONFIG"

// Config holds defaults for command flags. Flags given on the command line
// always win over values from the file.
type Config struct {
	FragmentMiB int      `yaml:"fragment_mib"`
	Width       int      `yaml:"width"`
	MaxDepth    int      `yaml:"max_depth"`
	Exclude     []string `yaml:"exclude"`
	Progress    *bool    `yaml:"progress,omitempty"`
}

// loadConfig reads the file named by --config or $FRAGHASH_CONFIG. Without
// either it returns the zero Config. Unknown keys are an error.
func loadConfig(cmd *cobra.Command) (Config, error) {
	var c Config
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv(configEnv)
	}
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// applyInt sets *dst to value when value is set in the config and the flag
// was not given explicitly.
func applyInt(cmd *cobra.Command, flag string, dst *int, value int) {
	if value != 0 && !cmd.Flags().Changed(flag) {
		*dst = value
	}
}

func applyBool(cmd *cobra.Command, flag string, dst *bool, value *bool) {
	if value != nil && !cmd.Flags().Changed(flag) {
		*dst = *value
	}
}
