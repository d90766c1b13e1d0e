// Package config loads the optional, entirely-defaultable YAML
// configuration a test module may supply to override the runner's
// environmental defaults (capture file location, debugger-wait
// variable name). Every field has a literal default matching the
// reference /tmp/scu.XXXXXX template when no config file is present.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"scu/pkg/logging"
)

const defaultConfigFileName = "scu.yaml"

// Config holds the environment-driven defaults a test module may
// override.
type Config struct {
	// CaptureDir is the directory capture files are created in.
	// Default: /tmp, matching the reference template /tmp/scu.XXXXXX.
	CaptureDir string `yaml:"capture_dir"`

	// CapturePrefix is the mkstemp-style prefix used for capture
	// file names, before the random suffix. Default: "scu".
	CapturePrefix string `yaml:"capture_prefix"`

	// DebuggerWaitEnv is the name of the environment variable whose
	// presence causes the engine to wait for a continuation signal
	// before emitting module_start. Default: SCU_WAIT_FOR_DEBUGGER.
	DebuggerWaitEnv string `yaml:"debugger_wait_env"`
}

// Default returns the built-in default configuration, used when no
// config file is present or specified.
func Default() Config {
	return Config{
		CaptureDir:      "/tmp",
		CapturePrefix:   "scu",
		DebuggerWaitEnv: "SCU_WAIT_FOR_DEBUGGER",
	}
}

// Load reads a YAML configuration file at path and overlays it onto
// Default(). A missing file is not an error: Default() is returned
// unchanged, since config is entirely optional and not part of the
// wire protocol or any test outcome.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("config", "no config file at %s, using defaults", path)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	logging.Debug("config", "loaded configuration from %s", path)
	return cfg, nil
}

// DefaultPath returns the conventional config file path checked by
// scu.Main() when no --config flag is given: scu.yaml in the current
// working directory.
func DefaultPath() string {
	return filepath.Join(".", defaultConfigFileName)
}
