package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the tool-level configuration layered under every command. Form
// content lives in the YAML definition; this file holds host preferences.
type Config struct {
	Endpoint     string `toml:"endpoint"`
	AdvanceDelay string `toml:"advance_delay"`
	Theme        string `toml:"theme"`
	Submit       Submit `toml:"submit"`
	Sink         Sink   `toml:"sink"`
}

type Submit struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
}

type Sink struct {
	Addr    string `toml:"addr"`
	LogFile string `toml:"log_file"`
}

const FileName = ".formshell.toml"

const DefaultConfigToml = `# FormShell configuration

# Default submission endpoint. The form definition's endpoint, and the
# --endpoint flag, take precedence.
endpoint = ""

# Pause between a valid answer and the automatic advance.
advance_delay = "600ms"

# Markdown rendering style: "dark" or "light".
theme = "dark"

[submit]
timeout_seconds = 10

[sink]
addr = "127.0.0.1:8787"
log_file = ""
`

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AdvanceDelay: "600ms",
		Theme:        "dark",
		Submit:       Submit{TimeoutSeconds: 10},
		Sink:         Sink{Addr: "127.0.0.1:8787"},
	}
}

// LoadFromRoot reads .formshell.toml from root, falling back to the defaults
// when the file does not exist.
func LoadFromRoot(root string) (Config, error) {
	raw, err := os.ReadFile(filepath.Join(root, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParsedAdvanceDelay resolves the configured delay, falling back to the
// default on an empty or malformed duration.
func (c Config) ParsedAdvanceDelay() time.Duration {
	d, err := time.ParseDuration(c.AdvanceDelay)
	if err != nil || d <= 0 {
		return 600 * time.Millisecond
	}
	return d
}

// SubmitTimeout resolves the submit timeout with its default floor.
func (c Config) SubmitTimeout() time.Duration {
	if c.Submit.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Submit.TimeoutSeconds) * time.Second
}

// GlamourStyle resolves the markdown style, falling back to dark on an
// unknown value.
func (c Config) GlamourStyle() string {
	switch c.Theme {
	case "dark", "light":
		return c.Theme
	default:
		return "dark"
	}
}
