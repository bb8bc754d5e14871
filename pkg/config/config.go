// Package config loads user defaults for the CLI and HTTP server from a TOML
// file.
//
// The file is looked up at, in order:
//
//   - the path passed with --config
//   - $XDG_CONFIG_HOME/gridstrategy/config.toml
//   - ~/.config/gridstrategy/config.toml
//
// A missing file at one of the default locations is not an error; the
// built-in defaults apply. Command-line flags override file values.
//
// Example file:
//
//	alignment = "justified"
//	width = 1200
//	height = 900
//	style = "outline"
//	formats = ["svg", "pdf"]
//
//	[server]
//	addr = ":9090"
package config

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/PeterMinin/grid-strategy/pkg/errors"
	"github.com/PeterMinin/grid-strategy/pkg/grid"
	"github.com/PeterMinin/grid-strategy/pkg/pipeline"
	"github.com/PeterMinin/grid-strategy/pkg/render"
	"github.com/PeterMinin/grid-strategy/pkg/render/canvas"
	"github.com/PeterMinin/grid-strategy/pkg/render/sink"
)

const (
	// appName names the config directory.
	appName = "gridstrategy"

	// fileName is the config file name inside the config directory.
	fileName = "config.toml"

	// DefaultAddr is the HTTP listen address.
	DefaultAddr = ":8080"
)

// Config holds user defaults.
type Config struct {
	Alignment string   `toml:"alignment"`
	Width     float64  `toml:"width"`
	Height    float64  `toml:"height"`
	Style     string   `toml:"style"`
	Engine    string   `toml:"engine"`
	Formats   []string `toml:"formats"`
	Server    Server   `toml:"server"`

	// Path is the file the values were read from; empty for defaults.
	Path string `toml:"-"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Alignment: grid.DefaultAlignment.String(),
		Width:     pipeline.DefaultWidth,
		Height:    pipeline.DefaultHeight,
		Style:     pipeline.DefaultStyle,
		Engine:    pipeline.DefaultEngine,
		Formats:   []string{string(render.FormatSVG)},
		Server:    Server{Addr: DefaultAddr},
	}
}

// DefaultPath returns the XDG config file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config at path, or at [DefaultPath] when path is empty.
// An explicit path must exist; a missing default file yields [Default].
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open config")
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Decode parses TOML from r on top of [Default] and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every value, reporting the first problem as INVALID_CONFIG.
func (c Config) Validate() error {
	if _, err := grid.ParseAlignment(c.Alignment); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "alignment")
	}
	if err := canvas.ValidateSize(c.Width, c.Height, false); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "size")
	}
	if _, err := sink.StyleByName(c.Style); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "style")
	}
	if err := pipeline.ValidateEngine(c.Engine); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "engine")
	}
	if err := pipeline.ValidateFormats(c.Formats); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "formats")
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr cannot be empty")
	}
	return nil
}

// Options returns pipeline options for n subplots seeded from c.
func (c Config) Options(n int) pipeline.Options {
	return pipeline.Options{
		N:         n,
		Alignment: c.Alignment,
		Width:     c.Width,
		Height:    c.Height,
		Style:     c.Style,
		Engine:    c.Engine,
		Formats:   append([]string(nil), c.Formats...),
	}
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
