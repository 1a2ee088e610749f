// Package config loads the editor settings file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Window           WindowConfig `yaml:"window"`
	CellSize         float64      `yaml:"cell_size"`
	SaveName         string       `yaml:"save_name"`
	PreviewScale     float64      `yaml:"preview_scale"`
	WatchSpriteSheet bool         `yaml:"watch_spritesheet"`
	Colors           ColorConfig  `yaml:"colors"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ColorConfig struct {
	Background YAMLColor `yaml:"background"`
	Grid       YAMLColor `yaml:"grid"`
	Axis       YAMLColor `yaml:"axis"`
	Hover      YAMLColor `yaml:"hover"`
}

// Default returns the built-in settings.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic("config: embedded default.yaml: " + err.Error())
	}
	return cfg
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("cell_size %v must be positive", c.CellSize)
	case c.PreviewScale < 0.3 || c.PreviewScale > 3:
		return fmt.Errorf("preview_scale %v out of range [0.3, 3]", c.PreviewScale)
	case strings.TrimSpace(c.SaveName) == "":
		return errors.New("save_name must not be empty")
	}
	return nil
}

// YAMLColor is a color written as "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.Color
}

func (c YAMLColor) RGBA() (r, g, b, a uint32) {
	if c.Color == nil {
		return 0, 0, 0, 0
	}
	return c.Color.RGBA()
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
