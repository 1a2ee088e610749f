package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tilepaint.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.SaveName != "saved.bag" {
		t.Fatalf("SaveName = %q", cfg.SaveName)
	}
	if cfg.Window.Width <= 0 || cfg.CellSize <= 0 {
		t.Fatalf("defaults should be usable: %+v", cfg)
	}
	if err := cfg.validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	want := color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	if cfg.Colors.Axis.Color != want {
		t.Fatalf("axis color = %v, want %v", cfg.Colors.Axis.Color, want)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window != Default().Window {
		t.Fatalf("window = %+v, want defaults", cfg.Window)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
cell_size: 32
watch_spritesheet: false
colors:
  hover: "#10203040"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CellSize != 32 {
		t.Fatalf("CellSize = %v, want 32", cfg.CellSize)
	}
	if cfg.WatchSpriteSheet {
		t.Fatalf("WatchSpriteSheet should be overridden to false")
	}
	if cfg.SaveName != "saved.bag" {
		t.Fatalf("unset keys should keep defaults, SaveName = %q", cfg.SaveName)
	}
	want := color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}
	if cfg.Colors.Hover.Color != want {
		t.Fatalf("hover = %v, want %v", cfg.Colors.Hover.Color, want)
	}
	if cfg.Colors.Grid.Color == nil {
		t.Fatalf("grid color should keep its default")
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"bad_yaml", "window: [", "unmarshal"},
		{"bad_color", "colors:\n  axis: \"#12\"", "invalid color"},
		{"color_not_scalar", "colors:\n  axis: [1, 2]", "color must be a string"},
		{"zero_cell", "cell_size: 0", "cell_size"},
		{"preview_range", "preview_scale: 9", "preview_scale"},
		{"empty_save_name", "save_name: \"  \"", "save_name"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, c.body))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %q should mention %q", err, c.want)
			}
		})
	}
}

func TestYAMLColorZeroValue(t *testing.T) {
	var c YAMLColor
	if _, _, _, a := c.RGBA(); a != 0 {
		t.Fatalf("unset color should be transparent")
	}
}
