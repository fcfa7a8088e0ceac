// Package palette loads toggle palettes from presets or palette files and keeps them fresh on file changes.
package palette

import (
	"fmt"
	"os"

	"github.com/umputun/toggler/app/enum"
	"github.com/umputun/toggler/app/toggle"
)

//go:generate go run internal/schema/main.go schema.json

// Config represents the palette file (toggler-palette.yml, .json or .toml).
type Config struct {
	Name       string       `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty" jsonschema:"description=palette name shown in logs and API"`
	Initial    string       `yaml:"initial,omitempty" json:"initial,omitempty" toml:"initial,omitempty" jsonschema:"enum=speak,enum=stop,description=mode of a fresh session"`
	ReportMode bool         `yaml:"report_mode,omitempty" json:"report_mode,omitempty" toml:"report_mode,omitempty" jsonschema:"description=mention current mode in secondary button messages"`
	Speak      FaceConfig   `yaml:"speak" json:"speak" toml:"speak" jsonschema:"required"`
	Stop       FaceConfig   `yaml:"stop" json:"stop" toml:"stop" jsonschema:"required"`
	Secondary  []FaceConfig `yaml:"secondary" json:"secondary" toml:"secondary" jsonschema:"required,minItems=2,maxItems=2"`
}

// FaceConfig represents a button label and color in the palette file.
type FaceConfig struct {
	Label string `yaml:"label" json:"label" toml:"label" jsonschema:"required,minLength=1"`
	Color string `yaml:"color" json:"color" toml:"color" jsonschema:"required,enum=red,enum=green,enum=lightgreen,enum=light-green,enum=violet,enum=gray,enum=grey,enum=darkblue,enum=dark-blue,enum=darkpurple,enum=dark-purple,enum=blue,enum=orange"`
}

// Load reads, validates and parses the palette file. The format follows the extension:
// .json and .toml are supported, anything else is read as yaml.
func Load(path string) (toggle.Palette, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from CLI flag, controlled by admin
	if err != nil {
		return toggle.Palette{}, fmt.Errorf("failed to read palette file: %w", err)
	}

	// validate against embedded JSON schema
	format := formatOf(path)
	if err := Verify(format, data); err != nil {
		return toggle.Palette{}, err
	}

	var cfg Config
	if err := decode(format, data, &cfg); err != nil {
		return toggle.Palette{}, fmt.Errorf("failed to parse palette file: %w", err)
	}

	pal, err := cfg.Palette()
	if err != nil {
		return toggle.Palette{}, err
	}
	if pal.Name == "" {
		pal.Name = path
	}
	return pal, nil
}

// Resolve returns the palette from file if set, otherwise the named preset.
func Resolve(preset, file string) (toggle.Palette, error) {
	if file != "" {
		return Load(file)
	}
	if preset == "" {
		preset = toggle.DefaultPreset
	}
	pal, err := toggle.Preset(preset)
	if err != nil {
		return toggle.Palette{}, fmt.Errorf("failed to get preset: %w", err)
	}
	return pal, nil
}

// Palette converts the file representation to a validated toggle.Palette.
// Initial mode defaults to stop.
func (c Config) Palette() (toggle.Palette, error) {
	res := toggle.Palette{Name: c.Name, Initial: enum.ModeStop, ReportMode: c.ReportMode}
	if c.Initial != "" {
		m, err := enum.ParseMode(c.Initial)
		if err != nil {
			return toggle.Palette{}, fmt.Errorf("failed to parse initial mode: %w", err)
		}
		res.Initial = m
	}

	var err error
	if res.Speak, err = c.Speak.face(); err != nil {
		return toggle.Palette{}, fmt.Errorf("speak: %w", err)
	}
	if res.Stop, err = c.Stop.face(); err != nil {
		return toggle.Palette{}, fmt.Errorf("stop: %w", err)
	}
	if len(c.Secondary) != len(res.Secondary) {
		return toggle.Palette{}, fmt.Errorf("expected %d secondary buttons, got %d", len(res.Secondary), len(c.Secondary))
	}
	for i, fc := range c.Secondary {
		if res.Secondary[i], err = fc.face(); err != nil {
			return toggle.Palette{}, fmt.Errorf("secondary-%d: %w", i+1, err)
		}
	}

	if err := res.Validate(); err != nil {
		return toggle.Palette{}, fmt.Errorf("invalid palette: %w", err)
	}
	return res, nil
}

func (f FaceConfig) face() (toggle.Face, error) {
	c, err := enum.ParseColor(f.Color)
	if err != nil {
		return toggle.Face{}, fmt.Errorf("failed to parse color: %w", err)
	}
	return toggle.Face{Label: f.Label, Color: c}, nil
}
