package toggle

import (
	"errors"
	"fmt"
	"sort"

	"github.com/umputun/toggler/app/enum"
)

// DefaultPreset is the name of the palette used when nothing else is configured.
const DefaultPreset = "classic"

// Face is a label and a color token for one button.
type Face struct {
	Label string     `json:"label"`
	Color enum.Color `json:"color"`
}

// Palette maps modes and secondary buttons to faces.
// Initial is the mode a fresh session starts with, ReportMode adds the current mode to notification messages.
type Palette struct {
	Name       string    `json:"name"`
	Initial    enum.Mode `json:"initial"`
	Speak      Face      `json:"speak"`
	Stop       Face      `json:"stop"`
	Secondary  [2]Face   `json:"secondary"`
	ReportMode bool      `json:"report_mode"`
}

// Present returns the face of the primary button for the given mode. Pure, depends on the palette only.
func (p Palette) Present(m enum.Mode) Face {
	if m == enum.ModeSpeak {
		return p.Speak
	}
	return p.Stop
}

// Validate checks the palette can render both modes distinctly.
func (p Palette) Validate() error {
	if !p.Initial.Valid() {
		return fmt.Errorf("invalid initial mode %q", p.Initial)
	}
	if p.Speak.Label == "" || p.Stop.Label == "" {
		return errors.New("primary labels must not be empty")
	}
	for i, f := range p.Secondary {
		if f.Label == "" {
			return fmt.Errorf("secondary-%d label must not be empty", i+1)
		}
	}
	if p.Speak == p.Stop {
		return errors.New("speak and stop faces must differ")
	}
	return nil
}

var presets = map[string]Palette{
	"bright": {
		Name:    "bright",
		Initial: enum.ModeStop,
		Speak:   Face{Label: "Speak", Color: enum.ColorRed},
		Stop:    Face{Label: "Stop", Color: enum.ColorGreen},
		Secondary: [2]Face{
			{Label: "Secondary 1", Color: enum.ColorBlue},
			{Label: "Secondary 2", Color: enum.ColorOrange},
		},
	},
	"classic": {
		Name:    "classic",
		Initial: enum.ModeStop,
		Speak:   Face{Label: "Speak", Color: enum.ColorRed},
		Stop:    Face{Label: "Stop", Color: enum.ColorGreen},
		Secondary: [2]Face{
			{Label: "Secondary 1", Color: enum.ColorViolet},
			{Label: "Secondary 2", Color: enum.ColorGray},
		},
	},
	"soft": {
		Name:    "soft",
		Initial: enum.ModeStop,
		Speak:   Face{Label: "Speak", Color: enum.ColorRed},
		Stop:    Face{Label: "Stop", Color: enum.ColorLightGreen},
		Secondary: [2]Face{
			{Label: "Secondary 1", Color: enum.ColorDarkBlue},
			{Label: "Secondary 2", Color: enum.ColorDarkPurple},
		},
		ReportMode: true,
	},
	"speak-first": {
		Name:    "speak-first",
		Initial: enum.ModeSpeak,
		Speak:   Face{Label: "Speak", Color: enum.ColorRed},
		Stop:    Face{Label: "Stop", Color: enum.ColorGreen},
		Secondary: [2]Face{
			{Label: "Secondary 1", Color: enum.ColorViolet},
			{Label: "Secondary 2", Color: enum.ColorGray},
		},
		ReportMode: true,
	},
}

// Preset returns a built-in palette by name.
func Preset(name string) (Palette, error) {
	p, ok := presets[name]
	if !ok {
		return Palette{}, fmt.Errorf("unknown palette preset %q, available: %v", name, PresetNames())
	}
	return p, nil
}

// PresetNames returns sorted names of built-in palettes.
func PresetNames() []string {
	res := make([]string, 0, len(presets))
	for name := range presets {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}
