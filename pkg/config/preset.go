package config

import (
	"slices"
	"strconv"
	"strings"

	"github.com/arthur-debert/gobtop/pkg/errors"
)

const (
	// MaxPresets is the number of user presets accepted in one presets value
	MaxPresets = 9
	// MaxPresetBoxes is the number of boxes one preset may arrange
	MaxPresetBoxes = 4
)

// Boxes lists the valid box names, in default display order
var Boxes = []string{"cpu", "mem", "net", "proc"}

// GraphSymbols are the symbol sets usable for graph_symbol
var GraphSymbols = []string{"braille", "block", "tty"}

// PresetSymbols are the symbols usable in per-box settings and presets
var PresetSymbols = append([]string{"default"}, GraphSymbols...)

// BoxSpec places one box inside a preset
type BoxSpec struct {
	Name     string
	Position int
	Symbol   string
}

// String renders the spec in presets syntax, e.g. "cpu:0:default"
func (b BoxSpec) String() string {
	return b.Name + ":" + strconv.Itoa(b.Position) + ":" + b.Symbol
}

// Preset is one alternative layout
type Preset struct {
	Boxes []BoxSpec
}

// String renders the preset in presets syntax
func (p Preset) String() string {
	parts := make([]string, len(p.Boxes))
	for i, b := range p.Boxes {
		parts[i] = b.String()
	}
	return strings.Join(parts, ",")
}

// Names returns the box names of the preset, in order
func (p Preset) Names() []string {
	names := make([]string, len(p.Boxes))
	for i, b := range p.Boxes {
		names[i] = b.Name
	}
	return names
}

// DefaultPreset is the builtin layout, always available as preset 0
var DefaultPreset = Preset{Boxes: []BoxSpec{
	{Name: "cpu", Position: 0, Symbol: "default"},
	{Name: "mem", Position: 0, Symbol: "default"},
	{Name: "net", Position: 0, Symbol: "default"},
	{Name: "proc", Position: 0, Symbol: "default"},
}}

// ParsePresets parses a presets value: presets are separated by whitespace,
// boxes by commas and box fields by colons.
func ParsePresets(value string) ([]Preset, *errors.GobtopError) {
	tokens := fields(value, " ")
	if len(tokens) > MaxPresets {
		return nil, presetError(errors.ErrTooManyPresets, value,
			"Too many presets entered!")
	}

	presets := make([]Preset, 0, len(tokens))
	for _, token := range tokens {
		specs := fields(token, ",")
		if len(specs) > MaxPresetBoxes {
			return nil, presetError(errors.ErrTooManyBoxes, value,
				"Too many boxes entered for preset!")
		}

		var p Preset
		for _, spec := range specs {
			parts := strings.Split(spec, ":")
			if len(parts) != 3 {
				return nil, presetError(errors.ErrMalformatted, value,
					"Malformatted preset in config value presets!")
			}
			name, pos, symbol := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])

			if !slices.Contains(Boxes, name) {
				return nil, presetError(errors.ErrInvalidBoxName, value,
					"Invalid box name in config value presets!")
			}
			if pos != "0" && pos != "1" {
				return nil, presetError(errors.ErrInvalidPositionValue, value,
					"Invalid position value in config value presets!")
			}
			if !slices.Contains(PresetSymbols, symbol) {
				return nil, presetError(errors.ErrInvalidGraphName, value,
					"Invalid graph name in config value presets!")
			}

			position, _ := strconv.Atoi(pos)
			p.Boxes = append(p.Boxes, BoxSpec{Name: name, Position: position, Symbol: symbol})
		}
		presets = append(presets, p)
	}
	return presets, nil
}

func presetError(code errors.ErrorCode, value, msg string) *errors.GobtopError {
	return errors.New(code, msg).
		WithDetail("key", "presets").
		WithDetail("value", value)
}

// fields splits s on sep, trims every part and drops the empty ones
func fields(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
