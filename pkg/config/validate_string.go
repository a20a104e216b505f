package config

import (
	"slices"
	"strings"

	"github.com/arthur-debert/gobtop/pkg/errors"
)

// TempScales are the accepted temp_scale values
var TempScales = []string{"celsius", "fahrenheit", "kelvin", "rankine"}

// stringEffect carries what a successful check parsed, for keys whose
// value also drives store state
type stringEffect struct {
	boxes   []string
	presets []Preset
}

// ValidateString checks a string setting. levels is the log level registry
// used for log_level.
func ValidateString(key, value string, levels []string) *errors.GobtopError {
	_, err := checkString(key, value, levels)
	return err
}

// StripQuotes removes a pair of double quotes surrounding a raw value. An
// unbalanced quote is kept.
func StripQuotes(v string) string {
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return v[1 : len(v)-1]
	}
	return v
}

func checkString(key, value string, levels []string) (stringEffect, *errors.GobtopError) {
	var eff stringEffect

	switch {
	case key == "log_level":
		if !slices.Contains(levels, value) {
			return eff, stringError(errors.ErrInvalidLogLevel, key, value, "Invalid log_level: "+value)
		}

	case key == "graph_symbol":
		if !slices.Contains(GraphSymbols, value) {
			return eff, stringError(errors.ErrInvalidGraphSymbol, key, value, "Invalid graph symbol identifier: "+value)
		}

	case strings.HasPrefix(key, "graph_symbol_"):
		if !slices.Contains(PresetSymbols, value) {
			return eff, stringError(errors.ErrInvalidGraphSymbol, key, value,
				"Invalid graph symbol identifier for "+key+": "+value)
		}

	case key == "shown_boxes":
		boxes := fields(value, " ")
		if len(boxes) == 0 {
			return eff, stringError(errors.ErrInvalidBoxName, key, value, "No boxes selected in shown_boxes!")
		}
		for _, b := range boxes {
			if !slices.Contains(Boxes, b) {
				return eff, stringError(errors.ErrInvalidBoxName, key, value, "Invalid box name(s) in shown_boxes!")
			}
		}
		eff.boxes = boxes

	case key == "presets":
		presets, err := ParsePresets(value)
		if err != nil {
			return eff, err
		}
		eff.presets = presets

	case key == "cpu_core_map":
		for _, pair := range fields(value, " ") {
			parts := strings.Split(pair, ":")
			if len(parts) != 2 {
				return eff, stringError(errors.ErrInvalidCoreMap, key, value, "Invalid formatting of cpu_core_map!")
			}
			for _, p := range parts {
				if _, err := parseInt32(p); err != nil {
					return eff, stringError(errors.ErrInvalidCoreMap, key, value, "Invalid formatting of cpu_core_map!")
				}
			}
		}

	case key == "io_graph_speeds":
		for _, pair := range fields(value, " ") {
			parts := strings.Split(pair, ":")
			if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
				return eff, stringError(errors.ErrInvalidIOSpeeds, key, value, "Invalid formatting of io_graph_speeds!")
			}
			if _, err := parseInt32(parts[1]); err != nil {
				return eff, stringError(errors.ErrInvalidIOSpeeds, key, value, "Invalid formatting of io_graph_speeds!")
			}
		}

	case key == "temp_scale":
		if !slices.Contains(TempScales, value) {
			return eff, stringError(errors.ErrInvalidTempScale, key, value, "Invalid temp_scale: "+value)
		}
	}

	return eff, nil
}

func stringError(code errors.ErrorCode, key, value, msg string) *errors.GobtopError {
	return errors.New(code, msg).
		WithDetail("key", key).
		WithDetail("value", value)
}
