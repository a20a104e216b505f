package display

import (
	"fmt"
	"io"
)

// TextRenderer writes results as plain text
type TextRenderer struct {
	writer io.Writer
}

// NewTextRenderer creates a new text renderer
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{writer: w}
}

// RenderReport writes the load outcome, one warning per line
func (r *TextRenderer) RenderReport(report *ConfigReport) error {
	if report == nil {
		return nil
	}
	if !report.Found {
		return r.printf("%s: not found, defaults in use\n", report.Path)
	}
	if report.OK() {
		if err := r.printf("%s: ok\n", report.Path); err != nil {
			return err
		}
	}
	for _, w := range report.Warnings {
		if err := r.printf("%s:%d: %s\n", report.Path, w.Line, w.Message); err != nil {
			return err
		}
	}
	if report.Dirty {
		return r.printf("config file needs to be rewritten\n")
	}
	return nil
}

// RenderSettings writes one "key type value" line per setting
func (r *TextRenderer) RenderSettings(list *SettingList) error {
	if list == nil {
		return nil
	}
	width := 0
	for _, s := range list.Settings {
		width = max(width, len(s.Key))
	}
	for _, s := range list.Settings {
		if err := r.printf("%-*s  %-6s  %s\n", width, s.Key, s.Type, s.Value); err != nil {
			return err
		}
	}
	return nil
}

// RenderDetail writes the key, type, default and help of one setting
func (r *TextRenderer) RenderDetail(d *SettingDetail) error {
	if d == nil {
		return nil
	}
	if err := r.printf("%s (%s)\ndefault: %s\n", d.Key, d.Type, d.Default); err != nil {
		return err
	}
	if d.Value != "" {
		if err := r.printf("current: %s\n", d.Value); err != nil {
			return err
		}
	}
	help := d.Help
	if help == "" {
		help = "Runtime only, not stored in the config file."
	}
	return r.printf("\n%s\n", help)
}

// RenderPresets writes one preset per line, marking the current one
func (r *TextRenderer) RenderPresets(list *PresetList) error {
	if list == nil {
		return nil
	}
	for i, p := range list.Presets {
		marker := " "
		if i == list.Current {
			marker = "*"
		}
		if err := r.printf("%s %d  %s\n", marker, i, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(r.writer, format, args...)
	return err
}
