// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/gobtop/pkg/cobrax/topics"
	"github.com/arthur-debert/gobtop/pkg/ui/display"
	"github.com/arthur-debert/gobtop/pkg/ui/output/styles"
	"github.com/charmbracelet/lipgloss"
)

// Renderer provides rich terminal output using the style registry
type Renderer struct {
	output io.Writer
	// MarkdownStyle is the glamour style used for setting help
	MarkdownStyle string
	// Width wraps markdown output, 0 leaves it to glamour
	Width int
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w, MarkdownStyle: "auto", Width: 80}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.ConfigReport:
		return r.renderReport(v)
	case *display.SettingList:
		return r.renderSettings(v)
	case *display.SettingDetail:
		return r.renderDetail(v)
	case *display.PresetList:
		return r.renderPresets(v)
	case []byte:
		_, err := r.output.Write(v)
		return err
	default:
		return r.println(fmt.Sprintf("%+v", result))
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	return r.println(styles.Render("ErrorBadge", "ERROR") + " " + styles.Render("Error", err.Error()))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(styles.Render("Info", msg))
}

func (r *Renderer) renderReport(report *display.ConfigReport) error {
	if report == nil {
		return nil
	}
	header := styles.Render("Header", "Config ") + styles.Render("FilePath", report.Path)
	if err := r.println(header); err != nil {
		return err
	}

	switch {
	case !report.Found:
		if err := r.println(styles.Render("Muted", "not found, defaults in use")); err != nil {
			return err
		}
	case report.OK():
		if err := r.println(styles.Render("SuccessBadge", "OK") + " " + styles.Render("Success", "no invalid values")); err != nil {
			return err
		}
	}

	for _, w := range report.Warnings {
		line := styles.Render("WarningBadge", "WARN") + " " +
			styles.Render("LineNumber", fmt.Sprintf("line %d", w.Line)) + " " +
			styles.Render("Warning", w.Message)
		if err := r.println(line); err != nil {
			return err
		}
	}

	if report.Dirty {
		return r.println(styles.Render("MutedItalic", "config file needs to be rewritten"))
	}
	return nil
}

func (r *Renderer) renderSettings(list *display.SettingList) error {
	if list == nil {
		return nil
	}
	width := 0
	for _, s := range list.Settings {
		width = max(width, lipgloss.Width(s.Key))
	}

	keyCell := styles.GetStyle("Key").Width(width + 2)
	typeCell := styles.GetStyle("Type").Width(8)
	for _, s := range list.Settings {
		valueStyle := "Value"
		if !s.Changed() {
			valueStyle = "Muted"
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			keyCell.Render(s.Key),
			typeCell.Render(s.Type),
			styles.Render(valueStyle, s.Value),
		)
		if err := r.println(row); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderDetail(d *display.SettingDetail) error {
	if d == nil {
		return nil
	}

	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", d.Key)
	fmt.Fprintf(&md, "*%s*, default `%s`", d.Type, d.Default)
	if d.Value != "" {
		fmt.Fprintf(&md, ", current `%s`", d.Value)
	}
	md.WriteString("\n\n")
	if d.Help != "" {
		for _, line := range strings.Split(d.Help, "\n") {
			md.WriteString(line)
			md.WriteString("\n\n")
		}
	} else {
		md.WriteString("Runtime only, not stored in the config file.\n")
	}

	_, err := fmt.Fprint(r.output, topics.RenderMarkdown(md.String(), r.MarkdownStyle, r.Width))
	return err
}

func (r *Renderer) renderPresets(list *display.PresetList) error {
	if list == nil {
		return nil
	}
	for i, p := range list.Presets {
		index := styles.Render("Key", fmt.Sprintf("%d", i))
		if i == list.Current {
			index = styles.Render("SuccessBadge", fmt.Sprintf("%d", i))
		}
		if err := r.println(index + "  " + styles.Render("Value", p)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}
