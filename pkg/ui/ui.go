// Package ui renders command results as styled terminal output, plain text or JSON.
// The format is picked explicitly or detected from the output file.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/gobtop/pkg/ui/json"
	"github.com/arthur-debert/gobtop/pkg/ui/terminal"
	"github.com/arthur-debert/gobtop/pkg/ui/text"
)

// Renderer is implemented by every output format
type Renderer interface {
	// RenderResult renders a display type, raw bytes, or any other value
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

var constructors = map[Format]func(io.Writer) (Renderer, error){
	FormatTerminal: func(w io.Writer) (Renderer, error) { return terminal.New(w) },
	FormatText:     func(w io.Writer) (Renderer, error) { return text.New(w) },
	FormatJSON:     func(w io.Writer) (Renderer, error) { return json.New(w) },
}

// Resolve turns FormatAuto into a concrete format for output. Files are
// probed for terminal support; any other writer gets terminal output.
func Resolve(format Format, output io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatTerminal
}

// NewRenderer creates a renderer for format writing to output
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	format = Resolve(format, output)
	newRenderer, ok := constructors[format]
	if !ok {
		return nil, fmt.Errorf("unknown format: %v", format)
	}
	return newRenderer(output)
}
