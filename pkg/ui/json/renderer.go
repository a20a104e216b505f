// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/gobtop/pkg/errors"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

type errorDoc struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}, nil
}

// RenderResult renders any result type as JSON. Raw bytes, such as an
// exported config file, are wrapped in a content field.
func (r *Renderer) RenderResult(result interface{}) error {
	if raw, ok := result.([]byte); ok {
		return r.encoder.Encode(map[string]string{"content": string(raw)})
	}
	return r.encoder.Encode(result)
}

// RenderError renders an error as JSON. Structured errors also carry their
// code and details.
func (r *Renderer) RenderError(err error) error {
	doc := errorDoc{Error: err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		doc.Code = code
		doc.Details = errors.GetErrorDetails(err)
	}
	return r.encoder.Encode(doc)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
