// Package json renders results as indented JSON, one document per call.
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/frece/pkg/errors"
)

type errorDoc struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type messageDoc struct {
	Message string `json:"message"`
}

type Renderer struct {
	enc *json.Encoder
}

func New(w io.Writer) (*Renderer, error) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &Renderer{enc: enc}, nil
}

// RenderResult encodes result using its own JSON tags.
func (r *Renderer) RenderResult(result interface{}) error {
	return r.enc.Encode(result)
}

func (r *Renderer) RenderError(err error) error {
	return r.enc.Encode(errorDoc{
		Error:   err.Error(),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	})
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.enc.Encode(messageDoc{Message: msg})
}
