package gateway

import (
	"encoding/json"

	pkgerrors "github.com/HasanBocek/KTUTennisCRM/pkg/errors"
)

// envelopeSuccessCode is the application-level success marker. The
// backend reports it independently of the transport status.
const envelopeSuccessCode = 200

// Envelope is the backend's uniform JSON wrapper.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
}

// Response is the single normalized result shape every call site
// receives. Exactly one of the failure fields set depends on the
// failure kind carried in Kind; on success Data holds the decoded
// envelope payload.
type Response[T any] struct {
	Success bool
	Data    T
	Message string
	Errors  []string
	// Kind carries the error taxonomy tag on failure; empty on success.
	Kind pkgerrors.Code
}

// ErrorList returns the discrete error strings, falling back to the
// message when the backend sent none.
func (r Response[T]) ErrorList() []string {
	if len(r.Errors) > 0 {
		return r.Errors
	}
	if r.Message != "" {
		return []string{r.Message}
	}
	return nil
}
