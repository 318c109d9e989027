// Package responses writes the application's JSON endpoints in the
// same envelope shape the backend uses, so page scripts parse one
// contract everywhere.
package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/HasanBocek/KTUTennisCRM/pkg/errors"
	"github.com/HasanBocek/KTUTennisCRM/pkg/logger"
)

// Envelope is the uniform response wrapper. Code carries the
// application-level result independent of the transport status.
type Envelope struct {
	Code    int      `json:"code"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func WriteSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Envelope{Code: http.StatusOK, Message: message, Data: data})
}

// WriteFailure reports a backend-mirrored failure: the envelope code
// and errors come straight from the upstream result while the
// transport status stays 200, matching the backend contract.
func WriteFailure(w http.ResponseWriter, code int, message string, errs []string) {
	if code == 0 || code == http.StatusOK {
		code = http.StatusBadRequest
	}
	writeJSON(w, http.StatusOK, Envelope{Code: code, Message: message, Errors: errs})
}

// WriteError maps a tagged error onto the envelope through the
// taxonomy metadata table and logs it.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())
	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation, pkgerrors.CodeAuth, pkgerrors.CodeAPI:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	if logg != nil {
		fields := map[string]any{
			"error":      typed.Message(),
			"error_code": string(typed.Code()),
		}
		logg.Error(logg.WithFields(ctx, fields), "request.error", err)
	}

	writeJSON(w, meta.HTTPStatus, Envelope{
		Code:    meta.HTTPStatus,
		Message: msg,
		Errors:  typed.Details(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
