// Package apierror classifies every failure surfaced to the user into a
// small closed taxonomy. All request outcomes funnel through this package so
// that callers can branch on kind instead of string-matching error text.
package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Tipo is the failure class of an Error.
type Tipo int

const (
	// Validacion: detected client-side, no request was sent.
	Validacion Tipo = iota
	// Rechazo: 4xx response with a usable body message, shown verbatim.
	Rechazo
	// Servidor: non-2xx without a usable message; generic text plus status.
	Servidor
	// Red: no response received (connection refused, timeout, DNS).
	Red
	// Local: request construction or any other unexpected local failure.
	Local
)

func (t Tipo) String() string {
	switch t {
	case Validacion:
		return "validacion"
	case Rechazo:
		return "rechazo"
	case Servidor:
		return "servidor"
	case Red:
		return "red"
	case Local:
		return "local"
	default:
		return "desconocido"
	}
}

// Error is the canonical failure envelope for all client operations.
type Error struct {
	Tipo    Tipo
	Estado  int    // HTTP status, 0 when no response was received
	Detalle string // user-facing message
	// Fields holds per-field validation failures (Tipo == Validacion only).
	Fields map[string]string
}

func (e *Error) Error() string {
	if e.Estado != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Tipo, e.Estado, e.Detalle)
	}
	return fmt.Sprintf("%s: %s", e.Tipo, e.Detalle)
}

// Mensaje is the text shown to the user, without the internal kind prefix.
func (e *Error) Mensaje() string {
	if e.Tipo == Validacion && len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for campo, motivo := range e.Fields {
			parts = append(parts, campo+": "+motivo)
		}
		return e.Detalle + " (" + strings.Join(parts, ", ") + ")"
	}
	return e.Detalle
}

// NewValidacion builds a client-side validation error. No request was sent.
func NewValidacion(fields map[string]string) *Error {
	return &Error{Tipo: Validacion, Detalle: "Error de validacion", Fields: fields}
}

// NewLocal wraps an unexpected local failure with its raw error text.
func NewLocal(err error) *Error {
	return &Error{Tipo: Local, Detalle: err.Error()}
}

// NewRed reports that no response was received.
func NewRed(err error) *Error {
	return &Error{Tipo: Red, Detalle: "No se pudo conectar con el servidor: " + err.Error()}
}

// FromResponse classifies a non-2xx response. A 400-class status with a
// usable body message becomes a Rechazo shown verbatim; anything else is a
// Servidor error carrying the status code.
func FromResponse(status int, body []byte) *Error {
	if status >= 400 && status < 500 {
		if msg := extractMessage(body); msg != "" {
			return &Error{Tipo: Rechazo, Estado: status, Detalle: msg}
		}
	}
	return &Error{
		Tipo:    Servidor,
		Estado:  status,
		Detalle: fmt.Sprintf("El servidor respondio con un error (%d)", status),
	}
}

// extractMessage pulls a human-readable message out of an ad hoc error body.
// The backend answers sometimes with a bare JSON string, sometimes with an
// object carrying "message" or "detail", and sometimes with plain text.
func extractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var asString string
	if err := json.Unmarshal(body, &asString); err == nil {
		return strings.TrimSpace(asString)
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(body, &asObject); err == nil {
		for _, key := range []string{"message", "detail", "error"} {
			var msg string
			if raw, ok := asObject[key]; ok && json.Unmarshal(raw, &msg) == nil && msg != "" {
				return msg
			}
		}
		return ""
	}

	if !strings.HasPrefix(trimmed, "<") { // ignore HTML error pages
		return trimmed
	}
	return ""
}

// Es reports whether err is an *Error of the given kind.
func Es(err error, tipo Tipo) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Tipo == tipo
}
