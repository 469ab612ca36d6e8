// Package httputil centralizes JSON envelope writing so every endpoint
// returns the same response shape.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "badgeforge/pkg/domain-errors"
)

// Envelope is the JSON body returned by every non-binary endpoint.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  []dErrors.Violation `json:"errors,omitempty"`
}

// WriteJSON writes v with the given status and a JSON content type.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSuccess writes a 200 success envelope.
func WriteSuccess(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: message})
}

// WriteError translates err into a failure envelope. Only the authored
// domain error message crosses the wire; wrapped causes stay server-side.
// Anything that is not a domain error becomes a generic 500.
func WriteError(w http.ResponseWriter, err error) {
	de := dErrors.From(err)
	if de == nil {
		WriteJSON(w, http.StatusInternalServerError, Envelope{
			Success: false,
			Message: "internal server error",
		})
		return
	}
	WriteJSON(w, dErrors.ToHTTPStatus(de.Code), Envelope{
		Success: false,
		Message: de.Message,
		Errors:  de.Violations,
	})
}
