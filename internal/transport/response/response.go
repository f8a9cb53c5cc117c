// Package response implements the success/error JSON envelope every API
// caller can rely on: success results carry their payload fields alongside
// "success": true, failures carry {"success": false, "error": "..."}.
package response

import (
	"encoding/json"
	"net/http"
)

// ErrorEnvelope is the failure shape of the API contract.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(v)
}

// WriteError writes a failure envelope.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, ErrorEnvelope{Success: false, Error: message})
}

// WriteBadRequest writes a 400 Bad Request failure envelope.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message)
}

// WriteInternalError writes a 500 Internal Server Error failure envelope.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message)
}
