package web

// errors.go provides the JSON response helpers shared by all handlers.
//
// Transport and precondition failures (missing file, wrong extension,
// nonexistent path) are answered here with a short JSON error body and
// never enter the message model; domain failures travel inside the
// ConversionResult instead.

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorResponse is the body of every 4xx answer.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response and logs it.
func writeError(w http.ResponseWriter, status int, message string) {
	slog.Warn("request rejected", "status", status, "reason", message)
	writeJSON(w, status, errorResponse{Error: message})
}

// writeJSON encodes v as JSON with the given status code.
// Encoding errors are logged since the header is already sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", "error", err)
	}
}
