// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// ErrNotImplemented marks an endpoint whose behavior is not provided by this service.
var ErrNotImplemented = errors.New("not implemented")

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error and writes a JSON error response.
// The response body contains {"error": "<error message>"}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// NotImplemented returns a handler that answers 501 with a JSON error naming feature.
func NotImplemented(logger *slog.Logger, feature string) http.HandlerFunc {
	err := fmt.Errorf("%s: %w", feature, ErrNotImplemented)
	return func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, logger.With("method", r.Method, "path", r.URL.Path), http.StatusNotImplemented, err)
	}
}
