// Package httpx holds small response helpers shared by the HTTP handlers.
package httpx

import (
	"encoding/json"
	"net/http"
	"strings"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	var body []byte
	var err error
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			// avoid writing partial JSON
			http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
			return
		}
	} else {
		body = []byte("null")
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func JSONError(w http.ResponseWriter, status int, msg string, details any) {
	JSON(w, status, ErrorResponse{Error: msg, Details: details})
}

// WantsJSON reports whether the client prefers a JSON answer.
func WantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// Error answers with a JSON error for API clients and plain text otherwise.
func Error(w http.ResponseWriter, r *http.Request, status int, code string) {
	if r != nil && WantsJSON(r) {
		JSONError(w, status, code, nil)
		return
	}
	http.Error(w, http.StatusText(status), status)
}

// Health is the liveness payload served at /healthz.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	API     string `json:"api,omitempty"`
}

// HealthHandler always answers 200 with h.
func HealthHandler(h Health) http.HandlerFunc {
	if h.Status == "" {
		h.Status = "ok"
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		JSON(w, http.StatusOK, h)
	}
}
