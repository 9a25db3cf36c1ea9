package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// NewTraceID returns an identifier to correlate a response with server logs.
func NewTraceID() string {
	return uuid.NewString()
}

// WriteError writes a standardized JSON error response
func WriteError(w http.ResponseWriter, statusCode int, code, message, traceID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
		TraceID: traceID,
	})
}

// WriteSuccess writes data as JSON. A nil data writes only the status.
func WriteSuccess(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// WriteRaw writes an already encoded JSON body.
func WriteRaw(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}
