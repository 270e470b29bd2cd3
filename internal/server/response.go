package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// requestID generates a unique request identifier.
func requestID() string {
	return "req_" + uuid.New().String()[:8]
}

// envelope is the JSON shape of the operational endpoints.
type envelope struct {
	Status    string    `json:"status"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}

// respondOK writes a success response with the standard envelope.
func respondOK(w http.ResponseWriter, reqID string, data any) {
	respondJSON(w, http.StatusOK, reqID, "ok", data)
}

func respondJSON(w http.ResponseWriter, status int, reqID, state string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{
		Status:    state,
		RequestID: reqID,
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
}
