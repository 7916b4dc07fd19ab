package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the standard format for API error messages. Type
// carries the error taxonomy name so clients can branch without
// parsing the message text.
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// MessageResponse is a standard format for simple API messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// IDResponse is returned when an entity was created.
type IDResponse struct {
	ID int64 `json:"id"`
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, errType, message string) {
	respondWithJSON(w, code, ErrorResponse{Type: errType, Message: message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"type":"InternalError","message":"Failed to marshal JSON response."}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
