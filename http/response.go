package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"tuition-negotiation/domain"
	"tuition-negotiation/repository"
)

type errorResponse struct {
	Error string                `json:"error"`
	Kind  domain.ValidationKind `json:"kind,omitempty"`
}

// WriteJSON encodes v before touching the response so an encoding failure
// can still become a 500.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps service errors to responses. Validation failures
// carry their kind so a client can point at the offending field.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		WriteJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Message, Kind: vErr.Kind})
	case errors.Is(err, repository.ErrSessionNotFound):
		WriteError(w, http.StatusNotFound, "session not found")
	default:
		log.Printf("Error handling request: %v", err)
		WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
