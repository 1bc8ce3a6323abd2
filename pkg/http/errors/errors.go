package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope wrapping every 4xx/5xx reply.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   int    `json:"error"`
}

// Respond writes a standardized error envelope with the given status.
func Respond(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Message: message,
		Error:   status,
	})
}

// RespondNotFound writes the 404 envelope.
func RespondNotFound(w http.ResponseWriter) {
	Respond(w, http.StatusNotFound, MsgNotFound)
}

// RespondBadRequest writes the 400 envelope.
func RespondBadRequest(w http.ResponseWriter) {
	Respond(w, http.StatusBadRequest, MsgBadRequest)
}

// RespondInternalError writes the 500 envelope.
func RespondInternalError(w http.ResponseWriter) {
	Respond(w, http.StatusInternalServerError, MsgInternalError)
}
