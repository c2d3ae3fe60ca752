package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error envelope for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// RespondError writes the error envelope with the given status. The numeric
// code in the body always equals the HTTP status.
func RespondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondBadRequest writes a 400 envelope.
func RespondBadRequest(w http.ResponseWriter) {
	RespondError(w, CodeBadRequest, MsgBadRequest)
}

// RespondNotFound writes a 404 envelope with a resource-specific message
// (e.g. "Category not found", "Questions not found").
func RespondNotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = MsgNotFound
	}
	RespondError(w, CodeNotFound, message)
}

// RespondUnprocessable writes a 422 envelope.
func RespondUnprocessable(w http.ResponseWriter) {
	RespondError(w, CodeUnprocessable, MsgUnprocessable)
}

// RespondInternalError writes a 500 envelope.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, CodeInternal, MsgInternal)
}
