package errors

import "net/http"

// Numeric error codes carried in the response envelope. They mirror the HTTP
// status of the response so clients can branch on the body alone.
const (
	CodeBadRequest    = http.StatusBadRequest
	CodeNotFound      = http.StatusNotFound
	CodeUnprocessable = http.StatusUnprocessableEntity
	CodeInternal      = http.StatusInternalServerError
)

// Default messages for the recognized failure classes.
const (
	MsgBadRequest    = "bad request"
	MsgNotFound      = "not found"
	MsgUnprocessable = "unprocessable"
	MsgInternal      = "Internal Server Error"
)
