package errors

import "net/http"

// Fixed messages carried by the error envelope.
const (
	MsgBadRequest       = "bad request"
	MsgNotFound         = "resource not found"
	MsgUnprocessable    = "unprocessable"
	MsgMethodNotAllowed = "method not allowed"
	MsgInternalError    = "internal server error"
)

// Message returns the envelope message for an HTTP status.
func Message(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MsgBadRequest
	case http.StatusNotFound:
		return MsgNotFound
	case http.StatusUnprocessableEntity:
		return MsgUnprocessable
	case http.StatusMethodNotAllowed:
		return MsgMethodNotAllowed
	default:
		return MsgInternalError
	}
}
