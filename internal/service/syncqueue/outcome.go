package syncqueue

import "net/http"

type outcome string

const (
	outcomeSuccess   outcome = "success"
	outcomeConflict  outcome = "conflict"
	outcomeInvalid   outcome = "invalid"
	outcomeTransient outcome = "transient"
	outcomeRejected  outcome = "rejected"
)

// classify maps one send attempt to its queue outcome. A send error means no response was received.
func classify(method string, code int, sendErr error) outcome {
	switch {
	case sendErr != nil:
		return outcomeTransient
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		return outcomeSuccess
	case code == http.StatusConflict:
		return outcomeConflict
	case code == http.StatusBadRequest:
		return outcomeInvalid
	case code == http.StatusNotFound && method == http.MethodDelete:
		return outcomeSuccess
	case code >= http.StatusInternalServerError,
		code == http.StatusTooManyRequests,
		code == http.StatusRequestTimeout:
		return outcomeTransient
	default:
		return outcomeRejected
	}
}

// resolved outcomes remove the item; the server state wins.
func (o outcome) resolved() bool {
	return o == outcomeSuccess || o == outcomeConflict || o == outcomeInvalid
}
