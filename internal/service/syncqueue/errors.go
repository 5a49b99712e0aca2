package syncqueue

import "errors"

var (
	ErrRemoteRejected     = errors.New("request rejected by remote")
	ErrUndefinedOperation = errors.New("undefined sync operation")
	ErrIncompleteSubject  = errors.New("sync subject lacks data for operation")
)
