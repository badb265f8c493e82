package confetti

import "errors"

// Result taxonomy shared by both containers. A nil error is success.
// Custom sorting strategies may return any of these; the containers
// surface them unmodified.
var (
	ErrIndexOutOfRange   = errors.New("index is outside the valid range for the operation")
	ErrElementNotFound   = errors.New("no element matched the given value")
	ErrNilList           = errors.New("the list handle is nil")
	ErrInvalidParams     = errors.New("a parameter is malformed for the operation")
	ErrAllocationFailure = errors.New("underlying memory acquisition failed")
)
