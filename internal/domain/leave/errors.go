package leave

import "errors"

var (
	ErrLeaveNotFound = errors.New("leave interval not found")
	ErrInvalidKind   = errors.New("invalid leave kind")
)
