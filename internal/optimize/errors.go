package optimize

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrRewrite      = errors.New("rewrite failed")
)

const (
	MessageInvalidInput = "Resume, job description, and issues are required"
	MessageFailed       = "Failed to optimize resume"
)
