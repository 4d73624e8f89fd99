package analyses

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

const (
	MessageInvalidInput = "Both resume and job description are required"
	MessageFailed       = "Failed to analyze resume"
)
