package assessment

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrAnswerCount  = errors.New("more answers than questions")
)
