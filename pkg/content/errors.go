package content

import "errors"

var (
	ErrEmptyContent   = errors.New("content: no pages defined")
	ErrInvalidContent = errors.New("content: invalid content file")
)
