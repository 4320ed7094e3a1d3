package descriptors

import "errors"

var (
	ErrInvalidDescriptor = errors.New("invalid descriptor")
	ErrNoHeader          = errors.New("video control header descriptor not found")
)
