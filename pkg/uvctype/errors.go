package uvctype

import "errors"

var (
	ErrMissingOpenBrace  = errors.New("missing opening brace")
	ErrMissingCloseBrace = errors.New("missing closing brace")
	ErrUnknownType       = errors.New("unknown component type")
	ErrMissingName       = errors.New("missing field name")
	ErrDuplicateName     = errors.New("duplicate field name")
	ErrNoFields          = errors.New("no fields")
	ErrSyntax            = errors.New("syntax error")
	ErrFieldCount        = errors.New("field count mismatch")
	ErrInvalidField      = errors.New("invalid field")
	ErrBufferSize        = errors.New("buffer size does not match type")
	ErrUnknownField      = errors.New("unknown field")
	ErrNoLimit           = errors.New("limit not available")
	ErrIncomplete        = errors.New("not every field was assigned")
	ErrTypeMismatch      = errors.New("types are not compatible")
)
