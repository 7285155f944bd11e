package domain

import "errors"

var (
	ErrUnknownLine      = errors.New("unknown line_id")
	ErrMissingAsset     = errors.New("missing audio file")
	ErrMissingInput     = errors.New("line_id or text required")
	ErrInvalidSignature = errors.New("invalid signature")
)
