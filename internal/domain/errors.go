package domain

import "errors"

var (
	ErrValidation          = errors.New("invalid intake field")
	ErrAllocationExhausted = errors.New("minor allocation exhausted probe space")
	ErrUnknownCard         = errors.New("unknown card name")
	ErrDeckNotFound        = errors.New("deck not found")
	ErrDeckExists          = errors.New("deck already persisted")
	ErrRendererDisabled    = errors.New("rendering is not enabled")
	ErrUpstreamRenderer    = errors.New("upstream renderer failure")
	ErrInvalidRendererJSON = errors.New("renderer returned invalid JSON after retry")
)
