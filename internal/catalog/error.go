package catalog

import "errors"

var (
	ErrInvalidProfile   = errors.New("invalid hotel profile")
	ErrProfileNotLoaded = errors.New("hotel profile not loaded")
	ErrNextVersion      = errors.New("get next snapshot version")
)
