package dashboard_core

import "errors"

// Storage and codec errors surfaced to callers as-is. Callers match with
// errors.Is; wrapped messages carry the detail.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("record not found")
	ErrFormat     = errors.New("unparsable input")
)
