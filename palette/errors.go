package palette

import "errors"

// Error kinds. Every error returned by the extractors wraps exactly one.
var (
	// ErrConfig means the caller's configuration is unusable. It is
	// reported before any pixel is read.
	ErrConfig = errors.New("invalid configuration")
	// ErrInput means the image or color given cannot be processed.
	ErrInput = errors.New("degenerate input")
)

var (
	ErrUnknownMetric    = &kindError{ErrConfig, "unknown distance metric"}
	ErrUnknownMode      = &kindError{ErrConfig, "unknown extraction mode"}
	ErrInvalidParameter = &kindError{ErrConfig, "invalid parameter"}

	ErrEmptyImage   = &kindError{ErrInput, "image has no pixels"}
	ErrTooFewColors = &kindError{ErrInput, "fewer distinct colors than clusters"}
	ErrInvalidColor = &kindError{ErrInput, "invalid color"}
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }
