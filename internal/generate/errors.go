package generate

import (
	"errors"
	"fmt"
)

// ErrInvalidInput: the custom-summary input was missing or blank.
var ErrInvalidInput = errors.New("input is required")

// ErrMissingInput: one of topic, summary or question was missing.
var ErrMissingInput = errors.New("missing topic, summary, or question")

// UpstreamError wraps a transport or API failure from the generation
// backend.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generation upstream: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// UnparsableError: the model responded, but the text did not decode into
// the expected JSON shape. Raw holds the cleaned response text.
type UnparsableError struct {
	Raw string
	Err error
}

func (e *UnparsableError) Error() string {
	return fmt.Sprintf("unparsable model response: %v", e.Err)
}

func (e *UnparsableError) Unwrap() error { return e.Err }
