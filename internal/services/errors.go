package services

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput      = errors.New("no file uploaded")
	ErrUnknownAction     = errors.New("unknown evaluation action")
	ErrUnsupportedFormat = errors.New("unsupported file type")
	ErrFileTooLarge      = errors.New("file too large")
)

// ToolNotFoundError reports that a binary of the rendering toolchain could
// not be located. It is kept apart from ConversionError so callers can tell
// a broken installation from a broken document.
type ToolNotFoundError struct {
	Tool string
	Path string
	Err  error
}

func (e *ToolNotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s not found at %s", e.Tool, e.Path)
	}
	return fmt.Sprintf("%s not found in PATH", e.Tool)
}

func (e *ToolNotFoundError) Unwrap() error { return e.Err }

// ConversionError wraps any failure to turn an uploaded document into an
// image payload.
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("error in processing PDF file: %v", e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// EvaluationError wraps transport and service-side failures of the
// generative model call.
type EvaluationError struct {
	Err error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("error in AI response generation: %v", e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }
