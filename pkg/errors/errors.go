// Package errors provides structured error handling for the Glass library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid configuration value supplied by a caller.
	KindConfig
	// KindRender indicates a render parameter derivation error.
	KindRender
	// KindAnimation indicates an animation orchestration error.
	KindAnimation
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindAnimation:
		return "animation"
	default:
		return "unknown"
	}
}

// GlassError represents a structured error in the Glass library.
type GlassError struct {
	// Op is the operation that failed (e.g., "ripple.NewManager").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *GlassError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GlassError) Unwrap() error {
	return e.Err
}

// New creates a GlassError with the given operation, kind and underlying error.
func New(op string, kind ErrorKind, err error) *GlassError {
	return &GlassError{
		Op:        op,
		Kind:      kind,
		Err:       err,
		Timestamp: time.Now(),
	}
}

// Config creates a KindConfig error with a formatted message.
// Used by constructors to reject invalid caller-supplied values; the
// library never silently clamps configuration.
func Config(op, format string, args ...any) *GlassError {
	return New(op, KindConfig, fmt.Errorf(format, args...))
}
