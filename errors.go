package typf

import "fmt"

// Kind classifies an Error into the abstract taxonomy of spec.md §7. It
// is a closed set: callers switch on it with errors.As, never on the
// Error's message text.
type Kind int

const (
	// InvalidInput covers ill-formed UTF-8, non-finite coordinates, and
	// negative sizes rejected at a pipeline entry point.
	InvalidInput Kind = iota
	// FontNotFound means a family/path could not be resolved.
	FontNotFound
	// FontInvalid means font bytes don't parse as a supported format.
	FontInvalid
	// ShapingFailed means the shaping engine returned failure for a run.
	ShapingFailed
	// RasterizationFailed means surface allocation or rasterization
	// received invalid flattened input.
	RasterizationFailed
	// EncodingFailed means PNG/vector serialization failed.
	EncodingFailed
	// NoBackendAvailable means the selected backend isn't compiled in or
	// isn't supported on this platform.
	NoBackendAvailable
	// CacheError marks an internal cache invariant violation: never
	// user-triggered.
	CacheError
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case FontNotFound:
		return "FontNotFound"
	case FontInvalid:
		return "FontInvalid"
	case ShapingFailed:
		return "ShapingFailed"
	case RasterizationFailed:
		return "RasterizationFailed"
	case EncodingFailed:
		return "EncodingFailed"
	case NoBackendAvailable:
		return "NoBackendAvailable"
	case CacheError:
		return "CacheError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single error type typf returns across every package
// boundary (spec.md §7: "every error carries a human-readable message
// and, where applicable, the offending input"). Kind supports
// errors.As-style dispatch; Cause supports errors.Is/Unwrap chains into
// a wrapped library error (e.g. a shaping engine panic).
type Error struct {
	Kind    Kind
	Message string
	Input   string // offending input, e.g. a font path or byte range; empty if not applicable
	Cause   error
}

func (e *Error) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("typf: %s: %s (input: %s)", e.Kind, e.Message, e.Input)
	}
	return fmt.Sprintf("typf: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// newError builds an *Error, used internally so every construction site
// is consistent about nil-Cause handling.
func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func newErrorWithInput(kind Kind, message, input string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Input: input, Cause: cause}
}
