package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode    Phase = "encode"    // value to bytes
	PhaseLayout    Phase = "layout"    // size info and struct allocation
	PhaseSignature Phase = "signature" // canonical type names and selectors
)

// Kind categorizes the error
type Kind string

const (
	KindNotEncodable      Kind = "not_encodable"
	KindOverflow          Kind = "overflow"
	KindInvalidData       Kind = "invalid_data"
	KindInvalidUTF8       Kind = "invalid_utf8"
	KindSizeMismatch      Kind = "size_mismatch"
	KindMissingAllocation Kind = "missing_allocation"
	KindNilValue          Kind = "nil_value"
	KindUnsupported       Kind = "unsupported"
)

// ErrNotEncodable matches any NOT_ENCODABLE error through errors.Is.
var ErrNotEncodable = &Error{Phase: PhaseEncode, Kind: KindNotEncodable}

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// NOT_ENCODABLE matches regardless of phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind == KindNotEncodable && t.Kind == KindNotEncodable {
		return true
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// IsNotEncodable reports whether err, or any error it wraps, is NOT_ENCODABLE.
func IsNotEncodable(err error) bool {
	return errors.Is(err, ErrNotEncodable)
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the element path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the ABI type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotEncodable creates a NOT_ENCODABLE error
func NotEncodable(phase Phase, path []string, typeName, reason string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotEncodable,
		Path:   path,
		Type:   typeName,
		Detail: reason,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, typeName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Path:   path,
		Type:   typeName,
		Detail: fmt.Sprintf("value %v overflows %s", value, typeName),
		Value:  value,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, path []string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Path:   path,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// SizeMismatch creates an error for size info that disagrees with an encoding
func SizeMismatch(path []string, typeName string, want, got int) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindSizeMismatch,
		Path:   path,
		Type:   typeName,
		Detail: fmt.Sprintf("size info reports %d head bytes, encoding has %d", want, got),
	}
}

// MissingAllocation creates an error for a struct with no allocation
func MissingAllocation(id string) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindMissingAllocation,
		Detail: fmt.Sprintf("no allocation for struct %q", id),
		Value:  id,
	}
}

// NilValue creates an error for a nil value or payload
func NilValue(phase Phase, path []string, typeName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilValue,
		Path:   path,
		Type:   typeName,
		Detail: "nil value",
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
