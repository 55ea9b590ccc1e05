package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the runtime lifecycle the error occurred
type Phase string

const (
	PhaseLocate   Phase = "locate"   // library discovery
	PhaseBind     Phase = "bind"     // symbol resolution
	PhaseLoad     Phase = "load"     // library open
	PhaseInit     Phase = "init"     // device initialise
	PhaseFrame    Phase = "frame"    // per-frame protocol
	PhaseCall     Phase = "call"     // invoking a bound symbol
	PhaseShutdown Phase = "shutdown" // device teardown
	PhaseUnload   Phase = "unload"   // library release
	PhaseConfig   Phase = "config"   // configuration loading
	PhaseRuntime  Phase = "runtime"  // gated runtime operations
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindUnbound       Kind = "unbound"
	KindInactive      Kind = "inactive"
	KindNotLoaded     Kind = "not_loaded"
	KindTypeMismatch  Kind = "type_mismatch"
	KindOutOfBounds   Kind = "out_of_bounds"
	KindInvalidInput  Kind = "invalid_input"
	KindInvalidData   Kind = "invalid_data"
	KindUnsupported   Kind = "unsupported"
	KindDevice        Kind = "device"
	KindLayout        Kind = "layout"
	KindLibrary       Kind = "library"
	KindPanic         Kind = "panic"
	KindAlreadyActive Kind = "already_active"
)

// ErrInactive matches any error returned by an operation that was gated
// because the runtime was not loaded and initialised.
var ErrInactive = &Error{Phase: PhaseRuntime, Kind: KindInactive}

// ErrUnbound matches any call made through an unbound symbol.
var ErrUnbound = &Error{Phase: PhaseCall, Kind: KindUnbound}

// Error is the structured error type used throughout the runtime
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Symbol string
	Op     string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}

	if e.Symbol != "" {
		b.WriteString(" (")
		b.WriteString(e.Symbol)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
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

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
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

// Symbol sets the native symbol name
func (b *Builder) Symbol(name string) *Builder {
	b.err.Symbol = name
	return b
}

// Op sets the runtime operation name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
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

// Inactive creates the error returned by a gated operation while the
// runtime is not active.
func Inactive(op string) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindInactive,
		Op:     op,
		Detail: "runtime not loaded and initialised",
	}
}

// NotLoaded creates the error returned when an operation requires a loaded library
func NotLoaded(phase Phase, op string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotLoaded,
		Op:     op,
		Detail: "library not loaded",
	}
}

// Unbound creates a call-time fault for a symbol the library did not export
func Unbound(symbol string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindUnbound,
		Symbol: symbol,
		Detail: "symbol not exported by library",
	}
}

// TypeMismatch creates an argument mismatch error for a bound call
func TypeMismatch(symbol string, index int, want, got string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindTypeMismatch,
		Symbol: symbol,
		Detail: fmt.Sprintf("argument %d: want %s, got %s", index, want, got),
		Value:  index,
	}
}

// ArgCount creates an arity mismatch error for a bound call
func ArgCount(symbol string, want, got int) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindTypeMismatch,
		Symbol: symbol,
		Detail: fmt.Sprintf("want %d arguments, got %d", want, got),
		Value:  got,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, what string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("%s %d out of bounds (length %d)", what, index, length),
		Value:  index,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, op, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Op:     op,
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

// Layout creates a packed layout error for a struct that could not be encoded or decoded
func Layout(what string, want, got int) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindLayout,
		Detail: fmt.Sprintf("%s: want %d bytes, got %d", what, want, got),
		Value:  got,
	}
}

// Device wraps a fault raised by the device while invoking a symbol
func Device(phase Phase, symbol string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDevice,
		Symbol: symbol,
		Cause:  cause,
	}
}

// Panic wraps a recovered panic from a native call
func Panic(phase Phase, op string, v any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindPanic,
		Op:     op,
		Detail: fmt.Sprint(v),
		Value:  v,
	}
}

// Library creates a library open/release error
func Library(phase Phase, path string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLibrary,
		Detail: path,
		Cause:  cause,
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

// NotFoundError is returned when the device library cannot be located
type NotFoundError struct {
	Name     string   // library file name, e.g. "libvoxiebox.so"
	Searched []string // every location tried, in search order
}

// NewNotFoundError creates an error listing the searched locations
func NewNotFoundError(name string, searched []string) *NotFoundError {
	return &NotFoundError{
		Name:     name,
		Searched: append([]string(nil), searched...),
	}
}

func (e *NotFoundError) Error() string {
	if len(e.Searched) == 0 {
		return fmt.Sprintf("[locate] not_found: %s", e.Name)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[locate] not_found: %s (searched %d location(s)):", e.Name, len(e.Searched)))
	for _, loc := range e.Searched {
		b.WriteString("\n  - ")
		b.WriteString(loc)
	}
	return b.String()
}

// Is reports whether target matches this error type
func (e *NotFoundError) Is(target error) bool {
	switch t := target.(type) {
	case *NotFoundError:
		return true
	case *Error:
		return t.Phase == PhaseLocate && t.Kind == KindNotFound
	}
	return false
}
