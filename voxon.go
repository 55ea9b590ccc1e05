package voxon

import "github.com/wippyai/voxon-runtime/abi"

// Func is a resolved entry point. Arguments are Go values matching the
// symbol's abi.Signature; the result is int32, int64, float32, float64, or
// nil for void.
type Func func(args ...any) (any, error)

// Library is an opened device library. Backends: native (dlopen /
// LoadLibrary), wasmdev (wazero) and simulator (in-process).
type Library interface {
	// Path identifies where the library was opened from.
	Path() string

	// PointerSize is the width in bytes of a pointer on the library side.
	PointerSize() int

	// Resolve looks up an exported entry point. A missing export returns an
	// error; the binder records it as unbound.
	Resolve(name string, sig abi.Signature) (Func, error)

	// Release drops one reference to the library and reports how many
	// remain.
	Release() (remaining int, err error)
}

// Opener opens the library at path.
type Opener func(path string) (Library, error)
