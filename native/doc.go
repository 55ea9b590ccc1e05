// Package native opens the device library as a shared object and resolves
// its entry points into voxon.Func values without cgo.
//
// On Linux and macOS the library is opened with purego's Dlopen; on Windows
// with LoadLibrary from golang.org/x/sys/windows. Calls go through
// purego.RegisterFunc over a function type built from the symbol's
// abi.Signature.
//
// Pointer arguments (*abi.Buffer) are pinned for the duration of a call and
// their nested Refs are patched with live addresses. Menu callbacks share a
// single purego trampoline; the Go handler is found through the userdata
// handle the backend passes alongside it.
package native
