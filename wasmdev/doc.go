// Package wasmdev runs a device library compiled to WebAssembly under
// wazero and exposes it as a voxon.Library.
//
// The module must export its linear memory as "memory" when any bound
// entry point takes pointers. Pointer and string arguments are copied into
// a scratch region the backend grows at the end of that memory, and copied
// back after the call, so the device sees ordinary 32-bit addresses.
// Modules importing wasi_snapshot_preview1 get wazero's WASI host.
//
// Callback parameters cannot cross into the sandbox; symbols that take one
// resolve with an unsupported error and stay unbound.
package wasmdev
