// Package errors provides structured error types for the voxon runtime.
//
// Errors are categorized by Phase (where in the lifecycle the error occurred)
// and Kind (error category). The Error type carries the native symbol, the
// runtime operation, a detail message and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCall, errors.KindDevice).
//		Symbol("voxie_init").
//		Op("Initialise").
//		Detail("device returned %d", rc).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unbound("voxie_nav_read")
//	err := errors.Inactive("DrawSphere")
//
// Gated runtime calls return an error matching ErrInactive while the device
// is not loaded and initialised, so callers can tell "device returned zero"
// from "device not ready":
//
//	if errors.Is(err, voxerrors.ErrInactive) { ... }
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
