// Package voxon binds a Voxon volumetric display, driven by the vendor
// library voxiebox, behind a stable Go API.
//
// # Architecture Overview
//
//	voxon/           Root package with the Library and Func contracts
//	├── abi/         Packed C-ABI records and call signatures
//	├── locate/      Library discovery (co-located, system scopes, PATH)
//	├── bind/        Symbol table resolution into Bound/Unbound bindings
//	├── native/      dlopen/LoadLibrary backend (purego, x/sys/windows)
//	├── wasmdev/     Device library compiled to WebAssembly (wazero)
//	├── simulator/   In-process device for tests and headless runs
//	├── input/       Per-frame controller diffing
//	├── runtime/     Load/Initialise/Shutdown/Unload, frame loop, setters
//	├── errors/      Structured error types
//	└── cmd/vxrun/   Command line tool
//
// # Quick Start
//
//	err := runtime.With(runtime.Config{}, func(rt *runtime.Runtime) error {
//	    for {
//	        ok, err := rt.FrameStart()
//	        if err != nil || !ok {
//	            return err
//	        }
//	        rt.DrawSphere(abi.Point3{}, 0.2, 0, 0xffffff)
//	        if err := rt.FrameEnd(); err != nil {
//	            return err
//	        }
//	    }
//	})
//
// # Lifecycle
//
// A Runtime moves Unloaded → Loaded → Initialised → Loaded → Unloaded.
// Device-facing calls made outside Initialised return their zero value and
// errors.ErrInactive without touching the library.
//
// # Thread Safety
//
// A Runtime is not safe for concurrent use. The device library is not
// reentrant; drive it from one goroutine.
package voxon
