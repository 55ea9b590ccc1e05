// Package runtime drives a Voxon device library through its lifecycle and
// per-frame protocol.
//
// # Quick Start
//
//	rt := runtime.New(runtime.Config{})
//	defer rt.Close()
//
//	if err := rt.Load(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := rt.Initialise(); err != nil {
//	    log.Fatal(err)
//	}
//
//	for {
//	    breath, err := rt.FrameStart()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if !breath {
//	        break
//	    }
//	    rt.DrawGuidelines()
//	    rt.FrameEnd()
//	}
//
// runtime.With does the same and guarantees Shutdown and Unload on every
// exit path:
//
//	err := runtime.With(cfg, func(rt *runtime.Runtime) error { ... })
//
// # States
//
//	Unloaded     Load()       -> Loaded
//	Loaded       Initialise() -> Initialised (active)
//	Initialised  Shutdown()   -> Loaded
//	Loaded       Unload()     -> Unloaded
//
// Load and Initialise are no-ops when already in the target state.
// Shutdown never returns an error; teardown faults are logged and written to
// the log file. Unload releases the library until its reference count is
// zero.
//
// # Inactive Calls
//
// Every device-facing method requires an active runtime. Called while
// inactive it returns its zero value and an error matching
// errors.ErrInactive, without calling the library:
//
//	if _, err := rt.ButtonDown(0, input.A); errors.Is(err, vxerrors.ErrInactive) {
//	    // not initialised
//	}
//
// # Frames
//
//	FrameStart  voxie_breath, voxie_frame_start, voxie_setview, controller
//	            and SpaceNav refresh; returns whether the device had breath
//	draw calls  use the frame context of the current frame
//	FrameEnd    voxie_frame_end, then voxie_getvw
//
// # Parameters
//
// Emulator setters clamp to a closed range, re-initialise the device and
// return the value applied:
//
//	SetEmulatorHorizontalAngle  [-3.142, 3.142] rad
//	SetEmulatorVerticalAngle    [-1.571, 0] rad
//	SetEmulatorDistance         [400, 4000]
//
// SetAspectRatio rejects non-positive components and keeps the stored
// ratio.
package runtime
