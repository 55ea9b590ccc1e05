// Package simulator is an in-process voxiebox device. It implements
// voxon.Library with Go handlers for every bound symbol, so the runtime can
// be driven end to end without hardware or a native library.
//
// Input is scripted: set controller, mouse, SpaceNav and key state before a
// frame and the next voxie_breath / voxie_xbox_read / voxie_nav_read report
// it. Every call is recorded and can be inspected with Calls.
package simulator
