package input

import "github.com/wippyai/voxon-runtime/abi"

// MouseHeld reports whether b is down this frame.
func MouseHeld(in abi.Inputs, b MouseButton) bool {
	return in.BStat&int32(b) != 0
}

// MousePressed reports whether b went down this frame.
func MousePressed(in abi.Inputs, b MouseButton) bool {
	return in.BStat&int32(b) != 0 && in.OBStat&int32(b) == 0
}

// MouseReleased reports whether b went up this frame.
func MouseReleased(in abi.Inputs, b MouseButton) bool {
	return in.BStat&int32(b) == 0 && in.OBStat&int32(b) != 0
}

// KeyHeld reports whether a voxie_keystat state is anything but up.
func KeyHeld(state int32) bool { return state != KeyUp }

// KeyWentDown reports whether a voxie_keystat state is the first frame down.
func KeyWentDown(state int32) bool { return state == KeyDown }

// KeyIsUp reports whether a voxie_keystat state is up.
func KeyIsUp(state int32) bool { return state == KeyUp }
