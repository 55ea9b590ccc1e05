package runtime

import (
	"github.com/wippyai/voxon-runtime/abi"
	"github.com/wippyai/voxon-runtime/bind"
	"github.com/wippyai/voxon-runtime/input"
)

// KeyState returns the raw voxie_keystat state of scancode: 0 up, 1 went
// down this frame, other non-zero values held.
func (r *Runtime) KeyState(scancode int32) (int32, error) {
	res, err := r.call("KeyState", bind.KeyStat, scancode)
	if err != nil {
		return 0, err
	}
	v, _ := res.(int32)
	return v, nil
}

// Key reports whether scancode is held.
func (r *Runtime) Key(scancode int32) (bool, error) {
	s, err := r.KeyState(scancode)
	return err == nil && input.KeyHeld(s), err
}

// KeyDown reports whether scancode went down this frame.
func (r *Runtime) KeyDown(scancode int32) (bool, error) {
	s, err := r.KeyState(scancode)
	return err == nil && input.KeyWentDown(s), err
}

// KeyUp reports whether scancode is up.
func (r *Runtime) KeyUp(scancode int32) (bool, error) {
	s, err := r.KeyState(scancode)
	return err == nil && input.KeyIsUp(s), err
}

// MousePosition returns the mouse motion of the last breath.
func (r *Runtime) MousePosition() ([3]float32, error) {
	if err := r.gate("MousePosition"); err != nil {
		return [3]float32{}, err
	}
	return [3]float32{float32(r.ins.DMousX), float32(r.ins.DMousY), float32(r.ins.DMousZ)}, nil
}

// Mouse returns the raw input snapshot of the last breath.
func (r *Runtime) Mouse() (abi.Inputs, error) {
	if err := r.gate("Mouse"); err != nil {
		return abi.Inputs{}, err
	}
	return r.ins, nil
}

func (r *Runtime) MouseButton(b input.MouseButton) (bool, error) {
	if err := r.gate("MouseButton"); err != nil {
		return false, err
	}
	return input.MouseHeld(r.ins, b), nil
}

func (r *Runtime) MouseButtonDown(b input.MouseButton) (bool, error) {
	if err := r.gate("MouseButtonDown"); err != nil {
		return false, err
	}
	return input.MousePressed(r.ins, b), nil
}

func (r *Runtime) MouseButtonUp(b input.MouseButton) (bool, error) {
	if err := r.gate("MouseButtonUp"); err != nil {
		return false, err
	}
	return input.MouseReleased(r.ins, b), nil
}

// Button reports whether b is held on controller slot.
func (r *Runtime) Button(slot int, b input.Button) (bool, error) {
	if err := r.gate("Button"); err != nil {
		return false, err
	}
	return r.controllers.Held(slot, b)
}

// ButtonDown reports whether b went down on slot this frame.
func (r *Runtime) ButtonDown(slot int, b input.Button) (bool, error) {
	if err := r.gate("ButtonDown"); err != nil {
		return false, err
	}
	return r.controllers.Pressed(slot, b)
}

// ButtonUp reports whether b went up on slot this frame.
func (r *Runtime) ButtonUp(slot int, b input.Button) (bool, error) {
	if err := r.gate("ButtonUp"); err != nil {
		return false, err
	}
	return r.controllers.Released(slot, b)
}

// Axis returns an analog control of slot in [-1, 1).
func (r *Runtime) Axis(slot int, a input.Axis) (float32, error) {
	if err := r.gate("Axis"); err != nil {
		return 0, err
	}
	return r.controllers.Axis(slot, a)
}

// Controller returns the two-frame state of slot.
func (r *Runtime) Controller(slot int) (input.Slot, error) {
	if err := r.gate("Controller"); err != nil {
		return input.Slot{}, err
	}
	return r.controllers.Slot(slot)
}

func (r *Runtime) SpaceNavPosition() ([3]float32, error) {
	if err := r.gate("SpaceNavPosition"); err != nil {
		return [3]float32{}, err
	}
	return [3]float32{r.nav.DX, r.nav.DY, r.nav.DZ}, nil
}

func (r *Runtime) SpaceNavRotation() ([3]float32, error) {
	if err := r.gate("SpaceNavRotation"); err != nil {
		return [3]float32{}, err
	}
	return [3]float32{r.nav.AX, r.nav.AY, r.nav.AZ}, nil
}

// SpaceNavButton reports whether any bit of mask is held.
func (r *Runtime) SpaceNavButton(mask int32) (bool, error) {
	if err := r.gate("SpaceNavButton"); err != nil {
		return false, err
	}
	return r.nav.But&mask != 0, nil
}
