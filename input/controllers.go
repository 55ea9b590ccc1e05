package input

import (
	"github.com/wippyai/voxon-runtime/abi"
	"github.com/wippyai/voxon-runtime/errors"
)

// MaxControllers is the number of controller slots the device supports.
const MaxControllers = 4

// Reader fills x with the device's report for slot. x holds the previous
// report on entry, the device overwrites what it reports.
type Reader func(slot int, x *abi.Xbox) error

// Slot is one controller's state across two frames.
type Slot struct {
	Current   abi.Xbox
	LastFrame abi.Xbox
	// Offset is the report captured at initialisation. It is kept for
	// calibration and not used by any query.
	Offset abi.Xbox
}

// Controllers diffs controller reports frame to frame.
type Controllers struct {
	slots [MaxControllers]Slot
}

// Reset zeroes every slot.
func (c *Controllers) Reset() {
	c.slots = [MaxControllers]Slot{}
}

// Calibrate zeroes every slot and captures each slot's Offset baseline.
func (c *Controllers) Calibrate(read Reader) error {
	c.Reset()
	var first error
	for i := range c.slots {
		if err := read(i, &c.slots[i].Offset); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Advance rotates Current into LastFrame and reads a fresh Current for
// every slot. All slots are read even if one fails; the first error is
// returned.
func (c *Controllers) Advance(read Reader) error {
	var first error
	for i := range c.slots {
		s := &c.slots[i]
		s.LastFrame = s.Current
		if err := read(i, &s.Current); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Slot returns a copy of slot i.
func (c *Controllers) Slot(i int) (Slot, error) {
	if err := checkSlot(i); err != nil {
		return Slot{}, err
	}
	return c.slots[i], nil
}

func checkSlot(i int) error {
	if i < 0 || i >= MaxControllers {
		return errors.OutOfBounds(errors.PhaseRuntime, "controller", i, MaxControllers)
	}
	return nil
}

// Held reports whether b is down this frame.
func (c *Controllers) Held(slot int, b Button) (bool, error) {
	if err := checkSlot(slot); err != nil {
		return false, err
	}
	return c.slots[slot].Current.But&uint16(b) != 0, nil
}

// Pressed reports whether b went down this frame.
func (c *Controllers) Pressed(slot int, b Button) (bool, error) {
	if err := checkSlot(slot); err != nil {
		return false, err
	}
	s := &c.slots[slot]
	return s.Current.But&uint16(b) != 0 && s.LastFrame.But&uint16(b) == 0, nil
}

// Released reports whether b went up this frame.
func (c *Controllers) Released(slot int, b Button) (bool, error) {
	if err := checkSlot(slot); err != nil {
		return false, err
	}
	s := &c.slots[slot]
	return s.Current.But&uint16(b) == 0 && s.LastFrame.But&uint16(b) != 0, nil
}

// Axis returns an analog value scaled by 1/32768. Unknown axes read 0.
func (c *Controllers) Axis(slot int, a Axis) (float32, error) {
	if err := checkSlot(slot); err != nil {
		return 0, err
	}
	x := &c.slots[slot].Current
	var raw int16
	switch a {
	case LeftTrigger:
		raw = x.LT
	case RightTrigger:
		raw = x.RT
	case LeftStickX:
		raw = x.TX0
	case LeftStickY:
		raw = x.TY0
	case RightStickX:
		raw = x.TX1
	case RightStickY:
		raw = x.TY1
	default:
		return 0, nil
	}
	return float32(raw) / 32768.0, nil
}
