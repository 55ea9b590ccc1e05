package runtime

import (
	"fmt"

	"github.com/wippyai/voxon-runtime/errors"
)

// Emulator view bounds. The vertical angle works backwards: 0 looks
// straight on, -1.571 looks down from above.
const (
	MinEmuHAng float32 = -3.142
	MaxEmuHAng float32 = 3.142
	MinEmuVAng float32 = -1.571
	MaxEmuVAng float32 = 0
	MinEmuDist float32 = 400
	MaxEmuDist float32 = 4000
)

// Color modes accepted by SetColorMode.
const (
	ColorMono      int32 = 0  // mono white
	ColorFull      int32 = 1  // full colour, time multiplexed
	ColorRed       int32 = -1 // single hue modes -1..-6
	ColorGreen     int32 = -2
	ColorYellow    int32 = -3
	ColorBlue      int32 = -4
	ColorMagenta   int32 = -5
	ColorCyan      int32 = -6
	ColorRedBlue   int32 = 2 // dual colour modes 2..4, interlaced
	ColorRedGreen  int32 = 3
	ColorBlueGreen int32 = 4
)

// dualColor maps a dual colour mode to the sense mask and output colour of
// its two channels. Channel names follow the projector's LED order.
var dualColor = map[int32][2]int32{
	ColorRedBlue:   {0xff0000, 0x00ff00},
	ColorRedGreen:  {0xff0000, 0x0000ff},
	ColorBlueGreen: {0x00ff00, 0x0000ff},
}

// DefaultAspectRatio is reported while no aspect ratio is configured.
var DefaultAspectRatio = [3]float32{1, 0.444, 1}

// clamp bounds v to [lo, hi]. NaN maps to lo.
func clamp(v, lo, hi float32) float32 {
	if v != v {
		return lo
	}
	return max(lo, min(hi, v))
}

// setClamped clamps v, stores it through field, re-initialises the device
// and returns the stored value.
func (r *Runtime) setClamped(op string, field *float32, v, lo, hi float32) (float32, error) {
	if err := r.gate(op); err != nil {
		return 0, err
	}
	*field = clamp(v, lo, hi)
	err := r.pushConfig()
	return *field, err
}

// SetEmulatorHorizontalAngle clamps rads to [MinEmuHAng, MaxEmuHAng],
// applies it and returns the applied value.
func (r *Runtime) SetEmulatorHorizontalAngle(rads float32) (float32, error) {
	return r.setClamped("SetEmulatorHorizontalAngle", &r.vw.EmuHAng, rads, MinEmuHAng, MaxEmuHAng)
}

// SetEmulatorVerticalAngle clamps rads to [MinEmuVAng, MaxEmuVAng].
func (r *Runtime) SetEmulatorVerticalAngle(rads float32) (float32, error) {
	return r.setClamped("SetEmulatorVerticalAngle", &r.vw.EmuVAng, rads, MinEmuVAng, MaxEmuVAng)
}

// SetEmulatorDistance clamps distance to [MinEmuDist, MaxEmuDist].
func (r *Runtime) SetEmulatorDistance(distance float32) (float32, error) {
	return r.setClamped("SetEmulatorDistance", &r.vw.EmuDist, distance, MinEmuDist, MaxEmuDist)
}

func (r *Runtime) EmulatorHorizontalAngle() (float32, error) {
	if err := r.gate("EmulatorHorizontalAngle"); err != nil {
		return 0, err
	}
	return r.vw.EmuHAng, nil
}

func (r *Runtime) EmulatorVerticalAngle() (float32, error) {
	if err := r.gate("EmulatorVerticalAngle"); err != nil {
		return 0, err
	}
	return r.vw.EmuVAng, nil
}

func (r *Runtime) EmulatorDistance() (float32, error) {
	if err := r.gate("EmulatorDistance"); err != nil {
		return 0, err
	}
	return r.vw.EmuDist, nil
}

// SetAspectRatio sets the half extents used for the view and pushes them
// to the device, so FrameEnd's re-read keeps them. Any non-positive
// component is rejected and the stored values are left unchanged. The new
// ratio applies from the next FrameStart.
func (r *Runtime) SetAspectRatio(x, y, z float32) error {
	if err := r.gate("SetAspectRatio"); err != nil {
		return err
	}
	if x <= 0 || y <= 0 || z <= 0 {
		return errors.New(errors.PhaseRuntime, errors.KindInvalidInput).
			Op("SetAspectRatio").
			Detail("aspect ratio must be positive, got (%g, %g, %g)", x, y, z).
			Value([3]float32{x, y, z}).
			Build()
	}
	r.vw.AspX, r.vw.AspY, r.vw.AspZ = x, y, z
	return r.pushConfig()
}

// AspectRatio returns the stored aspect ratio, or DefaultAspectRatio when
// any component is unset.
func (r *Runtime) AspectRatio() ([3]float32, error) {
	if err := r.gate("AspectRatio"); err != nil {
		return DefaultAspectRatio, err
	}
	if r.vw.AspX <= 0 || r.vw.AspY <= 0 || r.vw.AspZ <= 0 {
		return DefaultAspectRatio, nil
	}
	return [3]float32{r.vw.AspX, r.vw.AspY, r.vw.AspZ}, nil
}

// SetColorMode switches between mono, full colour, single hue (-1..-6) and
// dual colour (2..4) rendering and re-initialises the device.
func (r *Runtime) SetColorMode(mode int32) error {
	if err := r.gate("SetColorMode"); err != nil {
		return err
	}
	if mode < ColorCyan || mode > ColorBlueGreen {
		return errors.InvalidInput(errors.PhaseRuntime, "SetColorMode",
			fmt.Sprintf("color mode %d outside [%d, %d]", mode, ColorCyan, ColorBlueGreen))
	}

	if pair, ok := dualColor[mode]; ok {
		r.vw.UseCol = 1
		r.vw.ILaceMode = 6
		r.vw.SenseMask[0], r.vw.OutCol[0] = pair[0], pair[0]
		r.vw.SenseMask[1], r.vw.OutCol[1] = pair[1], pair[1]
	} else {
		r.vw.ILaceMode = 0
		r.vw.UseCol = mode
	}
	return r.pushConfig()
}

// ColorMode returns the configured usecol value.
func (r *Runtime) ColorMode() (int32, error) {
	if err := r.gate("ColorMode"); err != nil {
		return 0, err
	}
	return r.vw.UseCol, nil
}

// HelixMode reports whether the clip shape is the circular helix volume.
func (r *Runtime) HelixMode() (bool, error) {
	if err := r.gate("HelixMode"); err != nil {
		return false, err
	}
	return r.vw.ClipShape == 1, nil
}

// SetSimulatorHelixMode switches the emulated volume between the
// rectangular and circular clip shape.
func (r *Runtime) SetSimulatorHelixMode(helix bool) error {
	if err := r.gate("SetSimulatorHelixMode"); err != nil {
		return err
	}
	if helix {
		r.vw.ClipShape = 1
	} else {
		r.vw.ClipShape = 0
	}
	return r.pushConfig()
}

func (r *Runtime) ExternalRadius() (float32, error) {
	if err := r.gate("ExternalRadius"); err != nil {
		return 0, err
	}
	return r.vw.Aspr, nil
}

func (r *Runtime) SetExternalRadius(radius float32) error {
	if err := r.gate("SetExternalRadius"); err != nil {
		return err
	}
	r.vw.Aspr = radius
	return r.pushConfig()
}

func (r *Runtime) InternalRadius() (float32, error) {
	if err := r.gate("InternalRadius"); err != nil {
		return 0, err
	}
	return r.vw.AsprMin, nil
}

func (r *Runtime) SetInternalRadius(radius float32) error {
	if err := r.gate("SetInternalRadius"); err != nil {
		return err
	}
	r.vw.AsprMin = radius
	return r.pushConfig()
}

// Volume returns the sound effects volume scaled by 1/65535.
func (r *Runtime) Volume() (float32, error) {
	if err := r.gate("Volume"); err != nil {
		return 0, err
	}
	return float32(r.vw.SndFXVol) / 65535.0, nil
}
