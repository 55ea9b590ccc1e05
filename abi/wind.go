package abi

// WindSize is the packed size of voxie_wind_t.
const WindSize = 584

// DisplaySize is the packed size of voxie_disp_t.
const DisplaySize = 96

// Point2 is a 2D keystone corner.
type Point2 struct {
	X, Y float32
}

// Display holds per-projector calibration (voxie_disp_t).
type Display struct {
	Keystone         [8]Point2 // quadrilateral compensation corners
	ColoR, ColoG     int32     // startup values for RGB colour mode
	ColoB            int32
	MonoR, MonoG     int32 // startup values for mono mode
	MonoB            int32
	MirrorX, MirrorY int32 // projector hardware flipping
}

// WindConfig is the device configuration record (voxie_wind_t). It is read
// from the device at startup, edited locally and pushed back with
// voxie_init.
type WindConfig struct {
	// Emulation
	UseEmu  int32   // 0=hardware, 1=emulated 2D view, 2=emulated for 2D display
	EmuHAng float32 // emulator horizontal angle (radians)
	EmuVAng float32 // emulator vertical angle (radians)
	EmuDist float32 // emulator distance

	// Display
	XDim, YDim  int32 // projector dimensions
	ProjRate    int32 // projector rate in Hz {60..107}
	FramePerVol int32 // projector frames per volume {1..16}
	UseCol      int32 // 0=mono white, 1=full colour, -1..-6 single hue
	DispNum     int32 // number of displays
	BitsPerVol  int32
	Disp        [3]Display

	// Actuator
	HWSyncFrame0    int32 // first frame offset (-1 disables sync hw)
	HWSyncPhase     int32
	HWSyncAmp       [4]int32 // amplitude {0..65536} per channel
	HWSyncPha       [4]int32 // phase {0..65536} per channel
	HWSyncLevThresh int32
	VoxieVol        int32 // sine wave amplitude {0..100}

	// Render
	ILaceMode   int32
	DrawStroke  int32 // 1=up stroke, 2=down stroke, 3=both
	Dither      int32
	Smear       int32
	UseKeystone int32
	Flip        int32
	MenuOnVoxie int32
	AspX, AspY  float32 // aspect ratio, read from the device ini
	AspZ        float32
	Gamma       float32
	Density     float32

	// Audio
	SndFXVol     int32 // effects amplitude {0..100}
	VoxieAud     int32 // motor audio channel
	ExclAudio    int32
	SndFXAud     [2]int32 // effects channels, left and right
	PlaySampRate int32    // written by voxie_init
	PlayNChans   int32
	RecSampRate  int32
	RecNChans    int32

	// Misc
	IsRecording int32 // 1 while a .REC recording is in progress (written by device)
	Hacks       int32
	DispCur     int32

	// Obsolete, kept for layout
	Freq  float64
	Phase float64

	// Helix
	ThreadOverrideHack int32
	MotorTyp           int32
	ClipShape          int32 // 0=rectangle (aspx, aspy), 1=circle (aspr)
	GoalRPM            int32
	CPMaxRPM           int32
	IAngHak            [3]int32
	UpnDow             int32 // 0=sawtooth, 1=triangle
	NBlades            int32 // 0=VX1, 1+=spinner blade count
	UseJoy             int32
	Reserved2          [2]int32
	AsprMin            float32
	SyncUSBOffset      float32
	SenseMask          [3]int32
	OutCol             [3]int32
	Aspr               float32
	SawtoothRat        float32
}

func (d *Display) encode(e *encoder) {
	for _, k := range d.Keystone {
		e.f32(k.X)
		e.f32(k.Y)
	}
	e.i32s([]int32{d.ColoR, d.ColoG, d.ColoB, d.MonoR, d.MonoG, d.MonoB, d.MirrorX, d.MirrorY})
}

func (d *Display) decode(r *decoder) {
	for i := range d.Keystone {
		d.Keystone[i].X = r.f32()
		d.Keystone[i].Y = r.f32()
	}
	d.ColoR, d.ColoG, d.ColoB = r.i32(), r.i32(), r.i32()
	d.MonoR, d.MonoG, d.MonoB = r.i32(), r.i32(), r.i32()
	d.MirrorX, d.MirrorY = r.i32(), r.i32()
}

// MarshalBinary encodes the packed voxie_wind_t layout.
func (w *WindConfig) MarshalBinary() ([]byte, error) {
	e := newEncoder(WindSize, 8)

	e.i32(w.UseEmu)
	e.f32(w.EmuHAng)
	e.f32(w.EmuVAng)
	e.f32(w.EmuDist)

	e.i32s([]int32{w.XDim, w.YDim, w.ProjRate, w.FramePerVol, w.UseCol, w.DispNum, w.BitsPerVol})
	for i := range w.Disp {
		w.Disp[i].encode(e)
	}

	e.i32(w.HWSyncFrame0)
	e.i32(w.HWSyncPhase)
	e.i32s(w.HWSyncAmp[:])
	e.i32s(w.HWSyncPha[:])
	e.i32(w.HWSyncLevThresh)
	e.i32(w.VoxieVol)

	e.i32s([]int32{w.ILaceMode, w.DrawStroke, w.Dither, w.Smear, w.UseKeystone, w.Flip, w.MenuOnVoxie})
	e.f32(w.AspX)
	e.f32(w.AspY)
	e.f32(w.AspZ)
	e.f32(w.Gamma)
	e.f32(w.Density)

	e.i32(w.SndFXVol)
	e.i32(w.VoxieAud)
	e.i32(w.ExclAudio)
	e.i32s(w.SndFXAud[:])
	e.i32s([]int32{w.PlaySampRate, w.PlayNChans, w.RecSampRate, w.RecNChans})

	e.i32s([]int32{w.IsRecording, w.Hacks, w.DispCur})

	e.f64(w.Freq)
	e.f64(w.Phase)

	e.i32s([]int32{w.ThreadOverrideHack, w.MotorTyp, w.ClipShape, w.GoalRPM, w.CPMaxRPM})
	e.i32s(w.IAngHak[:])
	e.i32s([]int32{w.UpnDow, w.NBlades, w.UseJoy})
	e.i32s(w.Reserved2[:])
	e.f32(w.AsprMin)
	e.f32(w.SyncUSBOffset)
	e.i32s(w.SenseMask[:])
	e.i32s(w.OutCol[:])
	e.f32(w.Aspr)
	e.f32(w.SawtoothRat)

	return e.b, nil
}

// UnmarshalBinary decodes the packed voxie_wind_t layout.
func (w *WindConfig) UnmarshalBinary(b []byte) error {
	r, err := newDecoder("voxie_wind_t", b, WindSize, 8)
	if err != nil {
		return err
	}

	w.UseEmu = r.i32()
	w.EmuHAng = r.f32()
	w.EmuVAng = r.f32()
	w.EmuDist = r.f32()

	w.XDim, w.YDim, w.ProjRate, w.FramePerVol = r.i32(), r.i32(), r.i32(), r.i32()
	w.UseCol, w.DispNum, w.BitsPerVol = r.i32(), r.i32(), r.i32()
	for i := range w.Disp {
		w.Disp[i].decode(r)
	}

	w.HWSyncFrame0 = r.i32()
	w.HWSyncPhase = r.i32()
	r.i32s(w.HWSyncAmp[:])
	r.i32s(w.HWSyncPha[:])
	w.HWSyncLevThresh = r.i32()
	w.VoxieVol = r.i32()

	w.ILaceMode, w.DrawStroke, w.Dither, w.Smear = r.i32(), r.i32(), r.i32(), r.i32()
	w.UseKeystone, w.Flip, w.MenuOnVoxie = r.i32(), r.i32(), r.i32()
	w.AspX, w.AspY, w.AspZ = r.f32(), r.f32(), r.f32()
	w.Gamma = r.f32()
	w.Density = r.f32()

	w.SndFXVol = r.i32()
	w.VoxieAud = r.i32()
	w.ExclAudio = r.i32()
	r.i32s(w.SndFXAud[:])
	w.PlaySampRate, w.PlayNChans, w.RecSampRate, w.RecNChans = r.i32(), r.i32(), r.i32(), r.i32()

	w.IsRecording, w.Hacks, w.DispCur = r.i32(), r.i32(), r.i32()

	w.Freq = r.f64()
	w.Phase = r.f64()

	w.ThreadOverrideHack, w.MotorTyp, w.ClipShape = r.i32(), r.i32(), r.i32()
	w.GoalRPM, w.CPMaxRPM = r.i32(), r.i32()
	r.i32s(w.IAngHak[:])
	w.UpnDow, w.NBlades, w.UseJoy = r.i32(), r.i32(), r.i32()
	r.i32s(w.Reserved2[:])
	w.AsprMin = r.f32()
	w.SyncUSBOffset = r.f32()
	r.i32s(w.SenseMask[:])
	r.i32s(w.OutCol[:])
	w.Aspr = r.f32()
	w.SawtoothRat = r.f32()

	return nil
}

// Buffer encodes w as a pointer argument.
func (w *WindConfig) Buffer() *Buffer {
	b, _ := w.MarshalBinary()
	return NewBuffer(b)
}
