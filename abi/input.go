package abi

// Packed input record sizes.
const (
	XboxSize   = 16
	InputsSize = 20
	NavSize    = 28
)

// Xbox is one game controller report (voxie_xbox_t).
type Xbox struct {
	But      uint16 // button bitmask
	LT, RT   int16  // triggers
	TX0, TY0 int16  // left stick
	TX1, TY1 int16  // right stick
	Hat      uint16
}

// MarshalBinary encodes the packed voxie_xbox_t layout.
func (x *Xbox) MarshalBinary() ([]byte, error) {
	e := newEncoder(XboxSize, 8)
	e.u16(x.But)
	e.i16(x.LT)
	e.i16(x.RT)
	e.i16(x.TX0)
	e.i16(x.TY0)
	e.i16(x.TX1)
	e.i16(x.TY1)
	e.u16(x.Hat)
	return e.b, nil
}

// UnmarshalBinary decodes the packed voxie_xbox_t layout.
func (x *Xbox) UnmarshalBinary(b []byte) error {
	r, err := newDecoder("voxie_xbox_t", b, XboxSize, 8)
	if err != nil {
		return err
	}
	x.But = r.u16()
	x.LT, x.RT = r.i16(), r.i16()
	x.TX0, x.TY0 = r.i16(), r.i16()
	x.TX1, x.TY1 = r.i16(), r.i16()
	x.Hat = r.u16()
	return nil
}

// Inputs is the mouse snapshot (voxie_inputs_t).
type Inputs struct {
	BStat  int32 // buttons held this frame
	OBStat int32 // buttons held last frame
	DMousX int32
	DMousY int32
	DMousZ int32 // wheel
}

// MarshalBinary encodes the packed voxie_inputs_t layout.
func (in *Inputs) MarshalBinary() ([]byte, error) {
	e := newEncoder(InputsSize, 8)
	e.i32s([]int32{in.BStat, in.OBStat, in.DMousX, in.DMousY, in.DMousZ})
	return e.b, nil
}

// UnmarshalBinary decodes the packed voxie_inputs_t layout.
func (in *Inputs) UnmarshalBinary(b []byte) error {
	r, err := newDecoder("voxie_inputs_t", b, InputsSize, 8)
	if err != nil {
		return err
	}
	in.BStat, in.OBStat = r.i32(), r.i32()
	in.DMousX, in.DMousY, in.DMousZ = r.i32(), r.i32(), r.i32()
	return nil
}

// Nav is a SpaceNav report (voxie_nav_t).
type Nav struct {
	DX, DY, DZ float32 // translation
	AX, AY, AZ float32 // rotation
	But        int32
}

// MarshalBinary encodes the packed voxie_nav_t layout.
func (n *Nav) MarshalBinary() ([]byte, error) {
	e := newEncoder(NavSize, 8)
	for _, v := range []float32{n.DX, n.DY, n.DZ, n.AX, n.AY, n.AZ} {
		e.f32(v)
	}
	e.i32(n.But)
	return e.b, nil
}

// UnmarshalBinary decodes the packed voxie_nav_t layout.
func (n *Nav) UnmarshalBinary(b []byte) error {
	r, err := newDecoder("voxie_nav_t", b, NavSize, 8)
	if err != nil {
		return err
	}
	n.DX, n.DY, n.DZ = r.f32(), r.f32(), r.f32()
	n.AX, n.AY, n.AZ = r.f32(), r.f32(), r.f32()
	n.But = r.i32()
	return nil
}
