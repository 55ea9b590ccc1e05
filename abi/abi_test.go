package abi

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	verrors "github.com/wippyai/voxon-runtime/errors"
)

func TestRecordSizes(t *testing.T) {
	wind, _ := (&WindConfig{}).MarshalBinary()
	xbox, _ := (&Xbox{}).MarshalBinary()
	ins, _ := (&Inputs{}).MarshalBinary()
	nav, _ := (&Nav{}).MarshalBinary()

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"voxie_wind_t", len(wind), WindSize},
		{"voxie_xbox_t", len(xbox), XboxSize},
		{"voxie_inputs_t", len(ins), InputsSize},
		{"voxie_nav_t", len(nav), NavSize},
		{"voxie_frame_t/8", len((&Frame{}).Encode(8)), 112},
		{"voxie_frame_t/4", len((&Frame{}).Encode(4)), 84},
		{"tiletype/8", len((&Tile{}).Buffer(8).Data), 32},
		{"tiletype/4", len((&Tile{}).Buffer(4).Data), 16},
		{"point3d[2]", len(Points(make([]Point3, 2)).Data), 24},
		{"pol_t[3]", len(Pols(make([]Pol, 3)).Data), 48},
		{"poltex_t[1]", len(Poltexes(make([]Poltex, 1)).Data), 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("size = %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestWindConfigOffsets(t *testing.T) {
	w := WindConfig{
		UseEmu:      1,
		XDim:        912,
		ProjRate:    100,
		AspX:        1,
		AspY:        0.444,
		AspZ:        1,
		Freq:        1.5,
		NBlades:     2,
		Aspr:        0.9,
		SawtoothRat: 0.25,
	}
	w.Disp[2].MirrorY = 7
	w.OutCol[2] = 0x0000ff

	b, err := w.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	i32 := func(off int) int32 { return int32(binary.LittleEndian.Uint32(b[off:])) }
	f32 := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b[off:])) }

	if got := i32(0); got != 1 {
		t.Errorf("useemu = %d", got)
	}
	if got := i32(16); got != 912 {
		t.Errorf("xdim = %d", got)
	}
	if got := i32(24); got != 100 {
		t.Errorf("projrate = %d", got)
	}
	// disp[2].mirrory is the last field of the display block
	if got := i32(44 + 3*DisplaySize - 4); got != 7 {
		t.Errorf("disp[2].mirrory = %d", got)
	}
	if got := f32(408); got != 1 {
		t.Errorf("aspx = %v", got)
	}
	if got := f32(412); got != 0.444 {
		t.Errorf("aspy = %v", got)
	}
	if got := math.Float64frombits(binary.LittleEndian.Uint64(b[476:])); got != 1.5 {
		t.Errorf("freq = %v", got)
	}
	if got := i32(528); got != 2 {
		t.Errorf("nblades = %d", got)
	}
	if got := i32(572); got != 0x0000ff {
		t.Errorf("outcol[2] = %#x", got)
	}
	if got := f32(576); got != 0.9 {
		t.Errorf("aspr = %v", got)
	}
	if got := f32(580); got != 0.25 {
		t.Errorf("sawtoothrat = %v", got)
	}
}

func TestWindConfigRoundTrip(t *testing.T) {
	w := WindConfig{EmuHAng: -0.5, EmuVAng: -1.2, EmuDist: 2000, UseCol: -3, ClipShape: 1}
	w.Disp[0].Keystone[3] = Point2{X: 0.1, Y: -0.2}
	w.SenseMask = [3]int32{0xff0000, 0x00ff00, 0}

	b, _ := w.MarshalBinary()
	var got WindConfig
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatal(err)
	}
	if got != w {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, w)
	}
}

func TestShortBuffer(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"wind", func() error { return (&WindConfig{}).UnmarshalBinary(make([]byte, 100)) }},
		{"xbox", func() error { return (&Xbox{}).UnmarshalBinary(make([]byte, 15)) }},
		{"inputs", func() error { return (&Inputs{}).UnmarshalBinary(nil) }},
		{"nav", func() error { return (&Nav{}).UnmarshalBinary(make([]byte, 27)) }},
		{"frame", func() error { return (&Frame{}).Decode(make([]byte, 84), 8) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, &verrors.Error{Phase: verrors.PhaseCall, Kind: verrors.KindLayout}) {
				t.Errorf("error %v should be a layout error", err)
			}
		})
	}
}

func TestXbox(t *testing.T) {
	x := Xbox{But: 0x1001, LT: 255, RT: -1, TX0: -32768, TY0: 32767, TX1: 5, TY1: -5, Hat: 2}
	b, _ := x.MarshalBinary()
	if binary.LittleEndian.Uint16(b) != 0x1001 {
		t.Errorf("but at offset 0 = %#x", binary.LittleEndian.Uint16(b))
	}
	if int16(binary.LittleEndian.Uint16(b[6:])) != -32768 {
		t.Error("tx0 should be at offset 6")
	}

	var got Xbox
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatal(err)
	}
	if got != x {
		t.Errorf("got %+v, want %+v", got, x)
	}
}

func TestFramePointerWidth(t *testing.T) {
	f := Frame{F: 0xdeadbeef, X: 640, Y: 480, XMul: 2, ZAdd: -1}
	f.F2D = Tile{F: 0x1000, P: 2560, X: 640, Y: 480}

	for _, ptr := range []int{4, 8} {
		b := f.Encode(ptr)
		if Word(b, 0, ptr) != 0xdeadbeef {
			t.Errorf("ptr=%d: f = %#x", ptr, Word(b, 0, ptr))
		}
		if got := int32(binary.LittleEndian.Uint32(b[3*ptr:])); got != 640 {
			t.Errorf("ptr=%d: x = %d", ptr, got)
		}

		var got Frame
		if err := got.Decode(b, ptr); err != nil {
			t.Fatal(err)
		}
		if got.F2D.P != 2560 || got.XMul != 2 || got.ZAdd != -1 || got.Y != 480 {
			t.Errorf("ptr=%d: decoded %+v", ptr, got)
		}
	}
}

func TestTileRefs(t *testing.T) {
	pixels := make([]byte, 4*4*4)
	tile := NewTile(pixels, 4, 4)
	buf := tile.Buffer(8)

	if len(buf.Refs) != 1 || buf.Refs[0].Offset != 0 {
		t.Fatalf("refs = %+v", buf.Refs)
	}
	if &buf.Refs[0].Data[0] != &pixels[0] {
		t.Error("ref should alias the pixel slice")
	}
	if Word(buf.Data, 8, 8) != 16 {
		t.Errorf("pitch = %d, want 16", Word(buf.Data, 8, 8))
	}

	if buf := (&Tile{}).Buffer(8); len(buf.Refs) != 0 {
		t.Error("tile without pixels should carry no refs")
	}
}

func TestPutWord(t *testing.T) {
	b := make([]byte, 16)
	PutWord(b, 4, 4, 0x11223344)
	if Word(b, 4, 4) != 0x11223344 {
		t.Error("4-byte word mismatch")
	}
	PutWord(b, 8, 8, 0x1122334455667788)
	if Word(b, 8, 8) != 0x1122334455667788 {
		t.Error("8-byte word mismatch")
	}
}

func TestGeometryDecode(t *testing.T) {
	vs := []Poltex{{X: 1, Y: 2, Z: 3, U: 0.5, V: 0.25, Col: 0xffffff}, {Col: -1}}
	got, err := DecodePoltexes(Poltexes(vs).Data, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != vs[0] || got[1] != vs[1] {
		t.Errorf("got %+v", got)
	}

	idx, err := DecodeIndices(Indices([]int32{0, 1, 2, -1}).Data, 4)
	if err != nil {
		t.Fatal(err)
	}
	if idx[3] != -1 {
		t.Errorf("idx = %v", idx)
	}

	p, err := DecodePoint3(Points([]Point3{{X: -1, Y: 0.5, Z: 0.25}}).Data)
	if err != nil {
		t.Fatal(err)
	}
	if p.X != -1 || p.Z != 0.25 {
		t.Errorf("p = %+v", p)
	}

	if _, err := DecodePols(make([]byte, 10), 1); err == nil {
		t.Error("short pol buffer should fail")
	}
}

func TestSignatureCheck(t *testing.T) {
	sig := Sig(I32, Ptr, F32, CString, Callback)

	if sig.String() != "i32(ptr, f32, cstring, callback)" {
		t.Errorf("String() = %q", sig.String())
	}
	if !sig.Has(Callback) || sig.Has(F64) {
		t.Error("Has mismatch")
	}

	tests := []struct {
		name    string
		args    []any
		wantErr bool
	}{
		{"valid", []any{NewBuffer(nil), float32(1), "x", MenuHandler(nil)}, false},
		{"nil pointer and callback", []any{nil, float32(1), "x", nil}, false},
		{"wrong arity", []any{nil}, true},
		{"float64 for f32", []any{nil, 1.0, "x", nil}, true},
		{"int for cstring", []any{nil, float32(1), 3, nil}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sig.Check("voxie_menu_reset", tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, &verrors.Error{Phase: verrors.PhaseCall, Kind: verrors.KindTypeMismatch}) {
				t.Errorf("error %v should be a type mismatch", err)
			}
		})
	}
}

func TestKindZero(t *testing.T) {
	if I32.Zero() != int32(0) || I64.Zero() != int64(0) || F32.Zero() != float32(0) || F64.Zero() != float64(0) {
		t.Error("numeric zero values mismatch")
	}
	if Void.Zero() != nil {
		t.Error("void zero should be nil")
	}
	if Kind(99).String() != "kind(99)" {
		t.Errorf("unknown kind = %q", Kind(99).String())
	}
}
