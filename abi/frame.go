package abi

// FrameSize returns the packed size of voxie_frame_t at the given pointer width.
func FrameSize(ptrSize int) int {
	return 7*ptrSize + 56
}

// TileSize returns the packed size of tiletype at the given pointer width.
func TileSize(ptrSize int) int {
	return 4 * ptrSize
}

// Tile is a 2D image (tiletype): pixel address, pitch in bytes and
// dimensions, all pointer-width. When Pixels is set the backend stores its
// address into F.
type Tile struct {
	F      uint64
	P      int64
	X, Y   int64
	Pixels []byte
}

// NewTile wraps 32-bit BGRA pixels of an x by y image.
func NewTile(pixels []byte, x, y int) *Tile {
	return &Tile{P: int64(x) * 4, X: int64(x), Y: int64(y), Pixels: pixels}
}

func (t *Tile) encode(e *encoder) {
	e.word(t.F)
	e.word(uint64(t.P))
	e.word(uint64(t.X))
	e.word(uint64(t.Y))
}

func (t *Tile) decode(r *decoder) {
	t.F = r.word()
	t.P = int64(r.word())
	t.X = int64(r.word())
	t.Y = int64(r.word())
}

// Buffer encodes t at the given pointer width. The pixel address is a Ref
// at offset 0.
func (t *Tile) Buffer(ptrSize int) *Buffer {
	e := newEncoder(TileSize(ptrSize), ptrSize)
	t.encode(e)
	buf := NewBuffer(e.b)
	if t.Pixels != nil {
		buf.Refs = []Ref{{Data: t.Pixels, Offset: 0}}
	}
	return buf
}

// Frame is the per-frame drawing context (voxie_frame_t). The device fills
// it in voxie_frame_start; the caller hands the same bytes back to every
// draw call of that frame.
type Frame struct {
	F, P, FP         uint64 // device framebuffer addresses
	X, Y             int32
	UseCol           int32
	DrawPlanes       int32
	X0, Y0, X1, Y1   int32
	XMul, YMul, ZMul float32
	XAdd, YAdd, ZAdd float32
	F2D              Tile // 2D debug overlay surface
}

// Encode packs f at the given pointer width.
func (f *Frame) Encode(ptrSize int) []byte {
	e := newEncoder(FrameSize(ptrSize), ptrSize)
	e.word(f.F)
	e.word(f.P)
	e.word(f.FP)
	e.i32s([]int32{f.X, f.Y, f.UseCol, f.DrawPlanes, f.X0, f.Y0, f.X1, f.Y1})
	e.f32(f.XMul)
	e.f32(f.YMul)
	e.f32(f.ZMul)
	e.f32(f.XAdd)
	e.f32(f.YAdd)
	e.f32(f.ZAdd)
	f.F2D.encode(e)
	return e.b
}

// Decode unpacks f from b at the given pointer width.
func (f *Frame) Decode(b []byte, ptrSize int) error {
	r, err := newDecoder("voxie_frame_t", b, FrameSize(ptrSize), ptrSize)
	if err != nil {
		return err
	}
	f.F, f.P, f.FP = r.word(), r.word(), r.word()
	f.X, f.Y, f.UseCol, f.DrawPlanes = r.i32(), r.i32(), r.i32(), r.i32()
	f.X0, f.Y0, f.X1, f.Y1 = r.i32(), r.i32(), r.i32(), r.i32()
	f.XMul, f.YMul, f.ZMul = r.f32(), r.f32(), r.f32()
	f.XAdd, f.YAdd, f.ZAdd = r.f32(), r.f32(), r.f32()
	f.F2D.decode(r)
	return nil
}
