package abi

// Packed geometry record sizes.
const (
	Point3Size = 12
	PolSize    = 16
	PoltexSize = 24
)

// Point3 is a position or direction in device space (point3d).
type Point3 struct {
	X, Y, Z float32
}

// Pol is a polygon vertex (pol_t). P2 is the index of the next vertex
// in the loop.
type Pol struct {
	X, Y, Z float32
	P2      int32
}

// Poltex is a textured mesh vertex (poltex_t).
type Poltex struct {
	X, Y, Z float32
	U, V    float32
	Col     int32
}

// Buffer encodes p as a point3d pointer argument.
func (p Point3) Buffer() *Buffer {
	return Points([]Point3{p})
}

// Points encodes a point3d array.
func Points(ps []Point3) *Buffer {
	e := newEncoder(len(ps)*Point3Size, 8)
	for _, p := range ps {
		e.f32(p.X)
		e.f32(p.Y)
		e.f32(p.Z)
	}
	return NewBuffer(e.b)
}

// DecodePoint3 reads a single point3d.
func DecodePoint3(b []byte) (Point3, error) {
	r, err := newDecoder("point3d", b, Point3Size, 8)
	if err != nil {
		return Point3{}, err
	}
	return Point3{X: r.f32(), Y: r.f32(), Z: r.f32()}, nil
}

// Pols encodes a pol_t array.
func Pols(ps []Pol) *Buffer {
	e := newEncoder(len(ps)*PolSize, 8)
	for _, p := range ps {
		e.f32(p.X)
		e.f32(p.Y)
		e.f32(p.Z)
		e.i32(p.P2)
	}
	return NewBuffer(e.b)
}

// Poltexes encodes a poltex_t array.
func Poltexes(vs []Poltex) *Buffer {
	e := newEncoder(len(vs)*PoltexSize, 8)
	for _, v := range vs {
		e.f32(v.X)
		e.f32(v.Y)
		e.f32(v.Z)
		e.f32(v.U)
		e.f32(v.V)
		e.i32(v.Col)
	}
	return NewBuffer(e.b)
}

// Indices encodes an int array (mesh indices, LED values).
func Indices(vs []int32) *Buffer {
	e := newEncoder(len(vs)*4, 8)
	e.i32s(vs)
	return NewBuffer(e.b)
}

// DecodeIndices reads n ints from b.
func DecodeIndices(b []byte, n int) ([]int32, error) {
	r, err := newDecoder("int[]", b, n*4, 8)
	if err != nil {
		return nil, err
	}
	out := make([]int32, n)
	r.i32s(out)
	return out, nil
}

// DecodePoltexes reads n poltex_t records from b.
func DecodePoltexes(b []byte, n int) ([]Poltex, error) {
	r, err := newDecoder("poltex_t[]", b, n*PoltexSize, 8)
	if err != nil {
		return nil, err
	}
	out := make([]Poltex, n)
	for i := range out {
		out[i] = Poltex{X: r.f32(), Y: r.f32(), Z: r.f32(), U: r.f32(), V: r.f32(), Col: r.i32()}
	}
	return out, nil
}

// DecodePols reads n pol_t records from b.
func DecodePols(b []byte, n int) ([]Pol, error) {
	r, err := newDecoder("pol_t[]", b, n*PolSize, 8)
	if err != nil {
		return nil, err
	}
	out := make([]Pol, n)
	for i := range out {
		out[i] = Pol{X: r.f32(), Y: r.f32(), Z: r.f32(), P2: r.i32()}
	}
	return out, nil
}
