package abi

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/voxon-runtime/errors"
)

// encoder appends packed little-endian fields.
type encoder struct {
	b   []byte
	ptr int
}

func newEncoder(size, ptrSize int) *encoder {
	return &encoder{b: make([]byte, 0, size), ptr: ptrSize}
}

func (e *encoder) i16(v int16)   { e.b = binary.LittleEndian.AppendUint16(e.b, uint16(v)) }
func (e *encoder) u16(v uint16)  { e.b = binary.LittleEndian.AppendUint16(e.b, v) }
func (e *encoder) i32(v int32)   { e.b = binary.LittleEndian.AppendUint32(e.b, uint32(v)) }
func (e *encoder) f32(v float32) { e.b = binary.LittleEndian.AppendUint32(e.b, math.Float32bits(v)) }
func (e *encoder) f64(v float64) { e.b = binary.LittleEndian.AppendUint64(e.b, math.Float64bits(v)) }

func (e *encoder) word(v uint64) {
	if e.ptr == 4 {
		e.b = binary.LittleEndian.AppendUint32(e.b, uint32(v))
		return
	}
	e.b = binary.LittleEndian.AppendUint64(e.b, v)
}

func (e *encoder) i32s(vs []int32) {
	for _, v := range vs {
		e.i32(v)
	}
}

// decoder reads packed little-endian fields. Callers check the total
// length before reading, so individual reads do not bounds-check.
type decoder struct {
	b   []byte
	off int
	ptr int
}

func newDecoder(what string, b []byte, want, ptrSize int) (*decoder, error) {
	if len(b) < want {
		return nil, errors.Layout(what, want, len(b))
	}
	return &decoder{b: b, ptr: ptrSize}, nil
}

func (d *decoder) i16() int16 {
	v := int16(binary.LittleEndian.Uint16(d.b[d.off:]))
	d.off += 2
	return v
}

func (d *decoder) u16() uint16 {
	v := binary.LittleEndian.Uint16(d.b[d.off:])
	d.off += 2
	return v
}

func (d *decoder) i32() int32 {
	v := int32(binary.LittleEndian.Uint32(d.b[d.off:]))
	d.off += 4
	return v
}

func (d *decoder) f32() float32 {
	v := math.Float32frombits(binary.LittleEndian.Uint32(d.b[d.off:]))
	d.off += 4
	return v
}

func (d *decoder) f64() float64 {
	v := math.Float64frombits(binary.LittleEndian.Uint64(d.b[d.off:]))
	d.off += 8
	return v
}

func (d *decoder) word() uint64 {
	if d.ptr == 4 {
		v := uint64(binary.LittleEndian.Uint32(d.b[d.off:]))
		d.off += 4
		return v
	}
	v := binary.LittleEndian.Uint64(d.b[d.off:])
	d.off += 8
	return v
}

func (d *decoder) i32s(vs []int32) {
	for i := range vs {
		vs[i] = d.i32()
	}
}

// PutWord stores a pointer-width value at off. Backends use it to patch
// Ref addresses into a parent buffer.
func PutWord(b []byte, off, ptrSize int, v uint64) {
	if ptrSize == 4 {
		binary.LittleEndian.PutUint32(b[off:], uint32(v))
		return
	}
	binary.LittleEndian.PutUint64(b[off:], v)
}

// Word reads a pointer-width value at off.
func Word(b []byte, off, ptrSize int) uint64 {
	if ptrSize == 4 {
		return uint64(binary.LittleEndian.Uint32(b[off:]))
	}
	return binary.LittleEndian.Uint64(b[off:])
}
