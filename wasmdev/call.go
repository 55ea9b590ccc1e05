package wasmdev

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/voxon-runtime/abi"
	"github.com/wippyai/voxon-runtime/errors"
)

type caller struct {
	dev   *Device
	fn    api.Function
	name  string
	sig   abi.Signature
	stack []uint64
}

// copyBack is a buffer staged in guest memory that returns to Go after the
// call.
type copyBack struct {
	data []byte
	addr uint32
}

func (c *caller) call(args ...any) (any, error) {
	d := c.dev
	if d.module == nil {
		return nil, errors.NotLoaded(errors.PhaseCall, c.name)
	}
	if len(args) != len(c.sig.Params) {
		return nil, errors.ArgCount(c.name, len(c.sig.Params), len(args))
	}

	if err := d.reserve(stagedSize(c.sig, args)); err != nil {
		return nil, err
	}

	next := d.scratch
	place := func(b []byte) uint32 {
		addr := next
		d.mem.Write(addr, b)
		next += align8(uint32(len(b)))
		return addr
	}

	var back []copyBack
	for i, p := range c.sig.Params {
		switch p {
		case abi.I32:
			c.stack[i] = api.EncodeI32(args[i].(int32))
		case abi.I64:
			c.stack[i] = api.EncodeI64(args[i].(int64))
		case abi.F32:
			c.stack[i] = api.EncodeF32(args[i].(float32))
		case abi.F64:
			c.stack[i] = api.EncodeF64(args[i].(float64))
		case abi.CString:
			s := args[i].(string)
			c.stack[i] = uint64(place(append([]byte(s), 0)))
		case abi.Ptr:
			buf, _ := args[i].(*abi.Buffer)
			if buf == nil || len(buf.Data) == 0 {
				c.stack[i] = 0
				continue
			}
			for _, ref := range buf.Refs {
				var addr uint32
				if len(ref.Data) > 0 {
					addr = place(ref.Data)
					back = append(back, copyBack{data: ref.Data, addr: addr})
				}
				abi.PutWord(buf.Data, ref.Offset, PointerSize, uint64(addr))
			}
			addr := place(buf.Data)
			back = append(back, copyBack{data: buf.Data, addr: addr})
			c.stack[i] = uint64(addr)
		default:
			return nil, errors.Unsupported(errors.PhaseCall, fmt.Sprintf("%s argument %d of kind %s", c.name, i, p))
		}
	}

	if err := c.fn.CallWithStack(d.ctx, c.stack); err != nil {
		return nil, errors.Device(errors.PhaseCall, c.name, err)
	}

	for _, cb := range back {
		if view, ok := d.mem.Read(cb.addr, uint32(len(cb.data))); ok {
			copy(cb.data, view)
		}
	}

	switch c.sig.Result {
	case abi.I32:
		return api.DecodeI32(c.stack[0]), nil
	case abi.I64:
		return int64(c.stack[0]), nil
	case abi.F32:
		return api.DecodeF32(c.stack[0]), nil
	case abi.F64:
		return api.DecodeF64(c.stack[0]), nil
	}
	return nil, nil
}

func align8(n uint32) uint32 {
	return (n + 7) &^ 7
}

// stagedSize is the scratch space a call needs for its pointer and string
// arguments.
func stagedSize(sig abi.Signature, args []any) uint32 {
	var n uint32
	for i, p := range sig.Params {
		switch p {
		case abi.CString:
			s, _ := args[i].(string)
			n += align8(uint32(len(s)) + 1)
		case abi.Ptr:
			buf, _ := args[i].(*abi.Buffer)
			if buf == nil {
				continue
			}
			n += align8(uint32(len(buf.Data)))
			for _, ref := range buf.Refs {
				n += align8(uint32(len(ref.Data)))
			}
		}
	}
	return n
}
