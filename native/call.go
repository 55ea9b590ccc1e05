package native

import (
	"fmt"
	"reflect"
	goruntime "runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/wippyai/voxon-runtime/abi"
	"github.com/wippyai/voxon-runtime/errors"
)

var (
	int32Type   = reflect.TypeOf(int32(0))
	int64Type   = reflect.TypeOf(int64(0))
	float32Type = reflect.TypeOf(float32(0))
	float64Type = reflect.TypeOf(float64(0))
	uintptrType = reflect.TypeOf(uintptr(0))
	stringType  = reflect.TypeOf("")
	pointerType = reflect.TypeOf(unsafe.Pointer(nil))
)

func goType(k abi.Kind) reflect.Type {
	switch k {
	case abi.I32:
		return int32Type
	case abi.I64:
		return int64Type
	case abi.F32:
		return float32Type
	case abi.F64:
		return float64Type
	case abi.Ptr:
		return pointerType
	case abi.CString:
		return stringType
	case abi.Callback:
		return uintptrType
	}
	return nil
}

// userdataSlot returns the index of the pointer parameter that follows a
// callback, or -1.
func userdataSlot(sig abi.Signature) int {
	for i, p := range sig.Params {
		if p == abi.Callback && i+1 < len(sig.Params) && sig.Params[i+1] == abi.Ptr {
			return i + 1
		}
	}
	return -1
}

// funcType builds the Go function type purego registers for sig.
func funcType(sig abi.Signature) reflect.Type {
	ud := userdataSlot(sig)
	in := make([]reflect.Type, len(sig.Params))
	for i, p := range sig.Params {
		if i == ud {
			in[i] = uintptrType
			continue
		}
		in[i] = goType(p)
	}
	var out []reflect.Type
	if sig.Result != abi.Void {
		out = []reflect.Type{goType(sig.Result)}
	}
	return reflect.FuncOf(in, out, false)
}

type caller struct {
	lib  *Library
	name string
	sig  abi.Signature
	ud   int
	fn   reflect.Value
}

func newCaller(lib *Library, name string, sig abi.Signature, addr uintptr) *caller {
	fp := reflect.New(funcType(sig))
	purego.RegisterFunc(fp.Interface(), addr)
	return &caller{lib: lib, name: name, sig: sig, ud: userdataSlot(sig), fn: fp.Elem()}
}

func (c *caller) call(args ...any) (result any, err error) {
	if c.lib.handle == 0 {
		return nil, errors.NotLoaded(errors.PhaseCall, c.name)
	}

	var pin goruntime.Pinner
	defer pin.Unpin()

	defer func() {
		if r := recover(); r != nil {
			err = errors.Device(errors.PhaseCall, c.name, fmt.Errorf("%v", r))
		}
	}()

	in, err := c.convert(&pin, args)
	if err != nil {
		return nil, err
	}

	out := c.fn.Call(in)
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

func (c *caller) convert(pin *goruntime.Pinner, args []any) ([]reflect.Value, error) {
	if len(args) != len(c.sig.Params) {
		return nil, errors.ArgCount(c.name, len(c.sig.Params), len(args))
	}

	in := make([]reflect.Value, len(args))
	var userdata uintptr
	for i, p := range c.sig.Params {
		switch {
		case i == c.ud:
			in[i] = reflect.ValueOf(userdata)
		case p == abi.Callback:
			fn, _ := args[i].(abi.MenuHandler)
			var cb uintptr
			cb, userdata = c.lib.setMenu(fn)
			in[i] = reflect.ValueOf(cb)
		case p == abi.Ptr:
			buf, _ := args[i].(*abi.Buffer)
			in[i] = reflect.ValueOf(pinBuffer(pin, buf, PointerSize))
		default:
			if !p.Accepts(args[i]) {
				return nil, errors.TypeMismatch(c.name, i, p.String(), fmt.Sprintf("%T", args[i]))
			}
			in[i] = reflect.ValueOf(args[i])
		}
	}
	return in, nil
}

// pinBuffer pins buf and its refs, patches ref addresses into buf.Data and
// returns the address of buf.Data. A nil or empty buffer is NULL.
func pinBuffer(pin *goruntime.Pinner, buf *abi.Buffer, ptrSize int) unsafe.Pointer {
	if buf == nil || len(buf.Data) == 0 {
		return nil
	}
	for _, ref := range buf.Refs {
		var addr uintptr
		if len(ref.Data) > 0 {
			pin.Pin(&ref.Data[0])
			addr = uintptr(unsafe.Pointer(&ref.Data[0]))
		}
		abi.PutWord(buf.Data, ref.Offset, ptrSize, uint64(addr))
	}
	pin.Pin(&buf.Data[0])
	return unsafe.Pointer(&buf.Data[0])
}
