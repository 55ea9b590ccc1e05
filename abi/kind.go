package abi

import (
	"fmt"
	"strings"

	"github.com/wippyai/voxon-runtime/errors"
)

// Kind is the C-ABI class of a parameter or result.
type Kind uint8

const (
	Void     Kind = iota // no value (results only)
	I32                  // int
	I64                  // int64_t / long long
	F32                  // float
	F64                  // double
	Ptr                  // pointer to a caller buffer, Go value *Buffer (nil is NULL)
	CString              // NUL-terminated ASCII string, Go value string
	Callback             // function pointer, Go value MenuHandler (nil is NULL)
)

var kindNames = [...]string{
	Void:     "void",
	I32:      "i32",
	I64:      "i64",
	F32:      "f32",
	F64:      "f64",
	Ptr:      "ptr",
	CString:  "cstring",
	Callback: "callback",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Accepts reports whether v is a valid Go value for an argument of kind k.
func (k Kind) Accepts(v any) bool {
	switch k {
	case I32:
		_, ok := v.(int32)
		return ok
	case I64:
		_, ok := v.(int64)
		return ok
	case F32:
		_, ok := v.(float32)
		return ok
	case F64:
		_, ok := v.(float64)
		return ok
	case Ptr:
		if v == nil {
			return true
		}
		_, ok := v.(*Buffer)
		return ok
	case CString:
		_, ok := v.(string)
		return ok
	case Callback:
		if v == nil {
			return true
		}
		_, ok := v.(MenuHandler)
		return ok
	}
	return false
}

// Signature is the statically declared shape of an exported entry point.
type Signature struct {
	Params []Kind
	Result Kind
}

// Sig builds a Signature.
func Sig(result Kind, params ...Kind) Signature {
	return Signature{Params: params, Result: result}
}

func (s Signature) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.String()
	}
	return s.Result.String() + "(" + strings.Join(parts, ", ") + ")"
}

// Has reports whether any parameter has kind k.
func (s Signature) Has(k Kind) bool {
	for _, p := range s.Params {
		if p == k {
			return true
		}
	}
	return false
}

// Check validates the Go argument values for a call through symbol.
// It catches Go-side mistakes only; the native ABI itself cannot be verified.
func (s Signature) Check(symbol string, args []any) error {
	if len(args) != len(s.Params) {
		return errors.ArgCount(symbol, len(s.Params), len(args))
	}
	for i, p := range s.Params {
		if !p.Accepts(args[i]) {
			return errors.TypeMismatch(symbol, i, p.String(), fmt.Sprintf("%T", args[i]))
		}
	}
	return nil
}

// Zero returns the zero Go value of a result kind.
func (k Kind) Zero() any {
	switch k {
	case I32:
		return int32(0)
	case I64:
		return int64(0)
	case F32:
		return float32(0)
	case F64:
		return float64(0)
	}
	return nil
}

// Buffer is caller memory passed to the device by reference. The device
// may write into Data; after the call Data holds what it wrote.
type Buffer struct {
	Data []byte
	Refs []Ref
}

// Ref is a nested pointer: the backend stores the address of Data at
// Offset inside the parent buffer, using its own pointer width.
type Ref struct {
	Data   []byte
	Offset int
}

// NewBuffer wraps data as a pointer argument.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{Data: data}
}

// MenuHandler receives menu updates from the device. how is the device's
// interaction code (1 = button down, 2 = button up, 3 = value changed...).
type MenuHandler func(id int, text string, value float64, how int)
