package native

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/wippyai/voxon-runtime/abi"
)

// callbacks holds live menu handlers, addressed by the userdata the
// library hands back to the trampoline.
var callbacks = NewHandles()

var (
	trampolineOnce sync.Once
	trampoline     uintptr
)

// menuTrampoline returns the C entry point for menu updates. purego
// callbacks are never freed, so one is shared by every handler.
func menuTrampoline() uintptr {
	trampolineOnce.Do(func() {
		trampoline = purego.NewCallback(dispatchMenu)
	})
	return trampoline
}

func dispatchMenu(id int32, text *byte, value float64, how int32, userdata uintptr) int32 {
	v, ok := callbacks.Get(Handle(userdata))
	if !ok {
		return 0
	}
	if fn, ok := v.(abi.MenuHandler); ok && fn != nil {
		fn(int(id), goString(text), value, int(how))
	}
	return 1
}

// setMenu installs fn as the library's menu handler, freeing the previous
// one. It returns the function pointer and userdata to pass to the device.
func (l *Library) setMenu(fn abi.MenuHandler) (uintptr, uintptr) {
	if l.menu != 0 {
		callbacks.Drop(l.menu)
		l.menu = 0
	}
	if fn == nil {
		return 0, 0
	}
	l.menu = callbacks.Create(fn)
	return menuTrampoline(), uintptr(l.menu)
}

func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
