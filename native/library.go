package native

import (
	"path/filepath"
	"strings"
	"sync"
	"unsafe"

	voxon "github.com/wippyai/voxon-runtime"
	"github.com/wippyai/voxon-runtime/abi"
	"github.com/wippyai/voxon-runtime/errors"
)

// PointerSize is the pointer width of the running process.
const PointerSize = int(unsafe.Sizeof(uintptr(0)))

// opened counts process-wide opens per path. Every Open is one OS-level
// reference; Release drops one.
var (
	openedMu sync.Mutex
	opened   = map[string]int{}
)

// Library is a shared object opened with the platform loader.
type Library struct {
	path   string
	handle uintptr
	menu   Handle
}

var _ voxon.Library = (*Library)(nil)

// Open loads the library at path. Backslashes are normalised the way the
// vendor installers record paths.
func Open(path string) (voxon.Library, error) {
	path = filepath.Clean(strings.ReplaceAll(path, `\`, "/"))

	h, err := dlopen(path)
	if err != nil {
		return nil, errors.Library(errors.PhaseLoad, path, err)
	}

	openedMu.Lock()
	opened[path]++
	openedMu.Unlock()

	return &Library{path: path, handle: h}, nil
}

func (l *Library) Path() string { return l.path }

func (l *Library) PointerSize() int { return PointerSize }

// Resolve looks up name and wraps it as a callable of the given signature.
func (l *Library) Resolve(name string, sig abi.Signature) (voxon.Func, error) {
	if l.handle == 0 {
		return nil, errors.NotLoaded(errors.PhaseBind, name)
	}
	addr, err := dlsym(l.handle, name)
	if err != nil {
		return nil, err
	}
	if addr == 0 {
		return nil, errors.New(errors.PhaseBind, errors.KindNotFound).Symbol(name).Build()
	}
	return newCaller(l, name, sig, addr).call, nil
}

// Release drops one OS reference. Once none remain the handle is cleared
// and the menu handler, if any, is freed.
func (l *Library) Release() (int, error) {
	openedMu.Lock()
	defer openedMu.Unlock()

	n := opened[l.path]
	if n == 0 || l.handle == 0 {
		return 0, nil
	}

	if err := dlclose(l.handle); err != nil {
		return n, errors.Library(errors.PhaseUnload, l.path, err)
	}

	n--
	if n == 0 {
		delete(opened, l.path)
		l.handle = 0
		l.setMenu(nil)
	} else {
		opened[l.path] = n
	}
	return n, nil
}
