package simulator

import (
	"fmt"
	"sync"

	voxon "github.com/wippyai/voxon-runtime"
	"github.com/wippyai/voxon-runtime/abi"
	"github.com/wippyai/voxon-runtime/bind"
	"github.com/wippyai/voxon-runtime/errors"
)

// DefaultVersion is what voxie_getversion reports unless overridden.
const DefaultVersion int64 = 20240601

// Call is one recorded entry point invocation.
type Call struct {
	Name string
	Args []any
}

// MenuItem is a menu entry registered through voxie_menu_additem.
type MenuItem struct {
	Text  string
	ID    int32
	Type  int32
	Down  int32
	Col   int32
	Value float64
	Min   float64
	Max   float64
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithPath sets the path the simulator reports.
func WithPath(path string) Option {
	return func(s *Simulator) { s.path = path }
}

// WithVersion sets the library version.
func WithVersion(v int64) Option {
	return func(s *Simulator) { s.version = v }
}

// WithoutSymbols makes the named exports unresolvable.
func WithoutSymbols(names ...string) Option {
	return func(s *Simulator) {
		for _, n := range names {
			s.omitted[n] = true
		}
	}
}

// WithRefs sets the initial reference count, as if the library had been
// opened n times.
func WithRefs(n int) Option {
	return func(s *Simulator) { s.refs = n }
}

// WithBlades sets the spinner blade count written by voxie_loadini_int.
func WithBlades(n int32) Option {
	return func(s *Simulator) { s.ini.NBlades = n }
}

// WithPointerSize sets the pointer width reported to the runtime.
func WithPointerSize(n int) Option {
	return func(s *Simulator) { s.ptrSize = n }
}

// Simulator is a scripted device library.
type Simulator struct {
	mu sync.Mutex

	path    string
	version int64
	ptrSize int
	refs    int
	omitted map[string]bool
	fail    map[string]error
	panics  map[string]any

	calls []Call

	ini       abi.WindConfig
	vw        abi.WindConfig
	inits     int
	uninits   int
	quit      bool
	breaths   int
	frames    int
	view      [6]float32
	inFrame   bool
	mouse     abi.Inputs
	lastBStat int32

	pads      [4]abi.Xbox
	connected [4]bool
	rumble    [4][2]float32
	nav       abi.Nav
	keys      map[int32]int32
	keyQueue  []int32

	menu      abi.MenuHandler
	menuItems map[int32]*MenuItem
	menuTabs  []string

	handlers map[string]func(args []any) (any, error)
}

var _ voxon.Library = (*Simulator)(nil)

// New creates a simulator with one reference and every symbol exported.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		path:      "simulator",
		version:   DefaultVersion,
		ptrSize:   8,
		refs:      1,
		omitted:   map[string]bool{},
		fail:      map[string]error{},
		panics:    map[string]any{},
		keys:      map[int32]int32{},
		menuItems: map[int32]*MenuItem{},
		ini:       DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handlers = s.table()
	return s
}

// DefaultConfig is the configuration voxie_loadini_int reports.
func DefaultConfig() abi.WindConfig {
	return abi.WindConfig{
		UseEmu:      1,
		EmuHAng:     0,
		EmuVAng:     -0.5,
		EmuDist:     2000,
		XDim:        912,
		YDim:        1140,
		ProjRate:    107,
		FramePerVol: 12,
		UseCol:      0,
		DispNum:     1,
		AspX:        1,
		AspY:        1,
		AspZ:        0.4,
		Gamma:       1,
		Density:     1,
		Aspr:        1,
		AsprMin:     0.2,
		SndFXVol:    100,
	}
}

// Opener returns a voxon.Opener that hands out s for any path.
func (s *Simulator) Opener() voxon.Opener {
	return func(path string) (voxon.Library, error) {
		s.mu.Lock()
		if s.path == "simulator" && path != "" {
			s.path = path
		}
		s.mu.Unlock()
		return s, nil
	}
}

func (s *Simulator) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

func (s *Simulator) PointerSize() int { return s.ptrSize }

// Release drops one reference.
func (s *Simulator) Release() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail["release"]; err != nil {
		return s.refs, err
	}
	if s.refs > 0 {
		s.refs--
	}
	return s.refs, nil
}

// Resolve returns the handler for name. Omitted or unknown names fail.
func (s *Simulator) Resolve(name string, sig abi.Signature) (voxon.Func, error) {
	if s.omitted[name] {
		return nil, fmt.Errorf("simulator: %s not exported", name)
	}
	h, ok := s.handlers[name]
	if !ok {
		return nil, fmt.Errorf("simulator: unknown symbol %s", name)
	}
	if sym, ok := bind.Lookup(name); ok && sym.Signature().String() != sig.String() {
		return nil, errors.New(errors.PhaseBind, errors.KindTypeMismatch).
			Symbol(name).
			Detail("simulator exports %s, asked for %s", sym.Signature(), sig).
			Build()
	}

	return func(args ...any) (any, error) {
		s.mu.Lock()
		s.calls = append(s.calls, Call{Name: name, Args: args})
		err := s.fail[name]
		p, shouldPanic := s.panics[name]
		s.mu.Unlock()

		if shouldPanic {
			panic(p)
		}
		if err != nil {
			return sig.Result.Zero(), errors.Device(errors.PhaseCall, name, err)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		return h(args)
	}, nil
}

// FailOn makes name return err on every call. A nil err clears it.
// The name "release" makes Release fail.
func (s *Simulator) FailOn(name string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.fail, name)
		return
	}
	s.fail[name] = err
}

// PanicOn makes name panic with v on every call.
func (s *Simulator) PanicOn(name string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panics[name] = v
}

// Calls returns the recorded calls.
func (s *Simulator) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallNames returns the names of the recorded calls in order.
func (s *Simulator) CallNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	for i, c := range s.calls {
		out[i] = c.Name
	}
	return out
}

// Count returns how many times name was called.
func (s *Simulator) Count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// ResetCalls clears the call log.
func (s *Simulator) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

// Refs returns the remaining reference count.
func (s *Simulator) Refs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refs
}
