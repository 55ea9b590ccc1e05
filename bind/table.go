package bind

import (
	"sort"

	"go.uber.org/zap"

	voxon "github.com/wippyai/voxon-runtime"
	"github.com/wippyai/voxon-runtime/errors"
)

// Binding is one resolved entry point. The zero value is unbound.
type Binding struct {
	fn     voxon.Func
	cause  error
	Symbol Symbol
}

// Bound reports whether the library exported the symbol.
func (b Binding) Bound() bool {
	return b.fn != nil
}

// Cause is the resolution error of an unbound binding.
func (b Binding) Cause() error {
	return b.cause
}

// Call checks args against the symbol's signature and invokes it. An
// unbound binding fails with errors.ErrUnbound without touching the library.
func (b Binding) Call(args ...any) (any, error) {
	if b.fn == nil {
		err := errors.Unbound(b.Symbol.String())
		err.Cause = b.cause
		return nil, err
	}
	sig := b.Symbol.Signature()
	if err := sig.Check(b.Symbol.String(), args); err != nil {
		return nil, err
	}
	return b.fn(args...)
}

// Table maps every Symbol to its Binding for one opened library.
type Table struct {
	lib      voxon.Library
	bindings map[Symbol]Binding
}

// Bind resolves every symbol against lib. Each resolution is independent;
// a missing export never fails the pass, it leaves that binding unbound.
func Bind(lib voxon.Library) *Table {
	t := &Table{
		lib:      lib,
		bindings: make(map[Symbol]Binding, symbolCount),
	}

	log := Logger().With(zap.String("library", lib.Path()))
	for _, s := range Symbols() {
		fn, err := lib.Resolve(s.String(), s.Signature())
		if err != nil || fn == nil {
			log.Debug("symbol unbound", zap.Stringer("symbol", s), zap.Error(err))
			t.bindings[s] = Binding{Symbol: s, cause: err}
			continue
		}
		t.bindings[s] = Binding{Symbol: s, fn: fn}
	}

	if missing := t.Missing(); len(missing) > 0 {
		log.Debug("bind complete", zap.Int("bound", len(t.bindings)-len(missing)), zap.Int("unbound", len(missing)))
	}
	return t
}

// Library returns the library the table was bound against.
func (t *Table) Library() voxon.Library {
	return t.lib
}

// Get returns the binding for s. Unknown symbols return an unbound binding.
func (t *Table) Get(s Symbol) Binding {
	if b, ok := t.bindings[s]; ok {
		return b
	}
	return Binding{Symbol: s}
}

// Bound reports whether s resolved.
func (t *Table) Bound(s Symbol) bool {
	return t.Get(s).Bound()
}

// BoundAll reports whether every symbol in syms resolved.
func (t *Table) BoundAll(syms ...Symbol) bool {
	for _, s := range syms {
		if !t.Bound(s) {
			return false
		}
	}
	return true
}

// Call invokes s through its binding.
func (t *Table) Call(s Symbol, args ...any) (any, error) {
	return t.Get(s).Call(args...)
}

// Missing returns the unbound symbols in declaration order.
func (t *Table) Missing() []Symbol {
	var out []Symbol
	for s, b := range t.bindings {
		if !b.Bound() {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of bound symbols.
func (t *Table) Len() int {
	n := 0
	for _, b := range t.bindings {
		if b.Bound() {
			n++
		}
	}
	return n
}
