package wasmdev

import (
	"context"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	voxon "github.com/wippyai/voxon-runtime"
	"github.com/wippyai/voxon-runtime/abi"
	"github.com/wippyai/voxon-runtime/errors"
)

// PointerSize is the wasm32 pointer width.
const PointerSize = 4

const pageSize = 65536

// Config holds configuration for device creation.
type Config struct {
	// MemoryLimitPages caps the module's memory in 64KB pages.
	// 0 means the wazero default.
	MemoryLimitPages uint32
}

// Device is an instantiated WebAssembly device library.
type Device struct {
	ctx      context.Context
	runtime  wazero.Runtime
	module   api.Module
	mem      api.Memory
	path     string
	refs     int
	scratch  uint32 // base of the backend's scratch region
	capacity uint32 // bytes available at scratch
}

var _ voxon.Library = (*Device)(nil)

// Opener returns a voxon.Opener that reads the module from a file path.
func Opener(ctx context.Context, cfg *Config) voxon.Opener {
	return func(path string) (voxon.Library, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Library(errors.PhaseLoad, path, err)
		}
		return Load(ctx, path, data, cfg)
	}
}

// Load compiles and instantiates wasm. name is reported as the library path.
func Load(ctx context.Context, name string, wasm []byte, cfg *Config) (*Device, error) {
	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg != nil && cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	rt := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	compiled, err := rt.CompileModule(ctx, wasm)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Library(errors.PhaseLoad, name, fmt.Errorf("compile: %w", err))
	}

	for _, imp := range compiled.ImportedFunctions() {
		if mod, _, _ := imp.Import(); mod == wasi_snapshot_preview1.ModuleName {
			if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
				_ = rt.Close(ctx)
				return nil, errors.Library(errors.PhaseLoad, name, fmt.Errorf("instantiate WASI: %w", err))
			}
			break
		}
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("voxiebox"))
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Library(errors.PhaseLoad, name, fmt.Errorf("instantiate: %w", err))
	}

	return &Device{
		ctx:     ctx,
		runtime: rt,
		module:  mod,
		mem:     mod.Memory(),
		path:    name,
		refs:    1,
	}, nil
}

func (d *Device) Path() string { return d.path }

func (d *Device) PointerSize() int { return PointerSize }

// Retain adds a reference, mirroring a second open of the same library.
func (d *Device) Retain() {
	d.refs++
}

// Release drops a reference; the module and its runtime close with the last.
func (d *Device) Release() (int, error) {
	if d.refs == 0 {
		return 0, nil
	}
	d.refs--
	if d.refs > 0 {
		return d.refs, nil
	}

	err := d.runtime.Close(d.ctx)
	d.module = nil
	d.mem = nil
	if err != nil {
		return 0, errors.Library(errors.PhaseUnload, d.path, err)
	}
	return 0, nil
}

// Resolve checks the export's wasm type against sig and wraps it.
func (d *Device) Resolve(name string, sig abi.Signature) (voxon.Func, error) {
	if d.module == nil {
		return nil, errors.NotLoaded(errors.PhaseBind, name)
	}
	if sig.Has(abi.Callback) {
		return nil, errors.Unsupported(errors.PhaseBind, "callbacks into a wasm device")
	}

	fn := d.module.ExportedFunction(name)
	if fn == nil {
		return nil, errors.New(errors.PhaseBind, errors.KindNotFound).Symbol(name).Build()
	}
	if (sig.Has(abi.Ptr) || sig.Has(abi.CString)) && d.mem == nil {
		return nil, errors.Unsupported(errors.PhaseBind, "pointer arguments without exported memory")
	}
	if err := checkTypes(name, sig, fn.Definition()); err != nil {
		return nil, err
	}

	c := &caller{dev: d, name: name, sig: sig, fn: fn, stack: make([]uint64, max(len(sig.Params), 1))}
	return c.call, nil
}

func valueType(k abi.Kind) api.ValueType {
	switch k {
	case abi.I64:
		return api.ValueTypeI64
	case abi.F32:
		return api.ValueTypeF32
	case abi.F64:
		return api.ValueTypeF64
	}
	return api.ValueTypeI32
}

func checkTypes(name string, sig abi.Signature, def api.FunctionDefinition) error {
	params := def.ParamTypes()
	results := def.ResultTypes()

	mismatch := func(detail string) error {
		return errors.New(errors.PhaseBind, errors.KindTypeMismatch).Symbol(name).Detail("%s", detail).Build()
	}

	if len(params) != len(sig.Params) {
		return mismatch(fmt.Sprintf("export takes %d params, want %d", len(params), len(sig.Params)))
	}
	for i, p := range sig.Params {
		if params[i] != valueType(p) {
			return mismatch(fmt.Sprintf("param %d is %s, want %s", i, api.ValueTypeName(params[i]), api.ValueTypeName(valueType(p))))
		}
	}

	switch {
	case sig.Result == abi.Void && len(results) != 0:
		return mismatch("export returns a value, want void")
	case sig.Result != abi.Void && (len(results) != 1 || results[0] != valueType(sig.Result)):
		return mismatch("result type differs from " + sig.Result.String())
	}
	return nil
}

// reserve ensures n bytes of scratch space, growing memory when needed.
func (d *Device) reserve(n uint32) error {
	if n <= d.capacity {
		return nil
	}
	pages := (n - d.capacity + pageSize - 1) / pageSize
	prev, ok := d.mem.Grow(pages)
	if !ok {
		return errors.New(errors.PhaseCall, errors.KindDevice).Detail("cannot grow memory by %d pages", pages).Build()
	}
	end := prev * pageSize
	if d.capacity == 0 || d.scratch+d.capacity != end {
		// The module grew memory itself since the last reservation; start a
		// fresh region at the new pages.
		d.scratch = end
		d.capacity = pages * pageSize
		return nil
	}
	d.capacity += pages * pageSize
	return nil
}
