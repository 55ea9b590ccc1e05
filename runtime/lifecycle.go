package runtime

import (
	stderrors "errors"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	voxon "github.com/wippyai/voxon-runtime"
	"github.com/wippyai/voxon-runtime/abi"
	"github.com/wippyai/voxon-runtime/bind"
	"github.com/wippyai/voxon-runtime/errors"
	"github.com/wippyai/voxon-runtime/input"
)

// SDKNotDetected is reported by SDKVersion when discovery recorded no
// version.
const SDKNotDetected = "SDK Not Detected"

// Runtime owns one device library and drives it through
// Unloaded -> Loaded -> Initialised -> Loaded -> Unloaded.
//
// A Runtime is not safe for concurrent use; callers serialise every call,
// including the FrameStart/FrameEnd bracket.
type Runtime struct {
	cfg  Config
	base *zap.Logger
	log  *zap.Logger
	file *fileLog

	session    string
	lib        voxon.Library
	table      *bind.Table
	sdkVersion string

	initialised bool

	vw          abi.WindConfig
	vf          []byte
	frame       abi.Frame
	ins         abi.Inputs
	nav         abi.Nav
	controllers input.Controllers
}

// New creates an unloaded Runtime.
func New(cfg Config) *Runtime {
	cfg = cfg.withDefaults()
	return &Runtime{
		cfg:  cfg,
		base: cfg.Logger,
		log:  cfg.Logger,
		file: &fileLog{path: cfg.LogFile},
	}
}

// With loads and initialises a Runtime for cfg, runs fn, and shuts the
// device down and unloads the library on every exit from fn, including a
// panic. Teardown errors are combined with fn's error.
func With(cfg Config, fn func(*Runtime) error) (err error) {
	rt := New(cfg)
	defer func() {
		err = multierr.Append(err, rt.Close())
	}()

	if err := rt.Load(); err != nil {
		return err
	}
	if err := rt.Initialise(); err != nil {
		return err
	}
	return fn(rt)
}

// Close shuts down and unloads, then closes the log file.
func (r *Runtime) Close() error {
	err := r.Unload()
	r.file.Close()
	return err
}

// IsLoaded reports whether a library is open.
func (r *Runtime) IsLoaded() bool {
	return r.lib != nil
}

// IsInitialised reports whether the device was initialised.
func (r *Runtime) IsInitialised() bool {
	return r.initialised
}

// IsActive reports whether the runtime is loaded and initialised. Every
// device-facing operation requires it.
func (r *Runtime) IsActive() bool {
	return r.lib != nil && r.initialised
}

// Session identifies the current load in log lines. Empty when unloaded.
func (r *Runtime) Session() string {
	return r.session
}

// Library returns the open library, or nil.
func (r *Runtime) Library() voxon.Library {
	return r.lib
}

// Bindings returns the symbol table of the open library, or nil.
func (r *Runtime) Bindings() *bind.Table {
	return r.table
}

// Load locates, opens and binds the device library. Loading while loaded is
// a logged no-op. On failure the runtime stays unloaded.
func (r *Runtime) Load() error {
	if r.IsLoaded() {
		r.log.Info("library already loaded", zap.String("path", r.lib.Path()))
		return nil
	}

	path, version := r.cfg.LibraryPath, ""
	if path == "" {
		res, err := r.cfg.Locator.Locate()
		if err != nil {
			r.failure("locate library", err)
			return err
		}
		path, version = res.Path, res.Version
		r.log.Debug("library located",
			zap.String("path", res.Path),
			zap.String("source", string(res.Source)),
			zap.String("scope", res.Scope))
	}

	lib, err := r.cfg.Opener(path)
	if err != nil {
		var e *errors.Error
		if !stderrors.As(err, &e) {
			err = errors.Library(errors.PhaseLoad, path, err)
		}
		r.failure("open library", err, zap.String("path", path))
		return err
	}

	r.session = uuid.NewString()
	r.log = r.base.With(zap.String("session", r.session))
	r.lib = lib
	r.table = bind.Bind(lib)
	r.sdkVersion = version

	r.log.Info("library loaded",
		zap.String("path", lib.Path()),
		zap.Int("bound", r.table.Len()),
		zap.Int("unbound", len(r.table.Missing())))
	return nil
}

// Initialise reads the device configuration, derives the clip shape from
// the blade count, pushes it back and captures controller baselines.
// It requires a loaded library and is a no-op when already initialised.
func (r *Runtime) Initialise() error {
	if !r.IsLoaded() {
		return errors.NotLoaded(errors.PhaseInit, "Initialise")
	}
	if r.initialised {
		return nil
	}

	r.resetState()

	if _, err := r.exchangeConfig(bind.LoadIniInt); err != nil {
		err = initError(bind.LoadIniInt, err)
		r.failure("initialise", err)
		return err
	}

	if r.vw.NBlades > 0 {
		r.vw.ClipShape = 1
	} else {
		r.vw.ClipShape = 0
	}

	if err := r.pushConfig(); err != nil {
		err = initError(bind.Init, err)
		r.failure("initialise", err)
		return err
	}

	if err := r.controllers.Calibrate(r.readController); err != nil {
		r.log.Debug("controller baseline incomplete", zap.Error(err))
	}

	r.initialised = true
	r.log.Info("device initialised",
		zap.Int32("nblades", r.vw.NBlades),
		zap.Int32("clipshape", r.vw.ClipShape))
	return nil
}

func initError(s bind.Symbol, cause error) error {
	return errors.New(errors.PhaseInit, errors.KindDevice).
		Op("Initialise").
		Symbol(s.String()).
		Cause(cause).
		Build()
}

// Shutdown stops the device loop and releases device resources. It is only
// effective while active. Every teardown step runs even if an earlier one
// failed; failures and panics are logged, never returned.
func (r *Runtime) Shutdown() {
	if !r.IsActive() {
		return
	}

	var errs error
	r.teardown(&errs, bind.QuitLoop)
	r.teardown(&errs, bind.FrameEnd)
	r.teardown(&errs, bind.GetVW, r.vw.Buffer())
	r.teardown(&errs, bind.Breath, abi.NewBuffer(make([]byte, abi.InputsSize)))
	r.teardown(&errs, bind.UninitInt, int32(0))

	r.initialised = false
	r.resetState()

	if errs != nil {
		r.failure("shutdown", errs, zap.Int("faults", len(multierr.Errors(errs))))
		return
	}
	r.log.Info("device shut down")
}

func (r *Runtime) teardown(errs *error, s bind.Symbol, args ...any) {
	defer func() {
		if p := recover(); p != nil {
			multierr.AppendInto(errs, errors.Panic(errors.PhaseShutdown, s.String(), p))
		}
	}()
	if _, err := r.table.Call(s, args...); err != nil {
		multierr.AppendInto(errs, err)
	}
}

// Unload shuts the device down if active, then releases the library until
// its reference count reaches zero. Release failures are logged and
// returned.
func (r *Runtime) Unload() error {
	if !r.IsLoaded() {
		return nil
	}
	if r.initialised {
		r.Shutdown()
	}

	path := r.lib.Path()
	err := release(r.lib)

	r.lib = nil
	r.table = nil
	r.sdkVersion = ""
	r.resetState()
	r.controllers.Reset()

	if err != nil {
		err = errors.Wrap(errors.PhaseUnload, errors.KindLibrary, err, path)
		r.failure("unload", err)
	} else {
		r.log.Info("library unloaded", zap.String("path", path))
	}
	r.session = ""
	r.log = r.base
	return err
}

// release drops references until none remain. It stops if a release fails
// or the count stops falling.
func release(lib voxon.Library) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Panic(errors.PhaseUnload, "Release", p)
		}
	}()

	last := -1
	for {
		n, err := lib.Release()
		if err != nil {
			return err
		}
		if n <= 0 {
			return nil
		}
		if last >= 0 && n >= last {
			return errors.New(errors.PhaseUnload, errors.KindLibrary).
				Detail("reference count stuck at %d", n).
				Value(n).
				Build()
		}
		last = n
	}
}

// resetState clears the device-facing state. Controller slots persist
// until Unload.
func (r *Runtime) resetState() {
	r.vw = abi.WindConfig{}
	r.frame = abi.Frame{}
	r.ins = abi.Inputs{}
	r.nav = abi.Nav{}
	r.vf = nil
}

// gate returns ErrInactive for op unless the runtime is active.
func (r *Runtime) gate(op string) error {
	if !r.IsActive() {
		return errors.Inactive(op)
	}
	return nil
}

// call invokes s if the runtime is active.
func (r *Runtime) call(op string, s bind.Symbol, args ...any) (any, error) {
	if err := r.gate(op); err != nil {
		return nil, err
	}
	return r.table.Call(s, args...)
}

// exchangeConfig passes the local configuration to s and takes back what
// the device wrote.
func (r *Runtime) exchangeConfig(s bind.Symbol) (any, error) {
	buf := r.vw.Buffer()
	res, err := r.table.Call(s, buf)
	if err != nil {
		return res, err
	}
	if err := r.vw.UnmarshalBinary(buf.Data); err != nil {
		return res, err
	}
	return res, nil
}

// pushConfig re-initialises the device with the local configuration.
func (r *Runtime) pushConfig() error {
	res, err := r.exchangeConfig(bind.Init)
	if err != nil {
		return err
	}
	if code, ok := res.(int32); ok && code < 0 {
		return errors.New(errors.PhaseCall, errors.KindDevice).
			Symbol(bind.Init.String()).
			Detail("returned %d", code).
			Value(code).
			Build()
	}
	return nil
}

// failure logs err to the structured logger and appends it to the log
// file.
func (r *Runtime) failure(msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	core := r.file.get(r.log)
	if core == nil {
		r.log.Error(msg, fields...)
		return
	}
	if r.session != "" {
		core = core.With([]zapcore.Field{zap.String("session", r.session)})
	}
	zap.New(zapcore.NewTee(r.log.Core(), core)).Error(msg, fields...)
}

// LogToFile appends msg as one line to the log file. It never fails.
func (r *Runtime) LogToFile(msg string) {
	core := r.file.get(r.log)
	if core == nil {
		return
	}
	l := zap.New(core)
	l.Info(msg)
	_ = l.Sync()
}

// LibraryVersion returns voxie_getversion. It requires a loaded library,
// not an initialised device.
func (r *Runtime) LibraryVersion() (int64, error) {
	if !r.IsLoaded() {
		return 0, errors.NotLoaded(errors.PhaseRuntime, "LibraryVersion")
	}
	res, err := r.table.Call(bind.GetVersion)
	if err != nil {
		return 0, err
	}
	v, _ := res.(int64)
	return v, nil
}

// SDKVersion returns the version recorded by the discovery scope the
// library was found through, or SDKNotDetected.
func (r *Runtime) SDKVersion() string {
	if r.sdkVersion == "" {
		return SDKNotDetected
	}
	return r.sdkVersion
}
