package runtime

import (
	stderrors "errors"

	"go.uber.org/multierr"

	"github.com/wippyai/voxon-runtime/abi"
	"github.com/wippyai/voxon-runtime/bind"
	"github.com/wippyai/voxon-runtime/errors"
)

// FrameStart pumps the device, begins a frame, sets the view to the
// aspect-ratio cuboid and refreshes controller and SpaceNav input. It
// reports whether the device had breath; a breath-less frame still
// refreshes input and the view, so callers can skip rendering without
// losing input continuity.
func (r *Runtime) FrameStart() (bool, error) {
	if err := r.gate("FrameStart"); err != nil {
		return false, err
	}

	insBuf := abi.NewBuffer(make([]byte, abi.InputsSize))
	res, err := r.table.Call(bind.Breath, insBuf)
	if err != nil {
		return false, frameError("FrameStart", bind.Breath, err)
	}
	if err := r.ins.UnmarshalBinary(insBuf.Data); err != nil {
		return false, frameError("FrameStart", bind.Breath, err)
	}
	code, _ := res.(int32)
	breath := code == 0

	ptrSize := r.lib.PointerSize()
	if len(r.vf) != abi.FrameSize(ptrSize) {
		r.vf = make([]byte, abi.FrameSize(ptrSize))
	}
	if _, err := r.table.Call(bind.FrameStart, abi.NewBuffer(r.vf)); err != nil {
		return false, frameError("FrameStart", bind.FrameStart, err)
	}
	if err := r.frame.Decode(r.vf, ptrSize); err != nil {
		return false, frameError("FrameStart", bind.FrameStart, err)
	}

	var errs error
	ax, ay, az := r.vw.AspX, r.vw.AspY, r.vw.AspZ
	// setview writes the view transform into the frame
	if _, err := r.table.Call(bind.SetView, r.frameBuffer(), -ax, -ay, -az, ax, ay, az); err != nil {
		multierr.AppendInto(&errs, frameError("FrameStart", bind.SetView, err))
	} else if err := r.frame.Decode(r.vf, ptrSize); err != nil {
		multierr.AppendInto(&errs, frameError("FrameStart", bind.SetView, err))
	}
	if err := r.controllers.Advance(r.readController); err != nil {
		multierr.AppendInto(&errs, frameError("FrameStart", bind.XboxRead, err))
	}
	if err := r.readNav(); err != nil {
		multierr.AppendInto(&errs, frameError("FrameStart", bind.NavRead, err))
	}
	return breath, errs
}

// FrameEnd finishes the frame and re-reads the device configuration so
// getters see device-side changes made during the frame.
func (r *Runtime) FrameEnd() error {
	if err := r.gate("FrameEnd"); err != nil {
		return err
	}
	if _, err := r.table.Call(bind.FrameEnd); err != nil {
		return frameError("FrameEnd", bind.FrameEnd, err)
	}
	if _, err := r.exchangeConfig(bind.GetVW); err != nil {
		return frameError("FrameEnd", bind.GetVW, err)
	}
	return nil
}

// Frame returns the frame context of the current frame.
func (r *Runtime) Frame() (abi.Frame, error) {
	if err := r.gate("Frame"); err != nil {
		return abi.Frame{}, err
	}
	return r.frame, nil
}

// Config returns a copy of the local device configuration.
func (r *Runtime) Config() (abi.WindConfig, error) {
	if err := r.gate("Config"); err != nil {
		return abi.WindConfig{}, err
	}
	return r.vw, nil
}

// frameBuffer returns the frame context as a pointer argument. Before the
// first FrameStart it is a zeroed record.
func (r *Runtime) frameBuffer() *abi.Buffer {
	if r.vf == nil {
		r.vf = make([]byte, abi.FrameSize(r.lib.PointerSize()))
	}
	return abi.NewBuffer(r.vf)
}

// readController is the input.Reader over voxie_xbox_read. A library
// without controller support leaves every slot untouched.
func (r *Runtime) readController(slot int, x *abi.Xbox) error {
	b, _ := x.MarshalBinary()
	buf := abi.NewBuffer(b)
	if _, err := r.table.Call(bind.XboxRead, int32(slot), buf); err != nil {
		if stderrors.Is(err, errors.ErrUnbound) {
			return nil
		}
		return err
	}
	return x.UnmarshalBinary(buf.Data)
}

func (r *Runtime) readNav() error {
	b, _ := r.nav.MarshalBinary()
	buf := abi.NewBuffer(b)
	if _, err := r.table.Call(bind.NavRead, int32(0), buf); err != nil {
		if stderrors.Is(err, errors.ErrUnbound) {
			return nil
		}
		return err
	}
	return r.nav.UnmarshalBinary(buf.Data)
}

func frameError(op string, s bind.Symbol, cause error) error {
	var e *errors.Error
	if stderrors.As(cause, &e) && e.Phase == errors.PhaseFrame {
		return cause
	}
	return errors.New(errors.PhaseFrame, errors.KindDevice).
		Op(op).
		Symbol(s.String()).
		Cause(cause).
		Build()
}
