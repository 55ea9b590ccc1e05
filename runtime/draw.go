package runtime

import (
	"github.com/wippyai/voxon-runtime/abi"
	"github.com/wippyai/voxon-runtime/bind"
	"github.com/wippyai/voxon-runtime/errors"
)

// TextureBackColour is the background colour of textured meshes.
const TextureBackColour int32 = 0x3f3f3f

// White is the colour of guidelines and screen log text.
const White int32 = 0xffffff

// guideInset keeps guidelines inside the clip volume.
const guideInset = 1e-3

// draw runs a void draw symbol with the current frame context prepended.
func (r *Runtime) draw(op string, s bind.Symbol, args ...any) error {
	if err := r.gate(op); err != nil {
		return err
	}
	_, err := r.table.Call(s, append([]any{r.frameBuffer()}, args...)...)
	return err
}

// DrawGuidelines outlines the aspect-ratio volume in white.
func (r *Runtime) DrawGuidelines() error {
	if err := r.gate("DrawGuidelines"); err != nil {
		return err
	}
	ax, ay, az := r.vw.AspX, r.vw.AspY, r.vw.AspZ
	return r.draw("DrawGuidelines", bind.DrawBox,
		-ax+guideInset, -ay+guideInset, -az,
		ax-guideInset, ay-guideInset, az,
		int32(1), White)
}

// DrawLetters prints text starting at pp, with pr the advance and pd the
// down vector of one character.
func (r *Runtime) DrawLetters(pp, pr, pd abi.Point3, col int32, text string) error {
	return r.draw("DrawLetters", bind.PrintAlph, pp.Buffer(), pr.Buffer(), pd.Buffer(), col, text)
}

// DrawBox draws an axis-aligned box. fill is 0 for dots, 1 for edges and 2
// for surfaces.
func (r *Runtime) DrawBox(lo, hi abi.Point3, fill, col int32) error {
	return r.draw("DrawBox", bind.DrawBox, lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z, fill, col)
}

// DrawTexturedMesh draws indexed vertices textured with tex.
func (r *Runtime) DrawTexturedMesh(tex *abi.Tile, vertices []abi.Poltex, indices []int32, flags int32) error {
	if err := r.gate("DrawTexturedMesh"); err != nil {
		return err
	}
	if tex == nil {
		return errors.InvalidInput(errors.PhaseRuntime, "DrawTexturedMesh", "texture is nil")
	}
	return r.draw("DrawTexturedMesh", bind.DrawMeshTex,
		tex.Buffer(r.lib.PointerSize()),
		abi.Poltexes(vertices), int32(len(vertices)),
		abi.Indices(indices), int32(len(indices)),
		flags, TextureBackColour)
}

// DrawUntexturedMesh draws indexed vertices in col.
func (r *Runtime) DrawUntexturedMesh(vertices []abi.Poltex, indices []int32, flags, col int32) error {
	return r.draw("DrawUntexturedMesh", bind.DrawMeshTex,
		nil,
		abi.Poltexes(vertices), int32(len(vertices)),
		abi.Indices(indices), int32(len(indices)),
		flags, col)
}

// DrawSphere draws a sphere. solid 0 draws the surface only.
func (r *Runtime) DrawSphere(p abi.Point3, radius float32, solid, col int32) error {
	return r.draw("DrawSphere", bind.DrawSph, p.X, p.Y, p.Z, radius, solid, col)
}

// DrawCone draws a capped cone between two spheres.
func (r *Runtime) DrawCone(p0 abi.Point3, r0 float32, p1 abi.Point3, r1 float32, solid, col int32) error {
	return r.draw("DrawCone", bind.DrawCone, p0.X, p0.Y, p0.Z, r0, p1.X, p1.Y, p1.Z, r1, solid, col)
}

func (r *Runtime) DrawVoxel(p abi.Point3, col int32) error {
	return r.draw("DrawVoxel", bind.DrawVox, p.X, p.Y, p.Z, col)
}

// DrawVoxels draws points[i] in cols[i], last to first.
func (r *Runtime) DrawVoxels(points []abi.Point3, cols []int32) error {
	if err := r.gate("DrawVoxels"); err != nil {
		return err
	}
	if len(cols) < len(points) {
		return errors.InvalidInput(errors.PhaseRuntime, "DrawVoxels", "fewer colours than points")
	}
	vf := r.frameBuffer()
	for i := len(points) - 1; i >= 0; i-- {
		p := points[i]
		if _, err := r.table.Call(bind.DrawVox, vf, p.X, p.Y, p.Z, cols[i]); err != nil {
			return err
		}
	}
	return nil
}

// DrawVoxelBatch draws every point in col, last to first.
func (r *Runtime) DrawVoxelBatch(points []abi.Point3, col int32) error {
	if err := r.gate("DrawVoxelBatch"); err != nil {
		return err
	}
	vf := r.frameBuffer()
	for i := len(points) - 1; i >= 0; i-- {
		p := points[i]
		if _, err := r.table.Call(bind.DrawVox, vf, p.X, p.Y, p.Z, col); err != nil {
			return err
		}
	}
	return nil
}

// DrawCube draws a parallelepiped at pp spanned by pr, pd and pf.
func (r *Runtime) DrawCube(pp, pr, pd, pf abi.Point3, flags, col int32) error {
	return r.draw("DrawCube", bind.DrawCube, pp.Buffer(), pr.Buffer(), pd.Buffer(), pf.Buffer(), flags, col)
}

func (r *Runtime) DrawLine(from, to abi.Point3, col int32) error {
	return r.draw("DrawLine", bind.DrawLin, from.X, from.Y, from.Z, to.X, to.Y, to.Z, col)
}

// DrawPolygon fills a closed polygon. Each vertex's P2 links to the next.
func (r *Runtime) DrawPolygon(points []abi.Pol, col int32) error {
	return r.draw("DrawPolygon", bind.DrawPol, abi.Pols(points), int32(len(points)), col)
}

// DrawHeightmap extrudes tex over the parallelepiped at pp. Pixels equal
// to colorKey are skipped.
func (r *Runtime) DrawHeightmap(tex *abi.Tile, pp, pr, pd, pf abi.Point3, colorKey, minHeight, flags int32) (float32, error) {
	if err := r.gate("DrawHeightmap"); err != nil {
		return 0, err
	}
	if tex == nil {
		return 0, errors.InvalidInput(errors.PhaseRuntime, "DrawHeightmap", "texture is nil")
	}
	res, err := r.table.Call(bind.DrawHeiMap, r.frameBuffer(), tex.Buffer(r.lib.PointerSize()),
		pp.Buffer(), pr.Buffer(), pd.Buffer(), pf.Buffer(), colorKey, minHeight, flags)
	if err != nil {
		return 0, err
	}
	v, _ := res.(float32)
	return v, nil
}

// DrawSprite draws a model file loaded by the device. It reports whether
// the file could be drawn.
func (r *Runtime) DrawSprite(file string, pp, pr, pd, pf abi.Point3, col int32) (bool, error) {
	if err := r.gate("DrawSprite"); err != nil {
		return false, err
	}
	res, err := r.table.Call(bind.DrawSpr, r.frameBuffer(), file,
		pp.Buffer(), pr.Buffer(), pd.Buffer(), pf.Buffer(), col)
	if err != nil {
		return false, err
	}
	v, _ := res.(int32)
	return v != 0, nil
}

// SetLEDs sets the projector LED levels.
func (r *Runtime) SetLEDs(red, green, blue int32) error {
	_, err := r.call("SetLEDs", bind.SetLEDs, red, green, blue)
	return err
}

// PlaySound plays a sound file on channel with per-side volume percentages.
func (r *Runtime) PlaySound(file string, channel, leftVol, rightVol int32, freqMul float32) error {
	_, err := r.call("PlaySound", bind.PlaySound, file, channel, leftVol, rightVol, freqMul)
	return err
}

// ScreenCapture asks the device to capture the next volume.
func (r *Runtime) ScreenCapture() error {
	_, err := r.call("ScreenCapture", bind.DoScreenCap)
	return err
}

// Clock returns the device clock in seconds.
func (r *Runtime) Clock() (float64, error) {
	res, err := r.call("Clock", bind.KLock)
	if err != nil {
		return 0, err
	}
	v, _ := res.(float64)
	return v, nil
}

// ReadKey pops the next typed key, or 0 when the buffer is empty.
func (r *Runtime) ReadKey() (int32, error) {
	res, err := r.call("ReadKey", bind.KeyRead)
	if err != nil {
		return 0, err
	}
	v, _ := res.(int32)
	return v, nil
}

// Rumble sets the controller motor speeds of slot.
func (r *Runtime) Rumble(slot int, left, right float32) error {
	if err := r.gate("Rumble"); err != nil {
		return err
	}
	if _, err := r.controllers.Slot(slot); err != nil {
		return err
	}
	_, err := r.table.Call(bind.XboxWrite, int32(slot), left, right)
	return err
}

// FreeFile drops a file from the device's cache. An empty name frees all.
func (r *Runtime) FreeFile(name string) error {
	_, err := r.call("FreeFile", bind.Free, name)
	return err
}

// LogToScreen prints white text on the device's 2D overlay.
func (r *Runtime) LogToScreen(x, y int32, text string) error {
	_, err := r.call("LogToScreen", bind.DebugPrint6x8, x, y, White, int32(0), text)
	return err
}

func (r *Runtime) DebugPixel(x, y, col int32) error {
	_, err := r.call("DebugPixel", bind.DebugDrawPix, x, y, col)
	return err
}

func (r *Runtime) DebugHLine(x0, x1, y, col int32) error {
	_, err := r.call("DebugHLine", bind.DebugDrawHLin, x0, x1, y, col)
	return err
}

func (r *Runtime) DebugLine(x0, y0, x1, y1 float32, col int32) error {
	_, err := r.call("DebugLine", bind.DebugDrawLine, x0, y0, x1, y1, col)
	return err
}

func (r *Runtime) DebugCircle(x, y, radius, col int32) error {
	_, err := r.call("DebugCircle", bind.DebugDrawCirc, x, y, radius, col)
	return err
}

func (r *Runtime) DebugRectFill(x0, y0, x1, y1, col int32) error {
	_, err := r.call("DebugRectFill", bind.DebugDrawRectFill, x0, y0, x1, y1, col)
	return err
}

func (r *Runtime) DebugCircleFill(x, y, radius, col int32) error {
	_, err := r.call("DebugCircleFill", bind.DebugDrawCircFill, x, y, radius, col)
	return err
}
