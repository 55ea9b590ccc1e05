package runtime

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/voxon-runtime/abi"
	"github.com/wippyai/voxon-runtime/bind"
	"github.com/wippyai/voxon-runtime/errors"
	"github.com/wippyai/voxon-runtime/input"
	"github.com/wippyai/voxon-runtime/simulator"
)

var origin = abi.Point3{}

func xbox(buttons uint16) abi.Xbox {
	return abi.Xbox{But: buttons}
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func frame(t *testing.T, rt *Runtime) bool {
	t.Helper()
	breath, err := rt.FrameStart()
	require.NoError(t, err)
	require.NoError(t, rt.FrameEnd())
	return breath
}

func TestFrameStart(t *testing.T) {
	rt, sim := newActive(t)
	sim.ResetCalls()

	breath, err := rt.FrameStart()
	require.NoError(t, err)
	assert.True(t, breath)

	names := sim.CallNames()
	require.GreaterOrEqual(t, len(names), 3)
	assert.Equal(t, []string{"voxie_breath", "voxie_frame_start", "voxie_setview"}, names[:3])
	assert.Equal(t, 4, sim.Count("voxie_xbox_read"))
	assert.Equal(t, 1, sim.Count("voxie_nav_read"))

	asp := simulator.DefaultConfig()
	assert.Equal(t, [6]float32{-asp.AspX, -asp.AspY, -asp.AspZ, asp.AspX, asp.AspY, asp.AspZ}, sim.View())

	f, err := rt.Frame()
	require.NoError(t, err)
	assert.Equal(t, asp.XDim, f.X)
	assert.Equal(t, asp.YDim, f.Y)

	require.NoError(t, rt.FrameEnd())
	assert.Equal(t, 1, sim.Count("voxie_frame_end"))
	assert.Equal(t, "voxie_getvw", sim.CallNames()[len(sim.CallNames())-1])
}

func TestFrameStart_ViewTransform(t *testing.T) {
	for _, ptrSize := range []int{8, 4} {
		t.Run(fmt.Sprintf("%d-byte pointers", ptrSize), func(t *testing.T) {
			rt, sim := newActive(t, simulator.WithPointerSize(ptrSize))
			require.NoError(t, rt.SetAspectRatio(2, 1.5, 0.5))

			frame(t, rt)

			f, err := rt.Frame()
			require.NoError(t, err)
			cfg := sim.Config()
			assert.InDelta(t, float32(cfg.XDim)/4, f.XMul, 1e-4)
			assert.InDelta(t, float32(cfg.YDim)/3, f.YMul, 1e-4)
			assert.InDelta(t, float32(cfg.FramePerVol*24), f.ZMul, 1e-4)
			assert.InDelta(t, 2*f.XMul, f.XAdd, 1e-3)
			assert.InDelta(t, 1.5*f.YMul, f.YAdd, 1e-3)
			assert.InDelta(t, 0.5*f.ZMul, f.ZAdd, 1e-3)

			var drawn abi.Frame
			require.NoError(t, drawn.Decode(rt.vf, ptrSize))
			assert.Equal(t, drawn, f, "Frame matches the bytes handed to draws")
		})
	}
}

func TestFrameStart_FourBytePointers(t *testing.T) {
	rt, _ := newActive(t, simulator.WithPointerSize(4))

	_, err := rt.FrameStart()
	require.NoError(t, err)
	assert.Len(t, rt.vf, abi.FrameSize(4))
	f, err := rt.Frame()
	require.NoError(t, err)
	assert.Equal(t, simulator.DefaultConfig().XDim, f.X)
}

func TestFrameStart_Breathless(t *testing.T) {
	rt, sim := newActive(t)
	frame(t, rt)

	sim.SetController(0, xbox(uint16(input.A)))
	sim.SetNav(abi.Nav{DX: 0.25, But: 1})
	sim.Quit()
	sim.ResetCalls()

	breath, err := rt.FrameStart()
	require.NoError(t, err)
	assert.False(t, breath)

	down, err := rt.ButtonDown(0, input.A)
	require.NoError(t, err)
	assert.True(t, down, "input is refreshed on a breath-less frame")

	pos, err := rt.SpaceNavPosition()
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), pos[0])
	assert.Equal(t, 1, sim.Count("voxie_setview"), "view is still set")
}

func TestFrameStart_OptionalInputSymbols(t *testing.T) {
	rt, _ := newActive(t, simulator.WithoutSymbols("voxie_xbox_read", "voxie_nav_read"))

	breath, err := rt.FrameStart()
	require.NoError(t, err)
	assert.True(t, breath)

	held, err := rt.Button(0, input.A)
	require.NoError(t, err)
	assert.False(t, held)
}

func TestFrameStart_BreathUnbound(t *testing.T) {
	rt, _ := newActive(t, simulator.WithoutSymbols("voxie_breath"))

	breath, err := rt.FrameStart()
	assert.False(t, breath)
	assert.ErrorIs(t, err, errors.ErrUnbound)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseFrame, Kind: errors.KindDevice})
}

func TestFrameEnd_ReadsDeviceConfig(t *testing.T) {
	rt, _ := newActive(t)
	_, err := rt.FrameStart()
	require.NoError(t, err)

	rt.vw.XDim = 1
	require.NoError(t, rt.FrameEnd())

	cfg, err := rt.Config()
	require.NoError(t, err)
	assert.Equal(t, simulator.DefaultConfig().XDim, cfg.XDim, "local edits are replaced by the device copy")
}

func TestInactiveCallsReturnDefaults(t *testing.T) {
	rt, sim := newLoaded(t)
	sim.ResetCalls()

	calls := map[string]func() error{
		"FrameStart": func() error {
			ok, err := rt.FrameStart()
			assert.False(t, ok)
			return err
		},
		"FrameEnd":       rt.FrameEnd,
		"DrawGuidelines": rt.DrawGuidelines,
		"DrawSphere":     func() error { return rt.DrawSphere(origin, 1, 0, White) },
		"DrawVoxels":     func() error { return rt.DrawVoxels([]abi.Point3{origin}, []int32{1}) },
		"DrawHeightmap": func() error {
			v, err := rt.DrawHeightmap(&abi.Tile{}, origin, origin, origin, origin, 0, 0, 0)
			assert.Zero(t, v)
			return err
		},
		"SetEmulatorDistance": func() error {
			v, err := rt.SetEmulatorDistance(1000)
			assert.Zero(t, v)
			return err
		},
		"SetAspectRatio": func() error { return rt.SetAspectRatio(1, 1, 1) },
		"AspectRatio": func() error {
			v, err := rt.AspectRatio()
			assert.Equal(t, DefaultAspectRatio, v)
			return err
		},
		"SetColorMode": func() error { return rt.SetColorMode(1) },
		"KeyDown": func() error {
			v, err := rt.KeyDown(input.KeySpace)
			assert.False(t, v)
			return err
		},
		"MousePosition": func() error {
			v, err := rt.MousePosition()
			assert.Zero(t, v)
			return err
		},
		"Axis": func() error {
			v, err := rt.Axis(0, input.LeftStickX)
			assert.Zero(t, v)
			return err
		},
		"Volume": func() error {
			v, err := rt.Volume()
			assert.Zero(t, v)
			return err
		},
		"Clock": func() error {
			v, err := rt.Clock()
			assert.Zero(t, v)
			return err
		},
		"MenuReset":     func() error { return rt.MenuReset(nil) },
		"LogToScreen":   func() error { return rt.LogToScreen(0, 0, "x") },
		"Rumble":        func() error { return rt.Rumble(0, 1, 1) },
		"SetLEDs":       func() error { return rt.SetLEDs(1, 1, 1) },
		"DebugCircle":   func() error { return rt.DebugCircle(0, 0, 1, White) },
		"HelixMode":     func() error { _, err := rt.HelixMode(); return err },
		"ReadKey":       func() error { _, err := rt.ReadKey(); return err },
		"PlaySound":     func() error { return rt.PlaySound("beep.wav", 0, 100, 100, 1) },
		"MenuAddButton": func() error { return rt.MenuAddButton(1, "ok", Rect{}, White, ButtonSingle) },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			assert.ErrorIs(t, err, errors.ErrInactive)
			assert.Contains(t, err.Error(), name)
		})
	}
	assert.Empty(t, sim.Calls(), "inactive calls never reach the device")
}

func TestEmulatorClamps(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Runtime, float32) (float32, error)
		get  func(*Runtime) (float32, error)
		lo   float32
		hi   float32
		mid  float32
	}{
		{"horizontal angle", (*Runtime).SetEmulatorHorizontalAngle, (*Runtime).EmulatorHorizontalAngle, MinEmuHAng, MaxEmuHAng, 1.5},
		{"vertical angle", (*Runtime).SetEmulatorVerticalAngle, (*Runtime).EmulatorVerticalAngle, MinEmuVAng, MaxEmuVAng, -0.75},
		{"distance", (*Runtime).SetEmulatorDistance, (*Runtime).EmulatorDistance, MinEmuDist, MaxEmuDist, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, sim := newActive(t)

			for _, v := range []float32{tt.lo - 1, tt.lo - 1000, tt.hi + 1, tt.hi + 1000, tt.mid} {
				got, err := tt.set(rt, v)
				require.NoError(t, err)
				assert.Equal(t, clamp(v, tt.lo, tt.hi), got)

				again, err := tt.set(rt, got)
				require.NoError(t, err)
				assert.Equal(t, got, again, "clamped value is a fixed point")

				stored, err := tt.get(rt)
				require.NoError(t, err)
				assert.Equal(t, got, stored)
			}

			assert.Equal(t, 1+10, sim.Inits(), "every set re-initialises")

			got, err := tt.set(rt, float32(math.NaN()))
			require.NoError(t, err)
			assert.Equal(t, tt.lo, got, "NaN clamps to the lower bound")
			stored, err := tt.get(rt)
			require.NoError(t, err)
			assert.Equal(t, tt.lo, stored)
		})
	}
}

func TestSetEmulatorVerticalAngle_Scenario(t *testing.T) {
	rt, sim := newActive(t)

	v, err := rt.SetEmulatorVerticalAngle(MinEmuVAng - 1)
	require.NoError(t, err)
	assert.Equal(t, MinEmuVAng, v)
	assert.Equal(t, MinEmuVAng, sim.Config().EmuVAng)

	v, err = rt.SetEmulatorVerticalAngle(MaxEmuVAng + 1)
	require.NoError(t, err)
	assert.Equal(t, MaxEmuVAng, v)
	assert.Equal(t, MaxEmuVAng, sim.Config().EmuVAng)
}

func TestAspectRatio(t *testing.T) {
	rt, sim := newActive(t)

	require.NoError(t, rt.SetAspectRatio(2, 1.5, 0.5))
	got, err := rt.AspectRatio()
	require.NoError(t, err)
	assert.Equal(t, [3]float32{2, 1.5, 0.5}, got)

	for _, bad := range [][3]float32{{0, 1, 1}, {1, -1, 1}, {1, 1, 0}, {-2, -2, -2}} {
		err := rt.SetAspectRatio(bad[0], bad[1], bad[2])
		assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseRuntime, Kind: errors.KindInvalidInput})

		got, err := rt.AspectRatio()
		require.NoError(t, err)
		assert.Equal(t, [3]float32{2, 1.5, 0.5}, got, "rejected ratio leaves the stored one")
	}

	frame(t, rt)
	frame(t, rt)
	assert.Equal(t, [6]float32{-2, -1.5, -0.5, 2, 1.5, 0.5}, sim.View())
}

func TestAspectRatio_Default(t *testing.T) {
	rt, _ := newActive(t)
	rt.vw.AspY = 0

	got, err := rt.AspectRatio()
	require.NoError(t, err)
	assert.Equal(t, DefaultAspectRatio, got)
}

func TestSetColorMode(t *testing.T) {
	tests := []struct {
		mode      int32
		useCol    int32
		ilace     int32
		senseMask [2]int32
	}{
		{ColorMono, 0, 0, [2]int32{}},
		{ColorFull, 1, 0, [2]int32{}},
		{ColorCyan, -6, 0, [2]int32{}},
		{ColorRedBlue, 1, 6, [2]int32{0xff0000, 0x00ff00}},
		{ColorRedGreen, 1, 6, [2]int32{0xff0000, 0x0000ff}},
		{ColorBlueGreen, 1, 6, [2]int32{0x00ff00, 0x0000ff}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.mode), func(t *testing.T) {
			rt, sim := newActive(t)

			require.NoError(t, rt.SetColorMode(tt.mode))

			cfg := sim.Config()
			assert.Equal(t, tt.useCol, cfg.UseCol)
			assert.Equal(t, tt.ilace, cfg.ILaceMode)
			assert.Equal(t, tt.senseMask[0], cfg.SenseMask[0])
			assert.Equal(t, tt.senseMask[1], cfg.SenseMask[1])
			assert.Equal(t, tt.senseMask[0], cfg.OutCol[0])
			assert.Equal(t, tt.senseMask[1], cfg.OutCol[1])

			mode, err := rt.ColorMode()
			require.NoError(t, err)
			assert.Equal(t, tt.useCol, mode)
		})
	}

	t.Run("out of range", func(t *testing.T) {
		rt, sim := newActive(t)
		for _, mode := range []int32{-7, 5} {
			err := rt.SetColorMode(mode)
			assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseRuntime, Kind: errors.KindInvalidInput})
		}
		assert.Equal(t, 1, sim.Inits())
	})
}

func TestHelixAndRadii(t *testing.T) {
	rt, sim := newActive(t)

	require.NoError(t, rt.SetSimulatorHelixMode(true))
	helix, err := rt.HelixMode()
	require.NoError(t, err)
	assert.True(t, helix)
	assert.Equal(t, int32(1), sim.Config().ClipShape)

	require.NoError(t, rt.SetExternalRadius(1.25))
	require.NoError(t, rt.SetInternalRadius(0.3))

	ext, err := rt.ExternalRadius()
	require.NoError(t, err)
	in, err := rt.InternalRadius()
	require.NoError(t, err)
	assert.Equal(t, float32(1.25), ext)
	assert.Equal(t, float32(0.3), in)
	assert.Equal(t, float32(1.25), sim.Config().Aspr)
	assert.Equal(t, float32(0.3), sim.Config().AsprMin)
	assert.Equal(t, 4, sim.Inits())
}

func TestVolume(t *testing.T) {
	rt, _ := newActive(t)
	v, err := rt.Volume()
	require.NoError(t, err)
	assert.Equal(t, float32(simulator.DefaultConfig().SndFXVol)/65535.0, v)
}

func TestControllerEdges(t *testing.T) {
	rt, sim := newActive(t)

	type step struct {
		buttons        uint16
		held, down, up bool
	}
	steps := []step{
		{0, false, false, false},
		{uint16(input.B), true, true, false},
		{uint16(input.B), true, false, false},
		{0, false, false, true},
		{0, false, false, false},
	}

	for i, s := range steps {
		sim.SetController(2, xbox(s.buttons))
		frame(t, rt)

		held, err := rt.Button(2, input.B)
		require.NoError(t, err)
		down, err := rt.ButtonDown(2, input.B)
		require.NoError(t, err)
		up, err := rt.ButtonUp(2, input.B)
		require.NoError(t, err)

		assert.Equal(t, s.held, held, "frame %d held", i)
		assert.Equal(t, s.down, down, "frame %d down", i)
		assert.Equal(t, s.up, up, "frame %d up", i)
		assert.False(t, down && up, "frame %d: down and up are exclusive", i)
	}
}

func TestAxisAndSlots(t *testing.T) {
	rt, sim := newActive(t)
	sim.SetController(0, abi.Xbox{TX0: -32768, TY1: 16384, LT: 255})
	frame(t, rt)

	for _, tt := range []struct {
		axis input.Axis
		want float32
	}{
		{input.LeftStickX, -1},
		{input.RightStickY, 0.5},
		{input.LeftTrigger, 255.0 / 32768.0},
		{input.Axis(42), 0},
	} {
		got, err := rt.Axis(0, tt.axis)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := rt.Axis(input.MaxControllers, input.LeftStickX)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseRuntime, Kind: errors.KindOutOfBounds})
	_, err = rt.Button(-1, input.A)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseRuntime, Kind: errors.KindOutOfBounds})

	slot, err := rt.Controller(3)
	require.NoError(t, err)
	assert.Equal(t, input.Slot{}, slot, "unread slots stay zero")
}

func TestMouse(t *testing.T) {
	rt, sim := newActive(t)

	sim.SetMouse(int32(input.MouseLeft), 4, -2, 1)
	frame(t, rt)

	pos, err := rt.MousePosition()
	require.NoError(t, err)
	assert.Equal(t, [3]float32{4, -2, 1}, pos)
	down, _ := rt.MouseButtonDown(input.MouseLeft)
	held, _ := rt.MouseButton(input.MouseLeft)
	right, _ := rt.MouseButton(input.MouseRight)
	assert.True(t, down)
	assert.True(t, held)
	assert.False(t, right)

	frame(t, rt)
	down, _ = rt.MouseButtonDown(input.MouseLeft)
	held, _ = rt.MouseButton(input.MouseLeft)
	pos, _ = rt.MousePosition()
	assert.False(t, down, "pressed only on the transition frame")
	assert.True(t, held)
	assert.Equal(t, [3]float32{}, pos)

	sim.SetMouse(0, 0, 0, 0)
	frame(t, rt)
	up, _ := rt.MouseButtonUp(input.MouseLeft)
	assert.True(t, up)

	ins, err := rt.Mouse()
	require.NoError(t, err)
	assert.Equal(t, int32(input.MouseLeft), ins.OBStat)
}

func TestKeys(t *testing.T) {
	rt, sim := newActive(t)
	sim.SetKey(input.KeySpace, 1)
	sim.SetKey(input.KeyEnter, 3)

	tests := []struct {
		code            int32
		state           int32
		key, down, upOK bool
	}{
		{input.KeySpace, 1, true, true, false},
		{input.KeyEnter, 3, true, false, false},
		{input.KeyEscape, 0, false, false, true},
	}
	for _, tt := range tests {
		state, err := rt.KeyState(tt.code)
		require.NoError(t, err)
		key, _ := rt.Key(tt.code)
		down, _ := rt.KeyDown(tt.code)
		up, _ := rt.KeyUp(tt.code)

		assert.Equal(t, tt.state, state)
		assert.Equal(t, tt.key, key)
		assert.Equal(t, tt.down, down)
		assert.Equal(t, tt.upOK, up)
	}

	sim.TypeKey('a')
	k, err := rt.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, int32('a'), k)
	k, _ = rt.ReadKey()
	assert.Zero(t, k)
}

func TestSpaceNav(t *testing.T) {
	rt, sim := newActive(t)
	sim.SetNav(abi.Nav{DX: 1, DY: 2, DZ: 3, AX: -1, AY: -2, AZ: -3, But: 2})
	frame(t, rt)

	pos, err := rt.SpaceNavPosition()
	require.NoError(t, err)
	rot, err := rt.SpaceNavRotation()
	require.NoError(t, err)
	assert.Equal(t, [3]float32{1, 2, 3}, pos)
	assert.Equal(t, [3]float32{-1, -2, -3}, rot)

	b, _ := rt.SpaceNavButton(2)
	assert.True(t, b)
	b, _ = rt.SpaceNavButton(1)
	assert.False(t, b)
}

func TestDraw(t *testing.T) {
	rt, sim := newActive(t)
	_, err := rt.FrameStart()
	require.NoError(t, err)
	sim.ResetCalls()

	require.NoError(t, rt.DrawGuidelines())
	require.NoError(t, rt.DrawSphere(abi.Point3{X: 0.1}, 0.2, 1, 0xff0000))
	require.NoError(t, rt.DrawBox(abi.Point3{X: -1}, abi.Point3{X: 1}, 2, White))
	require.NoError(t, rt.DrawLine(origin, abi.Point3{Z: 1}, White))
	require.NoError(t, rt.DrawCone(origin, 0.1, abi.Point3{Y: 1}, 0.2, 0, White))
	require.NoError(t, rt.DrawCube(origin, abi.Point3{X: 1}, abi.Point3{Y: 1}, abi.Point3{Z: 1}, 2, White))
	require.NoError(t, rt.DrawLetters(origin, abi.Point3{X: 0.1}, abi.Point3{Y: 0.1}, White, "HI"))
	require.NoError(t, rt.DrawPolygon([]abi.Pol{{P2: 1}, {X: 1, P2: 2}, {Y: 1, P2: 0}}, White))
	require.NoError(t, rt.DrawUntexturedMesh([]abi.Poltex{{}, {X: 1}, {Y: 1}}, []int32{0, 1, 2, -1}, 2, White))
	require.NoError(t, rt.DrawTexturedMesh(abi.NewTile(make([]byte, 16), 2, 2), []abi.Poltex{{}}, []int32{0}, 0))
	h, err := rt.DrawHeightmap(abi.NewTile(make([]byte, 4), 1, 1), origin, origin, origin, origin, -1, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, h)
	ok, err := rt.DrawSprite("cube.kv6", origin, origin, origin, origin, White)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, []string{
		"voxie_drawbox", "voxie_drawsph", "voxie_drawbox", "voxie_drawlin", "voxie_drawcone",
		"voxie_drawcube", "voxie_printalph", "voxie_drawpol", "voxie_drawmeshtex",
		"voxie_drawmeshtex", "voxie_drawheimap", "voxie_drawspr",
	}, sim.CallNames())

	calls := sim.Calls()
	asp := simulator.DefaultConfig()
	guide := calls[0].Args
	assert.InDelta(t, -asp.AspX+1e-3, guide[1], 1e-6)
	assert.InDelta(t, asp.AspY-1e-3, guide[5], 1e-6)
	assert.Equal(t, -asp.AspZ, guide[3])
	assert.Equal(t, int32(1), guide[7])
	assert.Equal(t, White, guide[8])

	untextured := calls[8].Args
	assert.Nil(t, untextured[1])
	assert.Equal(t, int32(3), untextured[3])
	assert.Equal(t, int32(4), untextured[5])
	textured := calls[9].Args
	assert.Equal(t, TextureBackColour, textured[7])
	assert.Len(t, textured[1].(*abi.Buffer).Refs, 1, "texture pixels are a nested pointer")

	err = rt.DrawTexturedMesh(nil, nil, nil, 0)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseRuntime, Kind: errors.KindInvalidInput})
}

func TestDrawVoxels_Reverse(t *testing.T) {
	rt, sim := newActive(t)
	_, err := rt.FrameStart()
	require.NoError(t, err)
	sim.ResetCalls()

	points := []abi.Point3{{X: 1}, {X: 2}, {X: 3}}
	require.NoError(t, rt.DrawVoxels(points, []int32{10, 20, 30}))
	require.NoError(t, rt.DrawVoxelBatch(points, 7))

	calls := sim.Calls()
	require.Len(t, calls, 6)
	for i, want := range []struct {
		x   float32
		col int32
	}{{3, 30}, {2, 20}, {1, 10}, {3, 7}, {2, 7}, {1, 7}} {
		assert.Equal(t, want.x, calls[i].Args[1], "call %d", i)
		assert.Equal(t, want.col, calls[i].Args[4], "call %d", i)
	}

	err = rt.DrawVoxels(points, []int32{1})
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseRuntime, Kind: errors.KindInvalidInput})
}

func TestDeviceExtras(t *testing.T) {
	rt, sim := newActive(t)
	frame(t, rt)
	sim.ResetCalls()

	require.NoError(t, rt.SetLEDs(10, 20, 30))
	require.NoError(t, rt.PlaySound("beep.wav", -1, 100, 50, 1))
	require.NoError(t, rt.ScreenCapture())
	require.NoError(t, rt.FreeFile(""))
	require.NoError(t, rt.Rumble(1, 0.5, 0.25))
	clock, err := rt.Clock()
	require.NoError(t, err)
	assert.Greater(t, clock, 0.0)

	require.NoError(t, rt.LogToScreen(8, 16, "fps 60"))
	require.NoError(t, rt.DebugPixel(1, 1, White))
	require.NoError(t, rt.DebugHLine(0, 10, 5, White))
	require.NoError(t, rt.DebugLine(0, 0, 10, 10, White))
	require.NoError(t, rt.DebugCircle(5, 5, 3, White))
	require.NoError(t, rt.DebugRectFill(0, 0, 4, 4, White))
	require.NoError(t, rt.DebugCircleFill(5, 5, 2, White))

	left, right := sim.Rumble(1)
	assert.Equal(t, float32(0.5), left)
	assert.Equal(t, float32(0.25), right)
	assert.ErrorIs(t, rt.Rumble(4, 1, 1), &errors.Error{Phase: errors.PhaseRuntime, Kind: errors.KindOutOfBounds})

	var print simulator.Call
	for _, c := range sim.Calls() {
		if c.Name == "voxie_debug_print6x8" {
			print = c
		}
	}
	assert.Equal(t, []any{int32(8), int32(16), White, int32(0), "fps 60"}, print.Args)
}

func TestUnboundSymbol(t *testing.T) {
	rt, sim := newActive(t, simulator.WithoutSymbols("voxie_drawcone"))
	_, err := rt.FrameStart()
	require.NoError(t, err)

	err = rt.DrawCone(origin, 1, origin, 1, 0, White)
	assert.ErrorIs(t, err, errors.ErrUnbound)
	assert.Zero(t, sim.Count("voxie_drawcone"))

	assert.NoError(t, rt.DrawSphere(origin, 1, 0, White), "other symbols still work")
	assert.Equal(t, []bind.Symbol{bind.DrawCone}, rt.Bindings().Missing())
}

func TestMenu(t *testing.T) {
	rt, sim := newActive(t)

	type update struct {
		id    int
		text  string
		value float64
		how   int
	}
	var got []update
	require.NoError(t, rt.MenuReset(func(id int, text string, value float64, how int) {
		got = append(got, update{id, text, value, how})
	}))

	at := Rect{X: 10, Y: 20, Width: 100, Height: 30}
	require.NoError(t, rt.MenuAddTab("Scene", Rect{Width: 400, Height: 300}))
	require.NoError(t, rt.MenuAddText(1, "Label", at, White))
	require.NoError(t, rt.MenuAddButton(2, "Go", at, White, ButtonSingle))
	require.NoError(t, rt.MenuAddVerticalSlider(3, "Size", at, White, Slider{Initial: 5, Min: 0, Max: 10, MinorStep: 1, MajorStep: 2}))
	require.NoError(t, rt.MenuAddHorizontalSlider(4, "Speed", at, White, Slider{Initial: 1, Max: 2}))
	require.NoError(t, rt.MenuAddEdit(5, "Name", at, White, false))
	require.NoError(t, rt.MenuAddEdit(6, "Path", at, White, true))
	require.NoError(t, rt.MenuUpdateItem(3, "Size", 0, 7.5))

	assert.Equal(t, []string{"Scene"}, sim.MenuTabs())
	items := sim.MenuItems()
	require.Len(t, items, 6)
	assert.Equal(t, int32(MenuText), items[1].Type)
	assert.Equal(t, int32(MenuButton)+int32(ButtonSingle), items[2].Type)
	assert.Equal(t, int32(MenuVSlider), items[3].Type)
	assert.Equal(t, 7.5, items[3].Value)
	assert.Equal(t, 10.0, items[3].Max)
	assert.Equal(t, int32(MenuHSlider), items[4].Type)
	assert.Equal(t, int32(MenuEdit), items[5].Type)
	assert.Equal(t, int32(MenuEditDo), items[6].Type)

	assert.True(t, sim.Menu(2, "Go", 0, 1))
	assert.Equal(t, []update{{2, "Go", 0, 1}}, got)
}

func TestFeatures(t *testing.T) {
	names := FeatureNames()
	assert.Contains(t, names, "FrameStart")
	assert.Contains(t, names, "SetEmulatorVerticalAngle")
	assert.Contains(t, names, "MenuAddEdit")

	seen := map[string]bool{}
	for _, f := range Features() {
		assert.False(t, seen[f.Name], "duplicate feature %s", f.Name)
		seen[f.Name] = true
		assert.NotEmpty(t, f.Group)
		for _, s := range f.Symbols {
			assert.True(t, s.Valid())
		}
	}

	features := Features()
	features[0].Name = "changed"
	assert.NotEqual(t, "changed", Features()[0].Name)
}

func TestAvailableFeatures(t *testing.T) {
	rt := New(testConfig(t, simulator.New()))
	assert.Nil(t, rt.AvailableFeatures(), "nothing while unloaded")

	full, _ := newLoaded(t)
	assert.Len(t, full.AvailableFeatures(), len(Features()))

	partial, _ := newLoaded(t, simulator.WithoutSymbols("voxie_nav_read", "voxie_drawcone"))
	var names []string
	for _, f := range partial.AvailableFeatures() {
		names = append(names, f.Name)
	}
	assert.NotContains(t, names, "DrawCone")
	assert.NotContains(t, names, "SpaceNavPosition")
	assert.Contains(t, names, "DrawSphere")
	assert.Contains(t, names, "SetAspectRatio")
	assert.Len(t, names, len(Features())-4)
}
