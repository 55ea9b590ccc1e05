package runtime

import "github.com/wippyai/voxon-runtime/bind"

// Feature is one operation of the runtime surface and the entry points it
// needs from the library.
type Feature struct {
	Name    string
	Group   string
	Symbols []bind.Symbol
}

func group(name string, fs ...Feature) []Feature {
	for i := range fs {
		fs[i].Group = name
	}
	return fs
}

func feature(name string, syms ...bind.Symbol) Feature {
	return Feature{Name: name, Symbols: syms}
}

var features = concat(
	group("runtime",
		feature("Features"),
		feature("AvailableFeatures"),
	),
	group("library",
		feature("Load"),
		feature("Unload"),
		feature("IsLoaded"),
	),
	group("device",
		feature("Initialise", bind.LoadIniInt, bind.Init),
		feature("Shutdown", bind.QuitLoop, bind.FrameEnd, bind.GetVW, bind.Breath, bind.UninitInt),
		feature("IsInitialised"),
	),
	group("frame",
		feature("FrameStart", bind.Breath, bind.FrameStart, bind.SetView),
		feature("FrameEnd", bind.FrameEnd, bind.GetVW),
	),
	group("camera",
		feature("SetAspectRatio", bind.Init),
		feature("AspectRatio"),
		feature("SetColorMode", bind.Init),
		feature("ColorMode"),
	),
	group("draw",
		feature("DrawGuidelines", bind.DrawBox),
		feature("DrawLetters", bind.PrintAlph),
		feature("DrawBox", bind.DrawBox),
		feature("DrawTexturedMesh", bind.DrawMeshTex),
		feature("DrawUntexturedMesh", bind.DrawMeshTex),
		feature("DrawSphere", bind.DrawSph),
		feature("DrawCone", bind.DrawCone),
		feature("DrawVoxel", bind.DrawVox),
		feature("DrawVoxelBatch", bind.DrawVox),
		feature("DrawVoxels", bind.DrawVox),
		feature("DrawCube", bind.DrawCube),
		feature("DrawLine", bind.DrawLin),
		feature("DrawPolygon", bind.DrawPol),
		feature("DrawHeightmap", bind.DrawHeiMap),
		feature("DrawSprite", bind.DrawSpr),
	),
	group("keyboard",
		feature("KeyState", bind.KeyStat),
		feature("Key", bind.KeyStat),
		feature("KeyUp", bind.KeyStat),
		feature("KeyDown", bind.KeyStat),
		feature("ReadKey", bind.KeyRead),
	),
	group("mouse",
		feature("MousePosition", bind.Breath),
		feature("MouseButton", bind.Breath),
		feature("MouseButtonDown", bind.Breath),
		feature("MouseButtonUp", bind.Breath),
	),
	group("controller",
		feature("Button", bind.XboxRead),
		feature("ButtonDown", bind.XboxRead),
		feature("ButtonUp", bind.XboxRead),
		feature("Axis", bind.XboxRead),
		feature("Rumble", bind.XboxWrite),
	),
	group("spacenav",
		feature("SpaceNavPosition", bind.NavRead),
		feature("SpaceNavRotation", bind.NavRead),
		feature("SpaceNavButton", bind.NavRead),
	),
	group("audio",
		feature("Volume"),
		feature("PlaySound", bind.PlaySound),
	),
	group("device extras",
		feature("SetLEDs", bind.SetLEDs),
		feature("ScreenCapture", bind.DoScreenCap),
		feature("Clock", bind.KLock),
		feature("FreeFile", bind.Free),
	),
	group("logging",
		feature("LogToFile"),
		feature("LogToScreen", bind.DebugPrint6x8),
	),
	group("debug",
		feature("DebugPixel", bind.DebugDrawPix),
		feature("DebugHLine", bind.DebugDrawHLin),
		feature("DebugLine", bind.DebugDrawLine),
		feature("DebugCircle", bind.DebugDrawCirc),
		feature("DebugRectFill", bind.DebugDrawRectFill),
		feature("DebugCircleFill", bind.DebugDrawCircFill),
	),
	group("versioning",
		feature("LibraryVersion", bind.GetVersion),
		feature("SDKVersion"),
	),
	group("helix",
		feature("HelixMode"),
		feature("SetSimulatorHelixMode", bind.Init),
		feature("ExternalRadius"),
		feature("SetExternalRadius", bind.Init),
		feature("InternalRadius"),
		feature("SetInternalRadius", bind.Init),
	),
	group("menu",
		feature("MenuReset", bind.MenuReset),
		feature("MenuAddTab", bind.MenuAddTab),
		feature("MenuAddText", bind.MenuAddItem),
		feature("MenuAddButton", bind.MenuAddItem),
		feature("MenuAddVerticalSlider", bind.MenuAddItem),
		feature("MenuAddHorizontalSlider", bind.MenuAddItem),
		feature("MenuAddEdit", bind.MenuAddItem),
		feature("MenuUpdateItem", bind.MenuUpdateItem),
	),
	group("emulator",
		feature("SetEmulatorHorizontalAngle", bind.Init),
		feature("SetEmulatorVerticalAngle", bind.Init),
		feature("SetEmulatorDistance", bind.Init),
		feature("EmulatorHorizontalAngle"),
		feature("EmulatorVerticalAngle"),
		feature("EmulatorDistance"),
	),
)

func concat(groups ...[]Feature) []Feature {
	var out []Feature
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Features lists the runtime surface in a stable order, independent of
// any library.
func Features() []Feature {
	out := make([]Feature, len(features))
	copy(out, features)
	return out
}

// FeatureNames returns the names of Features().
func FeatureNames() []string {
	names := make([]string, len(features))
	for i, ft := range features {
		names[i] = ft.Name
	}
	return names
}

// AvailableFeatures returns the features whose entry points the loaded
// library exports. Nothing is available while unloaded.
func (r *Runtime) AvailableFeatures() []Feature {
	if r.table == nil {
		return nil
	}
	return Available(r.table)
}

// Available filters Features() by what t has bound.
func Available(t *bind.Table) []Feature {
	var out []Feature
	for _, ft := range features {
		if t.BoundAll(ft.Symbols...) {
			out = append(out, ft)
		}
	}
	return out
}
