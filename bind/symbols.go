package bind

import "github.com/wippyai/voxon-runtime/abi"

// Symbol enumerates the device library entry points the runtime binds.
type Symbol int

const (
	LoadIniInt Symbol = iota
	Init
	UninitInt
	Breath
	GetVW
	QuitLoop
	KLock
	KeyStat
	KeyRead
	DoScreenCap
	SetView
	FrameStart
	FrameEnd
	SetLEDs
	DrawVox
	DrawBox
	DrawLin
	DrawPol
	DrawMeshTex
	DrawSph
	DrawCone
	DrawSpr
	PrintAlph
	DrawCube
	DrawHeiMap
	PlaySound
	XboxRead
	XboxWrite
	NavRead
	DebugPrint6x8
	DebugDrawPix
	DebugDrawHLin
	DebugDrawLine
	DebugDrawCirc
	DebugDrawRectFill
	DebugDrawCircFill
	Free
	GetVersion
	MenuReset
	MenuAddTab
	MenuAddItem
	MenuUpdateItem

	symbolCount
)

type symbolInfo struct {
	name string
	sig  abi.Signature
}

const (
	v   = abi.Void
	i32 = abi.I32
	i64 = abi.I64
	f32 = abi.F32
	f64 = abi.F64
	ptr = abi.Ptr
	str = abi.CString
	cb  = abi.Callback
)

var symbols = [symbolCount]symbolInfo{
	LoadIniInt:  {"voxie_loadini_int", abi.Sig(v, ptr)},
	Init:        {"voxie_init", abi.Sig(i32, ptr)},
	UninitInt:   {"voxie_uninit_int", abi.Sig(v, i32)},
	Breath:      {"voxie_breath", abi.Sig(i32, ptr)},
	GetVW:       {"voxie_getvw", abi.Sig(v, ptr)},
	QuitLoop:    {"voxie_quitloop", abi.Sig(v)},
	KLock:       {"voxie_klock", abi.Sig(f64)},
	KeyStat:     {"voxie_keystat", abi.Sig(i32, i32)},
	KeyRead:     {"voxie_keyread", abi.Sig(i32)},
	DoScreenCap: {"voxie_doscreencap", abi.Sig(v)},
	SetView:     {"voxie_setview", abi.Sig(v, ptr, f32, f32, f32, f32, f32, f32)},
	FrameStart:  {"voxie_frame_start", abi.Sig(i32, ptr)},
	FrameEnd:    {"voxie_frame_end", abi.Sig(v)},
	SetLEDs:     {"voxie_setleds", abi.Sig(v, i32, i32, i32)},
	DrawVox:     {"voxie_drawvox", abi.Sig(v, ptr, f32, f32, f32, i32)},
	DrawBox:     {"voxie_drawbox", abi.Sig(v, ptr, f32, f32, f32, f32, f32, f32, i32, i32)},
	DrawLin:     {"voxie_drawlin", abi.Sig(v, ptr, f32, f32, f32, f32, f32, f32, i32)},
	DrawPol:     {"voxie_drawpol", abi.Sig(v, ptr, ptr, i32, i32)},
	// vf, texture (NULL for untextured), vertices, vertex count, mesh, mesh count, flags, col
	DrawMeshTex: {"voxie_drawmeshtex", abi.Sig(v, ptr, ptr, ptr, i32, ptr, i32, i32, i32)},
	DrawSph:     {"voxie_drawsph", abi.Sig(v, ptr, f32, f32, f32, f32, i32, i32)},
	DrawCone:    {"voxie_drawcone", abi.Sig(v, ptr, f32, f32, f32, f32, f32, f32, f32, f32, i32, i32)},
	DrawSpr:     {"voxie_drawspr", abi.Sig(i32, ptr, str, ptr, ptr, ptr, ptr, i32)},
	PrintAlph:   {"voxie_printalph", abi.Sig(v, ptr, ptr, ptr, ptr, i32, str)},
	DrawCube:    {"voxie_drawcube", abi.Sig(v, ptr, ptr, ptr, ptr, ptr, i32, i32)},
	DrawHeiMap:  {"voxie_drawheimap", abi.Sig(f32, ptr, ptr, ptr, ptr, ptr, ptr, i32, i32, i32)},
	PlaySound:   {"voxie_playsound", abi.Sig(v, str, i32, i32, i32, f32)},
	XboxRead:    {"voxie_xbox_read", abi.Sig(i32, i32, ptr)},
	XboxWrite:   {"voxie_xbox_write", abi.Sig(v, i32, f32, f32)},
	NavRead:     {"voxie_nav_read", abi.Sig(i32, i32, ptr)},

	DebugPrint6x8:     {"voxie_debug_print6x8", abi.Sig(v, i32, i32, i32, i32, str)},
	DebugDrawPix:      {"voxie_debug_drawpix", abi.Sig(v, i32, i32, i32)},
	DebugDrawHLin:     {"voxie_debug_drawhlin", abi.Sig(v, i32, i32, i32, i32)},
	DebugDrawLine:     {"voxie_debug_drawline", abi.Sig(v, f32, f32, f32, f32, i32)},
	DebugDrawCirc:     {"voxie_debug_drawcirc", abi.Sig(v, i32, i32, i32, i32)},
	DebugDrawRectFill: {"voxie_debug_drawrectfill", abi.Sig(v, i32, i32, i32, i32, i32)},
	DebugDrawCircFill: {"voxie_debug_drawcircfill", abi.Sig(v, i32, i32, i32, i32)},
	Free:              {"voxie_free", abi.Sig(v, str)},
	GetVersion:        {"voxie_getversion", abi.Sig(i64)},

	// The userdata slot after a callback belongs to the backend.
	MenuReset:      {"voxie_menu_reset", abi.Sig(v, cb, ptr, ptr)},
	MenuAddTab:     {"voxie_menu_addtab", abi.Sig(v, str, i32, i32, i32, i32)},
	MenuAddItem:    {"voxie_menu_additem", abi.Sig(v, str, i32, i32, i32, i32, i32, i32, i32, i32, f64, f64, f64, f64, f64)},
	MenuUpdateItem: {"voxie_menu_updateitem", abi.Sig(v, i32, str, i32, f64)},
}

var byName = func() map[string]Symbol {
	m := make(map[string]Symbol, symbolCount)
	for i := range symbols {
		m[symbols[i].name] = Symbol(i)
	}
	return m
}()

// String returns the exported name, e.g. "voxie_breath".
func (s Symbol) String() string {
	if s.Valid() {
		return symbols[s].name
	}
	return "voxie_unknown"
}

// Signature returns the declared C-ABI shape of s.
func (s Symbol) Signature() abi.Signature {
	if s.Valid() {
		return symbols[s].sig
	}
	return abi.Signature{}
}

// Valid reports whether s is one of the enumerated symbols.
func (s Symbol) Valid() bool {
	return s >= 0 && s < symbolCount
}

// Symbols returns every bound symbol in declaration order.
func Symbols() []Symbol {
	out := make([]Symbol, symbolCount)
	for i := range out {
		out[i] = Symbol(i)
	}
	return out
}

// Lookup finds a symbol by its exported name.
func Lookup(name string) (Symbol, bool) {
	s, ok := byName[name]
	return s, ok
}
