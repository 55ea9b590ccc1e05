package simulator

import (
	"github.com/wippyai/voxon-runtime/abi"
)

func buffer(v any) *abi.Buffer {
	b, _ := v.(*abi.Buffer)
	return b
}

func writeInto(v any, data []byte) {
	if b := buffer(v); b != nil {
		copy(b.Data, data)
	}
}

func (s *Simulator) table() map[string]func(args []any) (any, error) {
	noop := func([]any) (any, error) { return nil, nil }

	return map[string]func(args []any) (any, error){
		"voxie_loadini_int": func(args []any) (any, error) {
			b, _ := s.ini.MarshalBinary()
			writeInto(args[0], b)
			return nil, nil
		},
		"voxie_init": func(args []any) (any, error) {
			if b := buffer(args[0]); b != nil {
				if err := s.vw.UnmarshalBinary(b.Data); err != nil {
					return int32(-1), nil
				}
			}
			s.inits++
			s.quit = false
			return int32(0), nil
		},
		"voxie_uninit_int": func([]any) (any, error) {
			s.uninits++
			return nil, nil
		},
		"voxie_breath": func(args []any) (any, error) {
			s.breaths++
			ins := s.mouse
			ins.OBStat = s.lastBStat
			s.lastBStat = ins.BStat
			b, _ := ins.MarshalBinary()
			writeInto(args[0], b)
			s.mouse.DMousX, s.mouse.DMousY, s.mouse.DMousZ = 0, 0, 0
			if s.quit {
				return int32(1), nil
			}
			return int32(0), nil
		},
		"voxie_getvw": func(args []any) (any, error) {
			b, _ := s.vw.MarshalBinary()
			writeInto(args[0], b)
			return nil, nil
		},
		"voxie_quitloop": func([]any) (any, error) {
			s.quit = true
			return nil, nil
		},
		"voxie_klock": func([]any) (any, error) {
			return float64(s.breaths) / 60, nil
		},
		"voxie_keystat": func(args []any) (any, error) {
			return s.keys[args[0].(int32)], nil
		},
		"voxie_keyread": func([]any) (any, error) {
			if len(s.keyQueue) == 0 {
				return int32(0), nil
			}
			k := s.keyQueue[0]
			s.keyQueue = s.keyQueue[1:]
			return k, nil
		},
		"voxie_doscreencap": noop,
		"voxie_setview": func(args []any) (any, error) {
			for i := range s.view {
				s.view[i] = args[i+1].(float32)
			}
			if b := buffer(args[0]); b != nil {
				var f abi.Frame
				if err := f.Decode(b.Data, s.ptrSize); err != nil {
					return nil, err
				}
				s.viewTransform(&f)
				copy(b.Data, f.Encode(s.ptrSize))
			}
			return nil, nil
		},
		"voxie_frame_start": func(args []any) (any, error) {
			s.frames++
			s.inFrame = true
			f := abi.Frame{
				X:          s.vw.XDim,
				Y:          s.vw.YDim,
				UseCol:     s.vw.UseCol,
				DrawPlanes: s.vw.FramePerVol * 24,
				X1:         s.vw.XDim,
				Y1:         s.vw.YDim,
				XMul:       1,
				YMul:       1,
				ZMul:       1,
			}
			writeInto(args[0], f.Encode(s.ptrSize))
			return int32(0), nil
		},
		"voxie_frame_end": func([]any) (any, error) {
			s.inFrame = false
			return nil, nil
		},
		"voxie_setleds":     noop,
		"voxie_drawvox":     noop,
		"voxie_drawbox":     noop,
		"voxie_drawlin":     noop,
		"voxie_drawpol":     noop,
		"voxie_drawmeshtex": noop,
		"voxie_drawsph":     noop,
		"voxie_drawcone":    noop,
		"voxie_drawspr": func([]any) (any, error) {
			return int32(1), nil
		},
		"voxie_printalph": noop,
		"voxie_drawcube":  noop,
		"voxie_drawheimap": func([]any) (any, error) {
			return float32(0), nil
		},
		"voxie_playsound": noop,
		"voxie_xbox_read": func(args []any) (any, error) {
			id := args[0].(int32)
			if id < 0 || int(id) >= len(s.pads) || !s.connected[id] {
				return int32(0), nil
			}
			b, _ := s.pads[id].MarshalBinary()
			writeInto(args[1], b)
			return int32(1), nil
		},
		"voxie_xbox_write": func(args []any) (any, error) {
			id := args[0].(int32)
			if id >= 0 && int(id) < len(s.rumble) {
				s.rumble[id] = [2]float32{args[1].(float32), args[2].(float32)}
			}
			return nil, nil
		},
		"voxie_nav_read": func(args []any) (any, error) {
			b, _ := s.nav.MarshalBinary()
			writeInto(args[1], b)
			return int32(1), nil
		},
		"voxie_debug_print6x8":     noop,
		"voxie_debug_drawpix":      noop,
		"voxie_debug_drawhlin":     noop,
		"voxie_debug_drawline":     noop,
		"voxie_debug_drawcirc":     noop,
		"voxie_debug_drawrectfill": noop,
		"voxie_debug_drawcircfill": noop,
		"voxie_free":               noop,
		"voxie_getversion": func([]any) (any, error) {
			return s.version, nil
		},
		"voxie_menu_reset": func(args []any) (any, error) {
			s.menu, _ = args[0].(abi.MenuHandler)
			s.menuItems = map[int32]*MenuItem{}
			s.menuTabs = nil
			return nil, nil
		},
		"voxie_menu_addtab": func(args []any) (any, error) {
			s.menuTabs = append(s.menuTabs, args[0].(string))
			return nil, nil
		},
		"voxie_menu_additem": func(args []any) (any, error) {
			item := &MenuItem{
				Text:  args[0].(string),
				ID:    args[5].(int32),
				Type:  args[6].(int32),
				Down:  args[7].(int32),
				Col:   args[8].(int32),
				Value: args[9].(float64),
				Min:   args[10].(float64),
				Max:   args[11].(float64),
			}
			s.menuItems[item.ID] = item
			return nil, nil
		},
		"voxie_menu_updateitem": func(args []any) (any, error) {
			if item, ok := s.menuItems[args[0].(int32)]; ok {
				item.Text = args[1].(string)
				item.Down = args[2].(int32)
				item.Value = args[3].(float64)
			}
			return nil, nil
		},
	}
}

// viewTransform maps the view cuboid onto the frame's pixel and plane
// ranges, as the device does in voxie_setview.
func (s *Simulator) viewTransform(f *abi.Frame) {
	span := func(lo, hi float32) float32 {
		if hi == lo {
			return 1
		}
		return hi - lo
	}
	x0, y0, z0 := s.view[0], s.view[1], s.view[2]
	x1, y1, z1 := s.view[3], s.view[4], s.view[5]

	f.XMul = float32(f.X1-f.X0) / span(x0, x1)
	f.YMul = float32(f.Y1-f.Y0) / span(y0, y1)
	f.ZMul = float32(f.DrawPlanes) / span(z0, z1)
	f.XAdd = float32(f.X0) - x0*f.XMul
	f.YAdd = float32(f.Y0) - y0*f.YMul
	f.ZAdd = -z0 * f.ZMul
}
