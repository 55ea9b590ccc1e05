package simulator

import "github.com/wippyai/voxon-runtime/abi"

// SetController connects slot and sets its next report.
func (s *Simulator) SetController(slot int, x abi.Xbox) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pads[slot] = x
	s.connected[slot] = true
}

// Disconnect makes slot report nothing.
func (s *Simulator) Disconnect(slot int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pads[slot] = abi.Xbox{}
	s.connected[slot] = false
}

// SetMouse sets the held buttons and the motion reported by the next breath.
// The previous-frame mask is tracked by the device.
func (s *Simulator) SetMouse(buttons, dx, dy, dz int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mouse = abi.Inputs{BStat: buttons, DMousX: dx, DMousY: dy, DMousZ: dz}
}

// SetNav sets the SpaceNav report.
func (s *Simulator) SetNav(n abi.Nav) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav = n
}

// SetKey sets the state voxie_keystat reports for scancode.
func (s *Simulator) SetKey(scancode, state int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state == 0 {
		delete(s.keys, scancode)
		return
	}
	s.keys[scancode] = state
}

// TypeKey queues a key for voxie_keyread.
func (s *Simulator) TypeKey(code int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyQueue = append(s.keyQueue, code)
}

// Quit makes the next breath report that the device wants to exit.
func (s *Simulator) Quit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quit = true
}

// Config returns the configuration last pushed with voxie_init.
func (s *Simulator) Config() abi.WindConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vw
}

// Inits returns how many times voxie_init ran.
func (s *Simulator) Inits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inits
}

// View returns the last voxie_setview bounds (x0, y0, z0, x1, y1, z1).
func (s *Simulator) View() [6]float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Rumble returns the last motor speeds written to slot.
func (s *Simulator) Rumble(slot int) (left, right float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rumble[slot][0], s.rumble[slot][1]
}

// MenuItems returns the registered menu items by id.
func (s *Simulator) MenuItems() map[int32]MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int32]MenuItem, len(s.menuItems))
	for id, item := range s.menuItems {
		out[id] = *item
	}
	return out
}

// MenuTabs returns the registered tab titles.
func (s *Simulator) MenuTabs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.menuTabs...)
}

// Menu delivers a menu event to the registered handler, as the device does
// when the user touches a menu item. It reports whether a handler ran.
func (s *Simulator) Menu(id int, text string, value float64, how int) bool {
	s.mu.Lock()
	fn := s.menu
	s.mu.Unlock()
	if fn == nil {
		return false
	}
	fn(id, text, value, how)
	return true
}
