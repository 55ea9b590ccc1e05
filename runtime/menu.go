package runtime

import (
	"github.com/wippyai/voxon-runtime/abi"
	"github.com/wippyai/voxon-runtime/bind"
)

// MenuItemType is the widget kind passed to voxie_menu_additem.
type MenuItemType int32

const (
	MenuText     MenuItemType = 0 // decoration only
	MenuLine     MenuItemType = 1
	MenuButton   MenuItemType = 2 // plus a ButtonPosition
	MenuHSlider  MenuItemType = 6
	MenuVSlider  MenuItemType = 7
	MenuEdit     MenuItemType = 8
	MenuEditDo   MenuItemType = 9 // edit box followed by a button
	MenuToggle   MenuItemType = 10
	MenuPickFile MenuItemType = 11
)

// ButtonPosition places a button within a group of adjacent buttons.
type ButtonPosition int32

const (
	ButtonMiddle ButtonPosition = 0
	ButtonFirst  ButtonPosition = 1
	ButtonLast   ButtonPosition = 2
	ButtonSingle ButtonPosition = 3
)

// Rect positions a menu widget in pixels.
type Rect struct {
	X, Y, Width, Height int32
}

// Slider configures a slider widget.
type Slider struct {
	Initial   float64
	Min, Max  float64
	MinorStep float64
	MajorStep float64
}

// MenuReset clears the device menu and registers fn for item updates. A
// nil fn removes the handler.
func (r *Runtime) MenuReset(fn abi.MenuHandler) error {
	_, err := r.call("MenuReset", bind.MenuReset, fn, nil, nil)
	return err
}

func (r *Runtime) MenuAddTab(text string, at Rect) error {
	_, err := r.call("MenuAddTab", bind.MenuAddTab, text, at.X, at.Y, at.Width, at.Height)
	return err
}

func (r *Runtime) addItem(op string, id int32, text string, at Rect, typ MenuItemType, col int32, s Slider) error {
	_, err := r.call(op, bind.MenuAddItem, text, at.X, at.Y, at.Width, at.Height,
		id, int32(typ), int32(0), col,
		s.Initial, s.Min, s.Max, s.MinorStep, s.MajorStep)
	return err
}

// MenuAddText adds a text label.
func (r *Runtime) MenuAddText(id int32, text string, at Rect, col int32) error {
	return r.addItem("MenuAddText", id, text, at, MenuText, col, Slider{})
}

// MenuAddButton adds a push button at pos within its group.
func (r *Runtime) MenuAddButton(id int32, text string, at Rect, col int32, pos ButtonPosition) error {
	return r.addItem("MenuAddButton", id, text, at, MenuButton+MenuItemType(pos), col, Slider{})
}

func (r *Runtime) MenuAddVerticalSlider(id int32, text string, at Rect, col int32, s Slider) error {
	return r.addItem("MenuAddVerticalSlider", id, text, at, MenuVSlider, col, s)
}

func (r *Runtime) MenuAddHorizontalSlider(id int32, text string, at Rect, col int32, s Slider) error {
	return r.addItem("MenuAddHorizontalSlider", id, text, at, MenuHSlider, col, s)
}

// MenuAddEdit adds a text edit box, optionally followed by a button.
func (r *Runtime) MenuAddEdit(id int32, text string, at Rect, col int32, followup bool) error {
	typ := MenuEdit
	if followup {
		typ = MenuEditDo
	}
	return r.addItem("MenuAddEdit", id, text, at, typ, col, Slider{})
}

// MenuUpdateItem changes the text, button state or slider value of id.
func (r *Runtime) MenuUpdateItem(id int32, text string, buttonState int32, value float64) error {
	_, err := r.call("MenuUpdateItem", bind.MenuUpdateItem, id, text, buttonState, value)
	return err
}
