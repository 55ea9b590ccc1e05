package input

// Button is a controller button bit, XInput layout.
type Button uint16

const (
	DPadUp        Button = 0x0001
	DPadDown      Button = 0x0002
	DPadLeft      Button = 0x0004
	DPadRight     Button = 0x0008
	Start         Button = 0x0010
	Back          Button = 0x0020
	LeftThumb     Button = 0x0040
	RightThumb    Button = 0x0080
	LeftShoulder  Button = 0x0100
	RightShoulder Button = 0x0200
	A             Button = 0x1000
	B             Button = 0x2000
	X             Button = 0x4000
	Y             Button = 0x8000
)

var buttonNames = map[Button]string{
	DPadUp: "DPadUp", DPadDown: "DPadDown", DPadLeft: "DPadLeft", DPadRight: "DPadRight",
	Start: "Start", Back: "Back", LeftThumb: "LeftThumb", RightThumb: "RightThumb",
	LeftShoulder: "LeftShoulder", RightShoulder: "RightShoulder",
	A: "A", B: "B", X: "X", Y: "Y",
}

func (b Button) String() string {
	if n, ok := buttonNames[b]; ok {
		return n
	}
	return "Button(?)"
}

// Axis identifies an analog control.
type Axis int

const (
	LeftTrigger  Axis = 1
	RightTrigger Axis = 2
	LeftStickX   Axis = 3
	LeftStickY   Axis = 4
	RightStickX  Axis = 5
	RightStickY  Axis = 6
)

// MouseButton is a voxie_inputs_t button bit.
type MouseButton int32

const (
	MouseLeft   MouseButton = 1
	MouseRight  MouseButton = 2
	MouseMiddle MouseButton = 4
)

// Key states reported by voxie_keystat.
const (
	KeyUp   int32 = 0 // not held
	KeyDown int32 = 1 // went down this frame
)

// Common scancodes for voxie_keystat.
const (
	KeyEscape     int32 = 0x01
	KeyEnter      int32 = 0x1c
	KeySpace      int32 = 0x39
	KeyLeftCtrl   int32 = 0x1d
	KeyLeftShift  int32 = 0x2a
	KeyArrowUp    int32 = 0xc8
	KeyArrowDown  int32 = 0xd0
	KeyArrowLeft  int32 = 0xcb
	KeyArrowRight int32 = 0xcd
	KeyPageUp     int32 = 0xc9
	KeyPageDown   int32 = 0xd1
)
