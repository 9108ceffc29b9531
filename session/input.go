package session

// Window-system agnostic input codes. The windowing layer maps its native
// codes onto these before forwarding events to the Driver.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF1
	KeyF2
	KeyR
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyLeftShift
)

type KeyAction uint8

const (
	KeyRelease KeyAction = iota
	KeyPress
	KeyRepeat
)

type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)
