package game

// Controls is one frame of player input. Held fields mirror the current
// button state; the rest are true only on the frame a button goes down.
type Controls struct {
	Left, Right, Up, Down bool
	Shoot                 bool
	Dodge                 bool

	Start       bool
	Weapon      bool
	Defense     bool
	Both        bool
	Quit        bool
	ToggleFPS   bool
	CycleVolume bool
}
