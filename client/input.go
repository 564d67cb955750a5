package client

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spacehunt/game"
)

// Poller turns keyboard and gamepad state into game controls. Any number
// of gamepads, including none, may be connected.
type Poller struct {
	pads []ebiten.GamepadID
}

// NewPoller creates an input poller
func NewPoller() *Poller {
	return &Poller{pads: make([]ebiten.GamepadID, 0, 4)}
}

func anyKey(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Poll reads this frame's controls
func (p *Poller) Poll() game.Controls {
	c := game.Controls{
		Left:  anyKey(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyKey(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:    anyKey(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  anyKey(ebiten.KeyArrowDown, ebiten.KeyS),
		Shoot: anyKey(ebiten.KeySpace),
		Dodge: anyKey(ebiten.KeyTab),

		Start:       inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Weapon:      anyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		Defense:     inpututil.IsKeyJustPressed(ebiten.KeyTab),
		Both:        inpututil.IsKeyJustPressed(ebiten.KeyQ),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleFPS:   inpututil.IsKeyJustPressed(ebiten.KeyF),
		CycleVolume: inpututil.IsKeyJustPressed(ebiten.KeyV),
	}

	p.pads = ebiten.AppendGamepadIDs(p.pads[:0])
	for _, id := range p.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		held := func(b ebiten.StandardGamepadButton) bool {
			return ebiten.IsStandardGamepadButtonPressed(id, b)
		}
		pressed := func(b ebiten.StandardGamepadButton) bool {
			return inpututil.IsStandardGamepadButtonJustPressed(id, b)
		}

		c.Left = c.Left || held(ebiten.StandardGamepadButtonLeftLeft)
		c.Right = c.Right || held(ebiten.StandardGamepadButtonLeftRight)
		c.Up = c.Up || held(ebiten.StandardGamepadButtonLeftTop)
		c.Down = c.Down || held(ebiten.StandardGamepadButtonLeftBottom)

		// X shoots, A dodges or picks defense, Y picks weapon or restarts
		c.Shoot = c.Shoot || held(ebiten.StandardGamepadButtonRightLeft)
		c.Dodge = c.Dodge || held(ebiten.StandardGamepadButtonRightBottom)
		c.Start = c.Start || pressed(ebiten.StandardGamepadButtonRightLeft)
		c.Defense = c.Defense || pressed(ebiten.StandardGamepadButtonRightBottom)
		c.Weapon = c.Weapon || pressed(ebiten.StandardGamepadButtonRightTop)
	}
	return c
}
