package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings maps logical actions to keyboard keys
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Jump  []ebiten.Key
}

// DefaultKeyBindings returns WASD-style bindings with arrow/space alternates
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Jump:  []ebiten.Key{ebiten.KeyW, ebiten.KeySpace},
	}
}

// InputSystem polls the keyboard once per frame
type InputSystem struct {
	bindings KeyBindings
}

// NewInputSystem creates a new input system
func NewInputSystem(bindings KeyBindings) *InputSystem {
	return &InputSystem{bindings: bindings}
}

// InputState is the input snapshot for one frame.
// Jump is the held state; JumpPressed is true only on the frame the key went down.
type InputState struct {
	Left        bool
	Right       bool
	Jump        bool
	JumpPressed bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:        anyPressed(s.bindings.Left),
		Right:       anyPressed(s.bindings.Right),
		Jump:        anyPressed(s.bindings.Jump),
		JumpPressed: anyJustPressed(s.bindings.Jump),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
