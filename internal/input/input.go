package input

import "github.com/hajimehoshi/ebiten/v2"

// Action is a named control, independent of the physical key.
type Action int

const (
	P1Up Action = iota
	P1Down
	P2Up
	P2Down
	actionCount
)

func (a Action) String() string {
	switch a {
	case P1Up:
		return "player1_up"
	case P1Down:
		return "player1_down"
	case P2Up:
		return "player2_up"
	case P2Down:
		return "player2_down"
	}
	return "unknown"
}

// Bindings maps each action to the keys that trigger it.
type Bindings map[Action][]ebiten.Key

func DefaultBindings() Bindings {
	return Bindings{
		P1Up:   {ebiten.KeyArrowUp, ebiten.KeyW},
		P1Down: {ebiten.KeyArrowDown, ebiten.KeyS},
		P2Up:   {ebiten.KeyY, ebiten.KeyI},
		P2Down: {ebiten.KeyH, ebiten.KeyK},
	}
}

// Snapshot is the keyboard state for one frame, one bit per action.
type Snapshot uint8

func (s Snapshot) Pressed(a Action) bool {
	return s&(1<<a) != 0
}

func (s Snapshot) With(a Action) Snapshot {
	return s | 1<<a
}

// Sample builds a snapshot by asking pressed about every bound key.
func Sample(pressed func(ebiten.Key) bool, b Bindings) Snapshot {
	var s Snapshot
	for a := Action(0); a < actionCount; a++ {
		for _, k := range b[a] {
			if pressed(k) {
				s = s.With(a)
				break
			}
		}
	}
	return s
}

var defaultBindings = DefaultBindings()

// Keyboard samples the live keyboard with the default bindings.
func Keyboard() Snapshot {
	return Sample(ebiten.IsKeyPressed, defaultBindings)
}
