package entity

import "image"

// PaddleStep is how far a paddle travels per frame while a key is held.
const PaddleStep = 15

type Paddle struct {
	X, Y int
	W, H int
}

func NewPaddle(x, y, w, h int) *Paddle {
	return &Paddle{X: x, Y: y, W: w, H: h}
}

// MoveUp steps the paddle up unless its top edge already sits at 0.
// The step is refused, not clamped, so a paddle at y=10 ends at y=-5.
func (p *Paddle) MoveUp() {
	if p.Y > 0 {
		p.Y -= PaddleStep
	}
}

// MoveDown is the mirror of MoveUp against the bottom of the window.
func (p *Paddle) MoveDown(windowHeight int) {
	if p.Y+p.H < windowHeight {
		p.Y += PaddleStep
	}
}

func (p *Paddle) Update(up, down bool, windowHeight int) {
	if up {
		p.MoveUp()
	}
	if down {
		p.MoveDown(windowHeight)
	}
}

func (p *Paddle) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.W, p.Y+p.H)
}
