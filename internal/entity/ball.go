package entity

import "image"

// Ball start state and reset speed (units per frame).
const (
	BallStartX     = 77
	BallStartY     = 325
	BallStartSpeed = 5
	ResetSpeed     = 10
)

// Event reports what happened to the ball during one Update.
type Event uint8

const (
	EventWall Event = 1 << iota
	EventPaddle
	EventReset
)

func (e Event) Has(flag Event) bool { return e&flag != 0 }

// Rand is the subset of *rand.Rand the ball needs.
type Rand interface {
	Intn(n int) int
}

type Ball struct {
	X, Y   int
	W, H   int
	VX, VY int
}

func NewBall(w, h int) *Ball {
	return &Ball{
		X:  BallStartX,
		Y:  BallStartY,
		W:  w,
		H:  h,
		VX: BallStartSpeed,
		VY: BallStartSpeed,
	}
}

func (b *Ball) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}

// Update advances the ball one frame inside a windowW x windowH court.
// Order matters: move, wall bounce, paddle bounce, reset.
func (b *Ball) Update(windowW, windowH int, left, right *Paddle, rng Rand) Event {
	var ev Event

	b.X += b.VX
	b.Y += b.VY

	if b.Y+b.H > windowH || b.Y < 0 {
		b.VY = -b.VY
		ev |= EventWall
	}

	// Both checks always run; when both overlap, the right paddle wins.
	r := b.Rect()
	if left != nil && r.Overlaps(left.Rect()) {
		b.VX = abs(b.VX)
		ev |= EventPaddle
	}
	if right != nil && r.Overlaps(right.Rect()) {
		b.VX = -abs(b.VX)
		ev |= EventPaddle
	}

	if b.X < 0 || b.X > windowW {
		b.Reset(windowW, windowH, rng)
		ev |= EventReset
	}
	return ev
}

// Reset recenters the ball and picks each velocity sign with a coin flip.
func (b *Ball) Reset(windowW, windowH int, rng Rand) {
	b.X = windowW / 2
	b.Y = windowH / 2
	b.VX = coin(rng) * ResetSpeed
	b.VY = coin(rng) * ResetSpeed
}

func coin(rng Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
