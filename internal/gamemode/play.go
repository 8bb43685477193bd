package gamemode

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pong/internal/entity"
	"pong/internal/input"
)

// Court geometry, in window pixels.
const (
	PaddleWidth  = 20
	PaddleHeight = 120
	PaddleMargin = 40
	BallSize     = 20

	ScoreLabel = "Score: "
)

var (
	ColPaddle = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColBall   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColText   = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Sprites are the GPU-side resources the match draws with.
type Sprites struct {
	Background *ebiten.Image
	Face       text.Face
}

// Dispose releases the textures. The face has no GPU handle of its own.
func (s *Sprites) Dispose() {
	if s == nil {
		return
	}
	if s.Background != nil {
		s.Background.Deallocate()
		s.Background = nil
	}
	s.Face = nil
}

// Play is one running match: two paddles and a ball.
type Play struct {
	Width, Height int

	Left, Right *entity.Paddle
	Ball        *entity.Ball

	// Debug draws a TPS and ball readout over the court.
	Debug bool

	sprites *Sprites
	rng     entity.Rand
}

func NewPlay(width, height int, sprites *Sprites, rng entity.Rand) *Play {
	y := (height - PaddleHeight) / 2
	return &Play{
		Width:   width,
		Height:  height,
		Left:    entity.NewPaddle(PaddleMargin, y, PaddleWidth, PaddleHeight),
		Right:   entity.NewPaddle(width-PaddleMargin-PaddleWidth, y, PaddleWidth, PaddleHeight),
		Ball:    entity.NewBall(BallSize, BallSize),
		sprites: sprites,
		rng:     rng,
	}
}

// Update runs one physics step: ball, then right paddle, then left paddle.
func (p *Play) Update(in input.Snapshot) entity.Event {
	ev := p.Ball.Update(p.Width, p.Height, p.Left, p.Right, p.rng)
	p.Right.Update(in.Pressed(input.P2Up), in.Pressed(input.P2Down), p.Height)
	p.Left.Update(in.Pressed(input.P1Up), in.Pressed(input.P1Down), p.Height)
	return ev
}

// Draw paints back to front: table, score, paddles, ball.
func (p *Play) Draw(screen *ebiten.Image) {
	p.drawBackground(screen)

	if p.sprites != nil && p.sprites.Face != nil {
		op := &text.DrawOptions{}
		op.ColorScale.ScaleWithColor(ColText)
		text.Draw(screen, ScoreLabel, p.sprites.Face, op)
	}

	drawRect(screen, p.Left.X, p.Left.Y, p.Left.W, p.Left.H, ColPaddle)
	drawRect(screen, p.Right.X, p.Right.Y, p.Right.W, p.Right.H, ColPaddle)
	drawRect(screen, p.Ball.X, p.Ball.Y, p.Ball.W, p.Ball.H, ColBall)

	if p.Debug {
		msg := fmt.Sprintf("TPS: %0.1f\nball: (%d, %d) v=(%d, %d)",
			ebiten.ActualTPS(), p.Ball.X, p.Ball.Y, p.Ball.VX, p.Ball.VY)
		ebitenutil.DebugPrintAt(screen, msg, 0, p.Height-32)
	}
}

func (p *Play) drawBackground(screen *ebiten.Image) {
	if p.sprites == nil || p.sprites.Background == nil {
		screen.Fill(color.Black)
		return
	}
	bg := p.sprites.Background
	b := bg.Bounds()

	// Stretch the table over the whole window
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.Width)/float64(b.Dx()), float64(p.Height)/float64(b.Dy()))
	screen.DrawImage(bg, op)
}

func drawRect(screen *ebiten.Image, x, y, w, h int, c color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}
