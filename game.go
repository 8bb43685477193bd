package main

import (
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pong/internal/entity"
	"pong/internal/gamemode"
	"pong/internal/input"
	"pong/internal/sound"
)

// Music is what the frame loop needs from the audio side.
type Music interface {
	ToggleMusic() (paused bool)
	PlayEffect(e sound.Effect) error
}

// Game is the frame driver: input, physics, then draw.
type Game struct {
	Tick int

	// Effects plays a sound on paddle hits and resets.
	Effects bool

	play  *gamemode.Play
	music Music
	log   *log.Logger

	justPressed func(ebiten.Key) bool
	sample      func() input.Snapshot
}

func NewGame(play *gamemode.Play, music Music, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Game{
		play:        play,
		music:       music,
		log:         logger,
		justPressed: inpututil.IsKeyJustPressed,
		sample:      input.Keyboard,
	}
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	g.Tick++

	if g.justPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.justPressed(ebiten.KeyM) {
		paused := g.music.ToggleMusic()
		g.log.Printf("tick %d: music paused=%v", g.Tick, paused)
	}

	ev := g.play.Update(g.sample())

	if ev.Has(entity.EventReset) {
		b := g.play.Ball
		g.log.Printf("tick %d: ball reset, velocity (%d, %d)", g.Tick, b.VX, b.VY)
	}
	if g.Effects {
		var err error
		switch {
		case ev.Has(entity.EventReset):
			err = g.music.PlayEffect(sound.EffectSDL)
		case ev.Has(entity.EventPaddle):
			err = g.music.PlayEffect(sound.EffectC)
		}
		if err != nil {
			g.log.Printf("tick %d: %v", g.Tick, err)
		}
	}
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.play.Draw(screen)
}

// Layout: the court is always 1280x720, Ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
