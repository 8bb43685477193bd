package main

import (
	"errors"
	"flag"
	"image"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"pong/internal/assets"
	"pong/internal/config"
	"pong/internal/gamemode"
	"pong/internal/sound"
)

// Screen Constants
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TPS          = 60
)

var (
	configFlag = flag.String("config", config.DefaultPath, "path to the TOML config file")
	debugFlag  = flag.Bool("debug", false, "log frame events and show the debug overlay")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run returns the process exit code so deferred releases happen before exit.
func run() int {
	log.SetFlags(0)
	log.SetPrefix("pong: ")
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}
	if *debugFlag {
		cfg.Debug = true
	}
	debugLog := newDebugLogger(cfg.Debug)

	// 1. Window Setup
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(TPS)

	am := assets.NewManager(cfg.Assets.FS())

	icon, err := am.DecodeImage(cfg.Assets.Icon)
	if err != nil {
		log.Printf("window icon: %v", err)
		return 1
	}
	ebiten.SetWindowIcon([]image.Image{icon})

	// 2. Resources, each released by its owner
	sprites, err := loadSprites(am, cfg.Assets)
	if err != nil {
		log.Printf("textures: %v", err)
		return 1
	}
	defer sprites.Dispose()

	jukebox, err := loadJukebox(audio.NewContext(sound.SampleRate), am, cfg)
	if err != nil {
		log.Printf("audio: %v", err)
		return 1
	}
	defer func() {
		if err := jukebox.Close(); err != nil {
			log.Printf("close audio: %v", err)
		}
	}()

	if err := jukebox.StartMusic(); err != nil {
		log.Printf("play music: %v", err)
		return 1
	}

	// 3. Initialize Game
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	play := gamemode.NewPlay(ScreenWidth, ScreenHeight, sprites, rng)
	play.Debug = cfg.Debug

	game := NewGame(play, jukebox, debugLog)
	game.Effects = cfg.Audio.Effects

	// 4. Run Loop
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("run game: %v", err)
		return 1
	}
	return 0
}

func newDebugLogger(enabled bool) *log.Logger {
	if !enabled {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "pong: debug: ", log.Lmicroseconds)
}

func loadSprites(am *assets.Manager, a config.Assets) (*gamemode.Sprites, error) {
	bg, err := am.LoadImage(a.Background)
	if err != nil {
		return nil, err
	}

	face, err := am.LoadFont(a.Font, a.FontSize)
	if err != nil {
		bg.Deallocate()
		return nil, err
	}
	return &gamemode.Sprites{Background: bg, Face: face}, nil
}

func loadJukebox(ctx *audio.Context, am *assets.Manager, cfg *config.Config) (*sound.Jukebox, error) {
	j, err := sound.Load(ctx, am.ReadFile, sound.Files{
		EffectC:   cfg.Assets.EffectC,
		EffectSDL: cfg.Assets.EffectSDL,
		Music:     cfg.Assets.Music,
	})
	if err != nil {
		return nil, err
	}
	j.SetVolume(cfg.Audio.Volume)
	return j, nil
}
