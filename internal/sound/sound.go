package sound

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

const SampleRate = 44100

// Effect names one of the preloaded sound effects.
type Effect int

const (
	EffectC Effect = iota
	EffectSDL
)

// player is the part of *audio.Player the jukebox drives.
type player interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
	Close() error
}

// Jukebox owns the looping music track and the effect players.
// It is only touched from the game loop goroutine.
type Jukebox struct {
	music   player
	effects map[Effect]player
	paused  bool
	closed  bool
}

func newJukebox(music player, effects map[Effect]player) *Jukebox {
	return &Jukebox{music: music, effects: effects}
}

// StartMusic begins looped playback from the start of the track.
func (j *Jukebox) StartMusic() error {
	if j.closed {
		return fmt.Errorf("jukebox closed")
	}
	if err := j.music.Rewind(); err != nil {
		return fmt.Errorf("rewind music: %w", err)
	}
	j.music.Play()
	j.paused = false
	return nil
}

// ToggleMusic flips between paused and playing and reports the new state.
func (j *Jukebox) ToggleMusic() bool {
	if j.closed {
		return j.paused
	}
	j.paused = !j.paused
	if j.paused {
		j.music.Pause()
	} else {
		j.music.Play()
	}
	return j.paused
}

func (j *Jukebox) Paused() bool { return j.paused }

func (j *Jukebox) SetVolume(v float64) {
	j.music.SetVolume(v)
	for _, p := range j.effects {
		p.SetVolume(v)
	}
}

// PlayEffect restarts the effect from the beginning. Unknown effects are ignored.
// If the effect cannot be rewound it keeps playing from where it is.
func (j *Jukebox) PlayEffect(e Effect) error {
	p, ok := j.effects[e]
	if !ok || j.closed {
		return nil
	}
	err := p.Rewind()
	p.Play()
	if err != nil {
		return fmt.Errorf("rewind effect %d: %w", e, err)
	}
	return nil
}

// Close stops and releases every player and reports the first failure.
// It is safe to call more than once.
func (j *Jukebox) Close() error {
	if j.closed {
		return nil
	}
	j.closed = true

	players := make([]player, 0, len(j.effects)+1)
	if j.music != nil {
		players = append(players, j.music)
	}
	for _, e := range sortedEffects(j.effects) {
		players = append(players, j.effects[e])
	}
	return closePlayers(players)
}

func closePlayers(players []player) error {
	var first error
	for _, p := range players {
		p.Pause()
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func sortedEffects(effects map[Effect]player) []Effect {
	keys := make([]Effect, 0, len(effects))
	for e := range effects {
		keys = append(keys, e)
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })
	return keys
}

// --- Loading ---

// Files names the audio assets, relative to whatever read resolves against.
type Files struct {
	EffectC   string
	EffectSDL string
	Music     string
}

// Load reads and decodes every audio asset. On failure, players built so
// far are closed before the error is returned.
func Load(ctx *audio.Context, read func(name string) ([]byte, error), files Files) (*Jukebox, error) {
	effect := func(data []byte) (player, error) {
		p, err := LoadEffect(ctx, data)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	music := func(data []byte) (player, error) {
		p, err := LoadMusic(ctx, data)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return load(read, files, effect, music)
}

func load(read func(string) ([]byte, error), files Files, newEffect, newMusic func([]byte) (player, error)) (_ *Jukebox, err error) {
	var built []player
	defer func() {
		if err != nil {
			closePlayers(built)
		}
	}()

	effects := make(map[Effect]player, 2)
	for _, fx := range []struct {
		effect Effect
		name   string
	}{
		{EffectC, files.EffectC},
		{EffectSDL, files.EffectSDL},
	} {
		data, err := read(fx.name)
		if err != nil {
			return nil, fmt.Errorf("load effect: %w", err)
		}
		p, err := newEffect(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fx.name, err)
		}
		built = append(built, p)
		effects[fx.effect] = p
	}

	data, err := read(files.Music)
	if err != nil {
		return nil, fmt.Errorf("load music: %w", err)
	}
	m, err := newMusic(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", files.Music, err)
	}
	return newJukebox(m, effects), nil
}

// LoadMusic decodes an Ogg/Vorbis track and wraps it in an endless loop.
// The track is decoded lazily, so data must stay untouched while playing.
func LoadMusic(ctx *audio.Context, data []byte) (*audio.Player, error) {
	stream, err := vorbis.DecodeF32(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode music: %w", err)
	}
	loop := audio.NewInfiniteLoopF32(stream, stream.Length())
	p, err := ctx.NewPlayerF32(loop)
	if err != nil {
		return nil, fmt.Errorf("create music player: %w", err)
	}
	return p, nil
}

// LoadEffect fully decodes a short Ogg/Vorbis clip into memory.
func LoadEffect(ctx *audio.Context, data []byte) (*audio.Player, error) {
	stream, err := vorbis.DecodeF32(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode effect: %w", err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read effect: %w", err)
	}
	return ctx.NewPlayerF32FromBytes(pcm), nil
}
