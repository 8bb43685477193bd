package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is read when no -config flag is given.
const DefaultPath = "pong.toml"

type Config struct {
	Title  string `toml:"title"`
	Debug  bool   `toml:"debug"`
	Assets Assets `toml:"assets"`
	Audio  Audio  `toml:"audio"`
}

// Assets are paths relative to Root.
type Assets struct {
	Root       string  `toml:"root"`
	Icon       string  `toml:"icon"`
	Background string  `toml:"background"`
	Font       string  `toml:"font"`
	FontSize   float64 `toml:"font_size"`
	EffectC    string  `toml:"effect_c"`
	EffectSDL  string  `toml:"effect_sdl"`
	Music      string  `toml:"music"`
}

type Audio struct {
	Volume  float64 `toml:"volume"`
	Effects bool    `toml:"effects"`
}

func Default() *Config {
	return &Config{
		Title: "Pong",
		Assets: Assets{
			Root:       ".",
			Icon:       "images/pong.png",
			Background: "images/pongtable.png",
			Font:       "fonts/freesansbold.ttf",
			FontSize:   50,
			EffectC:    "sounds/C.ogg",
			EffectSDL:  "sounds/SDL.ogg",
			Music:      "music/monster.ogg",
		},
		Audio: Audio{
			Volume: 1,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()
	if _, err := toml.DecodeFile(path, c); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %v out of range [0, 1]", c.Audio.Volume)
	}
	if c.Assets.FontSize <= 0 {
		return fmt.Errorf("assets.font_size must be positive")
	}
	paths := []struct {
		key, path string
	}{
		{"icon", c.Assets.Icon},
		{"background", c.Assets.Background},
		{"font", c.Assets.Font},
		{"effect_c", c.Assets.EffectC},
		{"effect_sdl", c.Assets.EffectSDL},
		{"music", c.Assets.Music},
	}
	for _, p := range paths {
		if p.path == "" {
			return fmt.Errorf("assets.%s is empty", p.key)
		}
	}
	return nil
}

// FS returns the directory the asset paths are resolved against.
func (a Assets) FS() fs.FS {
	return os.DirFS(a.Root)
}
