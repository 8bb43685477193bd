package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Manager loads game files from a read-only filesystem rooted at the
// game directory.
type Manager struct {
	fsys fs.FS
}

func NewManager(fsys fs.FS) *Manager {
	return &Manager{fsys: fsys}
}

// ReadFile returns the raw bytes of name.
func (m *Manager) ReadFile(name string) ([]byte, error) {
	data, err := fs.ReadFile(m.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", name, err)
	}
	return data, nil
}

// DecodeImage decodes name into a CPU-side image.
func (m *Manager) DecodeImage(name string) (image.Image, error) {
	data, err := m.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", name, err)
	}
	return img, nil
}

// LoadImage loads a PNG into VRAM.
func (m *Manager) LoadImage(name string) (*ebiten.Image, error) {
	img, err := m.DecodeImage(name)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFont parses a TrueType/OpenType file into a face of the given size.
func (m *Manager) LoadFont(name string, size float64) (text.Face, error) {
	data, err := m.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", name, err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}
