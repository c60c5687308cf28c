// Package assets loads and caches game images and audio.
//
// Character sprite sheets, mugshots and stage art are user content, so
// loaders read from an fs.FS supplied by the caller rather than an
// embedded filesystem. main passes os.DirFS of the content directory.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var placeholderColor = color.RGBA{R: 0xff, B: 0xff, A: 0xff}

// ImageLoader caches decoded images by path so sprite sheets shared by
// several actions are only decoded once.
type ImageLoader struct {
	fsys fs.FS

	mu    sync.Mutex
	cache map[string]*ebiten.Image
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// Load returns the image at path, decoding it on first use.
func (l *ImageLoader) Load(path string) (*ebiten.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	l.cache[path] = img
	return img, nil
}

// LoadOrPlaceholder returns the image at path, or a flat magenta
// placeholder of the given size when the file is missing or broken.
// Character select keeps working when a roster entry ships without art.
func (l *ImageLoader) LoadOrPlaceholder(path string, w, h int) *ebiten.Image {
	img, err := l.Load(path)
	if err == nil {
		return img
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	placeholder := ebiten.NewImage(w, h)
	placeholder.Fill(placeholderColor)
	return placeholder
}
