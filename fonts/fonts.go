// Package fonts owns the game's font faces. Load parses the bundled
// TTF once at startup and registers a face per UI role at its fixed
// pixel size.
package fonts

import (
	"fmt"
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Menu    FontName = "menu"
	Heading FontName = "heading"
	HUD     FontName = "hud"
	Small   FontName = "small"
)

// sizes pins each role to the pixel size the screens were laid out for.
var sizes = map[FontName]float64{
	Menu:    12,
	Heading: 20,
	HUD:     10,
	Small:   8,
}

var faces = map[FontName]font.Face{}

// Load registers a face for every role from ttf. A nil or unparsable
// ttf falls back to Go Regular so the menus stay readable without the
// bundled font file.
func Load(ttf []byte) {
	data, err := truetype.Parse(ttf)
	if err != nil {
		if len(ttf) > 0 {
			log.Printf("fonts: bad font file, using Go Regular: %v", err)
		}
		data, _ = truetype.Parse(goregular.TTF)
	}
	for name, size := range sizes {
		faces[name] = truetype.NewFace(data, &truetype.Options{Size: size})
	}
}

func (f FontName) Get() font.Face {
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	return face
}
