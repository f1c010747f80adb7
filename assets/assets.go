package assets

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font faces used by the figure renderer. Sizes are tuned for the default
// 1000px square canvas.
var (
	TitleFace  font.Face
	LabelFace  font.Face
	LegendFace font.Face
	AngleFace  font.Face
	MonoFace   font.Face

	// HintFont is drawn by the viewer window, not the figure renderer
	HintFont *text.GoTextFace
)

func init() {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		panic(err)
	}
	mono, err := opentype.Parse(gomono.TTF)
	if err != nil {
		panic(err)
	}

	TitleFace = newFace(bold, 30)
	LabelFace = newFace(regular, 18)
	LegendFace = newFace(regular, 17)
	AngleFace = newFace(bold, 22)
	MonoFace = newFace(mono, 15)

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	HintFont = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func newFace(fnt *opentype.Font, size float64) font.Face {
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(err)
	}
	return face
}
