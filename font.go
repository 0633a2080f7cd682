package main

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"glyph-motion/glyph"
)

// The Go fonts ship three weights, so a continuous weight is drawn with the
// nearest one.
type weightBucket int

const (
	bucketRegular weightBucket = iota
	bucketMedium
	bucketBold
)

func bucketFor(weight float64) weightBucket {
	switch {
	case weight < 450:
		return bucketRegular
	case weight < 650:
		return bucketMedium
	default:
		return bucketBold
	}
}

type fontKey struct {
	bucket weightBucket
	italic bool
}

type faceKey struct {
	fontKey
	size float64
}

var fontData = map[fontKey][]byte{
	{bucketRegular, false}: goregular.TTF,
	{bucketMedium, false}:  gomedium.TTF,
	{bucketBold, false}:    gobold.TTF,
	{bucketRegular, true}:  goitalic.TTF,
	{bucketMedium, true}:   gomediumitalic.TTF,
	{bucketBold, true}:     gobolditalic.TTF,
}

// Fonts caches parsed fonts and sized faces.
type Fonts struct {
	fonts map[fontKey]*opentype.Font
	faces map[faceKey]text.Face
}

func LoadFonts() (*Fonts, error) {
	f := &Fonts{
		fonts: make(map[fontKey]*opentype.Font, len(fontData)),
		faces: make(map[faceKey]text.Face),
	}
	for k, data := range fontData {
		parsed, err := opentype.Parse(data)
		if err != nil {
			return nil, errors.Wrapf(err, "parse font bucket %d italic=%v", k.bucket, k.italic)
		}
		f.fonts[k] = parsed
	}
	return f, nil
}

// Face returns the face closest to weight at the given size.
func (f *Fonts) Face(weight float64, italic bool, size float64) text.Face {
	key := faceKey{fontKey{bucketFor(weight), italic}, size}
	if face, ok := f.faces[key]; ok {
		return face
	}
	xf, err := opentype.NewFace(f.fonts[key.fontKey], &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		// Only invalid options fail here.
		panic(errors.Wrap(err, "new face"))
	}
	face := text.NewGoXFace(xf)
	f.faces[key] = face
	return face
}

// Advance implements page.Measurer with real metrics at the base weight.
func (f *Fonts) Advance(r rune, style glyph.Style, weight float64) float64 {
	return text.Advance(string(r), f.Face(weight, style.Italic, style.Size))
}

func (f *Fonts) LineHeight(style glyph.Style) float64 {
	m := f.Face(400, style.Italic, style.Size).Metrics()
	return m.HAscent + m.HDescent
}
