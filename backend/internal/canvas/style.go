package canvas

import (
	"fmt"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"image/color"
)

const defaultStrokeWidth = 1

// CaptionStyle is how caption text is painted: filled glyphs with an outline.
type CaptionStyle struct {
	face        font.Face
	fill        color.Color
	stroke      color.Color
	strokeWidth int
}

func NewCaptionStyle(fontSize float64, fillColor string, strokeColor string) (*CaptionStyle, error) {
	fill, err := ParseColor(fillColor)
	if err != nil {
		return nil, err
	}
	stroke, err := ParseColor(strokeColor)
	if err != nil {
		return nil, err
	}
	face, err := newFace(fontSize)
	if err != nil {
		return nil, err
	}
	return &CaptionStyle{
		face:        face,
		fill:        fill,
		stroke:      stroke,
		strokeWidth: defaultStrokeWidth,
	}, nil
}

func newFace(fontSize float64) (font.Face, error) {
	if fontSize <= 0 {
		return nil, fmt.Errorf("invalid font size %g", fontSize)
	}
	parsed, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing caption font: %w", err)
	}
	return truetype.NewFace(parsed, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// ParseColor reads a hex colour such as "#fff" or "#ffffff".
func ParseColor(value string) (color.Color, error) {
	parsed, err := colorful.Hex(value)
	if err != nil {
		return nil, fmt.Errorf("invalid colour '%s': %w", value, err)
	}
	r, g, b := parsed.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func (s *CaptionStyle) Face() font.Face {
	return s.face
}

func (s *CaptionStyle) Fill() color.Color {
	return s.fill
}

func (s *CaptionStyle) Stroke() color.Color {
	return s.stroke
}
