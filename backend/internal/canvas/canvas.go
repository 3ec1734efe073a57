package canvas

import (
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"image"
	"image/color"
	"image/png"
	"io"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common/logger"
)

type baseline int

const (
	baselineTop baseline = iota
	baselineBottom
)

// Canvas is the fixed size surface memes are drawn on. It is not safe for
// concurrent use.
type Canvas struct {
	size       apitype.Size
	background color.Color
	style      *CaptionStyle
	rgba       *image.RGBA
}

func NewCanvas(size apitype.Size, background color.Color, style *CaptionStyle) *Canvas {
	return &Canvas{
		size:       size,
		background: background,
		style:      style,
		rgba:       image.NewRGBA(image.Rect(0, 0, size.Width(), size.Height())),
	}
}

func (s *Canvas) Size() apitype.Size {
	return s.size
}

// DrawImage fills the canvas with the background colour and draws img at its
// Fit placement. Placements overflowing a non-square canvas are clipped.
func (s *Canvas) DrawImage(img image.Image) (apitype.FitResult, error) {
	fit, err := apitype.FitToSize(s.size, apitype.SizeFromRectangle(img.Bounds()))
	if err != nil {
		return fit, err
	}

	logger.Debug.Printf("Drawing %s image at %+v", apitype.SizeFromRectangle(img.Bounds()), fit)
	draw.Draw(s.rgba, s.rgba.Bounds(), &image.Uniform{C: s.background}, image.Point{}, draw.Src)

	target := fit.Rectangle()
	width := max(target.Dx(), 1)
	height := max(target.Dy(), 1)
	resized := imaging.Resize(img, width, height, imaging.Linear)
	draw.Draw(s.rgba, image.Rect(target.Min.X, target.Min.Y, target.Min.X+width, target.Min.Y+height),
		resized, resized.Bounds().Min, draw.Over)
	return fit, nil
}

// DrawCaption writes the top text hanging from the top edge and the bottom
// text standing on the bottom edge, both centred horizontally.
func (s *Canvas) DrawCaption(caption *apitype.Caption) {
	s.drawText(caption.Top(), baselineTop)
	s.drawText(caption.Bottom(), baselineBottom)
}

func (s *Canvas) drawText(text string, base baseline) {
	if text == "" {
		return
	}
	face := s.style.Face()
	metrics := face.Metrics()
	advance := font.MeasureString(face, text)

	x := fixed.I(s.size.Width()/2) - advance/2
	var y fixed.Int26_6
	switch base {
	case baselineTop:
		y = metrics.Ascent
	case baselineBottom:
		y = fixed.I(s.size.Height()) - metrics.Descent
	}

	strokeWidth := fixed.I(s.style.strokeWidth)
	for dx := -strokeWidth; dx <= strokeWidth; dx += fixed.I(1) {
		for dy := -strokeWidth; dy <= strokeWidth; dy += fixed.I(1) {
			if dx != 0 || dy != 0 {
				s.drawString(text, s.style.Stroke(), fixed.Point26_6{X: x + dx, Y: y + dy})
			}
		}
	}
	s.drawString(text, s.style.Fill(), fixed.Point26_6{X: x, Y: y})
}

func (s *Canvas) drawString(text string, c color.Color, dot fixed.Point26_6) {
	drawer := &font.Drawer{
		Dst:  s.rgba,
		Src:  image.NewUniform(c),
		Face: s.style.Face(),
		Dot:  dot,
	}
	drawer.DrawString(text)
}

// Clear makes every pixel transparent.
func (s *Canvas) Clear() {
	draw.Draw(s.rgba, s.rgba.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// Image returns a copy of the current canvas.
func (s *Canvas) Image() *image.RGBA {
	snapshot := image.NewRGBA(s.rgba.Bounds())
	copy(snapshot.Pix, s.rgba.Pix)
	return snapshot
}

func (s *Canvas) EncodePNG(writer io.Writer) error {
	return png.Encode(writer, s.rgba)
}
