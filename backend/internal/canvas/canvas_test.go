package canvas

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"image/color"
	"image/png"
	"testing"
	"vincit.fi/meme-generator/api/apitype"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func initCanvasTest(t *testing.T, width int, height int) *Canvas {
	style, err := NewCaptionStyle(48, "#ffffff", "#000000")
	require.Nil(t, err)
	return NewCanvas(apitype.SizeOf(width, height), black, style)
}

func filledImage(width int, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func countColor(img *image.RGBA, area image.Rectangle, c color.RGBA) int {
	count := 0
	for x := area.Min.X; x < area.Max.X; x++ {
		for y := area.Min.Y; y < area.Max.Y; y++ {
			if img.RGBAAt(x, y) == c {
				count++
			}
		}
	}
	return count
}

func TestCanvas_DrawImage_Letterbox(t *testing.T) {
	a := assert.New(t)
	sut := initCanvasTest(t, 100, 100)

	fit, err := sut.DrawImage(filledImage(200, 100, red))
	a.Nil(err)
	a.Equal(apitype.FitResult{Width: 100, Height: 50, StartX: 0, StartY: 25}, fit)

	img := sut.Image()
	a.Equal(black, img.RGBAAt(50, 10))
	a.Equal(red, img.RGBAAt(50, 50))
	a.Equal(black, img.RGBAAt(50, 90))
	a.Equal(100*50, countColor(img, img.Bounds(), red))
}

func TestCanvas_DrawImage_Pillarbox(t *testing.T) {
	a := assert.New(t)
	sut := initCanvasTest(t, 100, 100)

	fit, err := sut.DrawImage(filledImage(10, 20, red))
	a.Nil(err)
	a.Equal(apitype.FitResult{Width: 50, Height: 100, StartX: 25, StartY: 0}, fit)

	img := sut.Image()
	a.Equal(black, img.RGBAAt(10, 50))
	a.Equal(red, img.RGBAAt(50, 50))
	a.Equal(black, img.RGBAAt(90, 50))
}

func TestCanvas_DrawImage_NonSquareOverflowIsClipped(t *testing.T) {
	a := assert.New(t)
	sut := initCanvasTest(t, 200, 100)

	fit, err := sut.DrawImage(filledImage(10, 10, red))
	a.Nil(err)
	a.Equal(apitype.FitResult{Width: 200, Height: 200, StartX: 0, StartY: -50}, fit)

	img := sut.Image()
	a.Equal(image.Rect(0, 0, 200, 100), img.Bounds())
	a.Equal(200*100, countColor(img, img.Bounds(), red))
}

func TestCanvas_DrawImage_ReplacesPrevious(t *testing.T) {
	a := assert.New(t)
	sut := initCanvasTest(t, 100, 100)

	_, err := sut.DrawImage(filledImage(10, 10, red))
	a.Nil(err)
	_, err = sut.DrawImage(filledImage(40, 10, white))
	a.Nil(err)

	img := sut.Image()
	a.Equal(0, countColor(img, img.Bounds(), red))
	a.Equal(black, img.RGBAAt(50, 5))
}

func TestCanvas_DrawImage_Empty(t *testing.T) {
	sut := initCanvasTest(t, 100, 100)

	_, err := sut.DrawImage(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, apitype.ErrInvalidGeometry)
}

func TestCanvas_DrawCaption(t *testing.T) {
	a := assert.New(t)
	sut := initCanvasTest(t, 400, 400)
	_, err := sut.DrawImage(filledImage(400, 400, red))
	a.Nil(err)

	t.Run("Top only", func(t *testing.T) {
		sut.DrawCaption(apitype.NewCaption("TOP", ""))
		img := sut.Image()
		a.Greater(countColor(img, image.Rect(0, 0, 400, 60), white), 0)
		a.Equal(0, countColor(img, image.Rect(0, 60, 400, 400), white))
		// Centred: nothing at the far edges
		a.Equal(0, countColor(img, image.Rect(0, 0, 100, 60), white))
		a.Equal(0, countColor(img, image.Rect(300, 0, 400, 60), white))
		// Outline
		a.Greater(countColor(img, image.Rect(0, 0, 400, 60), black), 0)
	})
	t.Run("Bottom", func(t *testing.T) {
		sut.DrawCaption(apitype.NewCaption("", "BOTTOM"))
		img := sut.Image()
		a.Greater(countColor(img, image.Rect(0, 340, 400, 400), white), 0)
		a.Equal(0, countColor(img, image.Rect(0, 60, 400, 340), white))
	})
}

func TestCanvas_Clear(t *testing.T) {
	a := assert.New(t)
	sut := initCanvasTest(t, 50, 50)
	_, err := sut.DrawImage(filledImage(10, 10, red))
	a.Nil(err)

	sut.Clear()

	img := sut.Image()
	a.Equal(50*50, countColor(img, img.Bounds(), color.RGBA{}))
}

func TestCanvas_EncodePNG(t *testing.T) {
	a := assert.New(t)
	sut := initCanvasTest(t, 64, 32)

	buffer := &bytes.Buffer{}
	a.Nil(sut.EncodePNG(buffer))

	decoded, err := png.Decode(buffer)
	a.Nil(err)
	a.Equal(image.Rect(0, 0, 64, 32), decoded.Bounds())
}

func TestCanvas_ImageIsCopy(t *testing.T) {
	a := assert.New(t)
	sut := initCanvasTest(t, 10, 10)

	snapshot := sut.Image()
	snapshot.Set(0, 0, red)

	a.NotEqual(red, sut.Image().RGBAAt(0, 0))
}

func TestNewCaptionStyle(t *testing.T) {
	a := assert.New(t)

	t.Run("Valid", func(t *testing.T) {
		style, err := NewCaptionStyle(48, "#fff", "#000000")
		a.Nil(err)
		a.Equal(color.RGBA{R: 255, G: 255, B: 255, A: 255}, style.Fill())
		a.Equal(color.RGBA{A: 255}, style.Stroke())
		a.NotNil(style.Face())
	})
	t.Run("Invalid colour", func(t *testing.T) {
		_, err := NewCaptionStyle(48, "white", "#000000")
		a.NotNil(err)
	})
	t.Run("Invalid size", func(t *testing.T) {
		_, err := NewCaptionStyle(0, "#ffffff", "#000000")
		a.NotNil(err)
	})
}
