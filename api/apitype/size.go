package apitype

import (
	"errors"
	"fmt"
	"image"
	"math"
)

var ErrInvalidGeometry = errors.New("invalid geometry")

type Size struct {
	width  int
	height int
}

func (s Size) Width() int {
	return s.width
}

func (s Size) Height() int {
	return s.height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

// FitResult is the placement of an image inside a canvas. StartX and StartY
// are the top-left corner of the scaled image in canvas coordinates.
type FitResult struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	StartX float64 `json:"startX"`
	StartY float64 `json:"startY"`
}

// Rectangle rounds the placement to whole pixels.
func (s FitResult) Rectangle() image.Rectangle {
	x := int(math.Round(s.StartX))
	y := int(math.Round(s.StartY))
	return image.Rect(x, y, x+int(math.Round(s.Width)), y+int(math.Round(s.Height)))
}

// Fit scales an image of imageWidth x imageHeight to the canvas and centres
// it on the other axis. Portrait images (aspect ratio below 1) are height
// bound, everything else is width bound. On a square canvas the image always
// fits. On other canvases the bound is kept as is, so the image may overflow
// the short side and get a negative start. Non-positive and non-finite
// values are rejected.
func Fit(canvasWidth, canvasHeight, imageWidth, imageHeight float64) (FitResult, error) {
	if err := validateGeometry(canvasWidth, canvasHeight, imageWidth, imageHeight); err != nil {
		return FitResult{}, err
	}

	aspectRatio := imageWidth / imageHeight

	var result FitResult
	if aspectRatio < 1 {
		result.Height = canvasHeight
		result.Width = canvasHeight * aspectRatio
		result.StartY = 0
		result.StartX = (canvasWidth - result.Width) / 2
	} else {
		result.Width = canvasWidth
		result.Height = canvasWidth / aspectRatio
		result.StartX = 0
		result.StartY = (canvasHeight - result.Height) / 2
	}
	return result, nil
}

// FitToSize is Fit for integer canvas and image sizes.
func FitToSize(canvas Size, img Size) (FitResult, error) {
	return Fit(float64(canvas.width), float64(canvas.height), float64(img.width), float64(img.height))
}

func validateGeometry(values ...float64) error {
	for _, value := range values {
		if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
			return fmt.Errorf("%w: canvas %gx%g, image %gx%g",
				ErrInvalidGeometry, values[0], values[1], values[2], values[3])
		}
	}
	return nil
}
