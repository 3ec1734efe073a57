package apitype

import (
	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"image"
	"image/color"
	"io"
)

const exifUnchangedOrientation = 1

const (
	noRotate  = 0
	rotate180 = 180
	left90    = 90
	right90   = 270

	noHorizontalFlip = false
	horizontalFlip   = true
)

// ReadExifOrientation returns the EXIF orientation tag of the image in r.
// Images without EXIF data or without the tag report the unchanged
// orientation together with the decoding error.
func ReadExifOrientation(r io.Reader) (int, error) {
	decodedExif, err := exif.Decode(r)
	if err != nil {
		return exifUnchangedOrientation, err
	}
	tag, err := decodedExif.Get(exif.Orientation)
	if err != nil {
		return exifUnchangedOrientation, err
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return exifUnchangedOrientation, err
	}
	return orientation, nil
}

// ExifOrientationToAngleAndFlip converts an EXIF orientation to the
// counter-clockwise angle and horizontal flip that restore the upright image.
func ExifOrientationToAngleAndFlip(orientation int) (float64, bool) {
	switch orientation {
	case 1:
		return noRotate, noHorizontalFlip
	case 2:
		return noRotate, horizontalFlip
	case 3:
		return rotate180, noHorizontalFlip
	case 4:
		return rotate180, horizontalFlip
	case 5:
		return right90, horizontalFlip
	case 6:
		return right90, noHorizontalFlip
	case 7:
		return left90, horizontalFlip
	case 8:
		return left90, noHorizontalFlip
	default:
		return noRotate, noHorizontalFlip
	}
}

func ExifRotateImage(loadedImage image.Image, rotation float64, flipped bool) image.Image {
	if rotation != noRotate {
		loadedImage = imaging.Rotate(loadedImage, rotation, color.Black)
	}
	if flipped {
		return imaging.FlipH(loadedImage)
	} else {
		return loadedImage
	}
}
