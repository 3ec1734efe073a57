package imageloader

import (
	"github.com/disintegration/imaging"
	"image"
	"io"
	"os"
	"time"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common/logger"
)

type ImageLoader struct {
	thumbnails *ThumbnailCache

	api.ImageLoader
}

func NewImageLoader() *ImageLoader {
	logger.Debug.Printf("Initializing image loader...")
	loader := &ImageLoader{}
	loader.thumbnails = NewThumbnailCache(loader.LoadImage)
	logger.Debug.Printf("Image loader initialized")
	return loader
}

// LoadImage decodes the image and turns it upright according to its EXIF
// orientation. Images without EXIF data are returned as decoded.
func (s *ImageLoader) LoadImage(imageFile *apitype.ImageFile) (image.Image, error) {
	startTime := time.Now()
	file, err := os.Open(imageFile.Path())
	if err != nil {
		return nil, err
	}
	defer file.Close()

	orientation, exifErr := apitype.ReadExifOrientation(file)
	if exifErr != nil {
		logger.Trace.Printf("No EXIF orientation for %s: %s", imageFile, exifErr)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	decoded, err := imaging.Decode(file)
	if err != nil {
		return nil, err
	}

	rotation, flipped := apitype.ExifOrientationToAngleAndFlip(orientation)
	loaded := apitype.ExifRotateImage(decoded, rotation, flipped)

	logger.Trace.Printf("%s: Loaded in %s", imageFile, time.Since(startTime).String())
	return loaded, nil
}

func (s *ImageLoader) LoadThumbnail(imageFile *apitype.ImageFile, size apitype.Size) (image.Image, error) {
	return s.thumbnails.Get(imageFile, size)
}
