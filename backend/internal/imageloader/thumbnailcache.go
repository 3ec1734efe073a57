package imageloader

import (
	"github.com/nfnt/resize"
	"image"
	"os"
	"sync"
	"time"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common/logger"
)

type thumbnailKey struct {
	path string
	size apitype.Size
}

type thumbnail struct {
	img     image.Image
	modTime time.Time
}

// ThumbnailCache keeps thumbnails until the source file changes.
type ThumbnailCache struct {
	load       func(*apitype.ImageFile) (image.Image, error)
	thumbnails map[thumbnailKey]*thumbnail
	mux        sync.Mutex
}

func NewThumbnailCache(load func(*apitype.ImageFile) (image.Image, error)) *ThumbnailCache {
	return &ThumbnailCache{
		load:       load,
		thumbnails: map[thumbnailKey]*thumbnail{},
	}
}

func (s *ThumbnailCache) Get(imageFile *apitype.ImageFile, size apitype.Size) (image.Image, error) {
	stat, err := os.Stat(imageFile.Path())
	if err != nil {
		return nil, err
	}

	key := thumbnailKey{path: imageFile.Path(), size: size}

	s.mux.Lock()
	defer s.mux.Unlock()
	if cached, ok := s.thumbnails[key]; ok && cached.modTime.Equal(stat.ModTime()) {
		logger.Trace.Print("Use cached thumbnail")
		return cached.img, nil
	}

	full, err := s.load(imageFile)
	if err != nil {
		logger.Error.Printf("Could not load thumbnail: %s", imageFile)
		return nil, err
	}

	img := resize.Thumbnail(uint(size.Width()), uint(size.Height()), full, resize.Lanczos3)
	s.thumbnails[key] = &thumbnail{img: img, modTime: stat.ModTime()}
	return img, nil
}

func (s *ThumbnailCache) Len() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.thumbnails)
}

func (s *ThumbnailCache) Purge() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.thumbnails = map[thumbnailKey]*thumbnail{}
}
