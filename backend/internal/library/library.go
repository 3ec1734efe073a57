package library

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common/logger"
)

// ImageLibrary is the directory user selected images are looked up from.
type ImageLibrary struct {
	directory string

	api.ImageLibrary
}

func NewImageLibrary(directory string) *ImageLibrary {
	return &ImageLibrary{
		directory: directory,
	}
}

func (s *ImageLibrary) Directory() string {
	return s.directory
}

func (s *ImageLibrary) List() ([]*apitype.ImageFile, error) {
	entries, err := os.ReadDir(s.directory)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn.Printf("Image directory '%s' does not exist", s.directory)
			return []*apitype.ImageFile{}, nil
		}
		return nil, err
	}

	imageFiles := make([]*apitype.ImageFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && apitype.IsSupportedImage(entry.Name()) {
			imageFiles = append(imageFiles, apitype.NewImageFile(s.directory, entry.Name()))
		}
	}
	sort.Slice(imageFiles, func(i, j int) bool {
		return imageFiles[i].FileName() < imageFiles[j].FileName()
	})
	logger.Debug.Printf("Found %d images in '%s'", len(imageFiles), s.directory)
	return imageFiles, nil
}

func (s *ImageLibrary) Resolve(name string) (*apitype.ImageFile, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	imageFile := apitype.NewImageFile(s.directory, name)
	stat, err := os.Stat(imageFile.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image '%s': %w", name, api.ErrNotFound)
		}
		return nil, err
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("'%s' is a directory: %w", name, api.ErrInvalidName)
	}
	return imageFile, nil
}

func (s *ImageLibrary) Save(name string, reader io.Reader) (*apitype.ImageFile, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.directory, 0o755); err != nil {
		return nil, err
	}

	imageFile := apitype.NewImageFile(s.directory, name)
	file, err := os.Create(imageFile.Path())
	if err != nil {
		return nil, err
	}
	defer file.Close()

	written, err := io.Copy(file, reader)
	if err != nil {
		_ = os.Remove(imageFile.Path())
		return nil, err
	}
	logger.Info.Printf("Saved %s (%d bytes)", imageFile, written)
	return imageFile, nil
}

func validateName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("'%s': %w", name, api.ErrInvalidName)
	}
	if !apitype.IsSupportedImage(name) {
		return fmt.Errorf("'%s' is not a supported image: %w", name, api.ErrInvalidName)
	}
	return nil
}
