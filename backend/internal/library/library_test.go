package library

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"vincit.fi/meme-generator/api"
)

func initLibraryTest(t *testing.T, files ...string) *ImageLibrary {
	dir := t.TempDir()
	for _, file := range files {
		require.Nil(t, os.WriteFile(filepath.Join(dir, file), []byte("data"), 0o644))
	}
	return NewImageLibrary(dir)
}

func TestImageLibrary_List(t *testing.T) {
	a := assert.New(t)
	sut := initLibraryTest(t, "b.png", "a.jpg", "notes.txt", "c.JPEG")
	require.Nil(t, os.Mkdir(filepath.Join(sut.Directory(), "dir.jpg"), 0o755))

	imageFiles, err := sut.List()
	a.Nil(err)
	if a.Equal(3, len(imageFiles)) {
		a.Equal("a.jpg", imageFiles[0].FileName())
		a.Equal("b.png", imageFiles[1].FileName())
		a.Equal("c.JPEG", imageFiles[2].FileName())
		a.Equal(filepath.Join(sut.Directory(), "a.jpg"), imageFiles[0].Path())
	}
}

func TestImageLibrary_List_MissingDirectory(t *testing.T) {
	a := assert.New(t)
	sut := NewImageLibrary(filepath.Join(t.TempDir(), "missing"))

	imageFiles, err := sut.List()
	a.Nil(err)
	a.Empty(imageFiles)
}

func TestImageLibrary_Resolve(t *testing.T) {
	a := assert.New(t)
	sut := initLibraryTest(t, "cat.jpg")

	t.Run("Existing", func(t *testing.T) {
		imageFile, err := sut.Resolve("cat.jpg")
		a.Nil(err)
		a.Equal(filepath.Join(sut.Directory(), "cat.jpg"), imageFile.Path())
	})
	t.Run("Missing", func(t *testing.T) {
		_, err := sut.Resolve("dog.jpg")
		a.ErrorIs(err, api.ErrNotFound)
	})

	invalidNames := []string{"", "../cat.jpg", "sub/cat.jpg", `sub\cat.jpg`, ".hidden.jpg", "cat.txt", ".."}
	for _, name := range invalidNames {
		t.Run("Invalid "+name, func(t *testing.T) {
			_, err := sut.Resolve(name)
			a.ErrorIs(err, api.ErrInvalidName)
		})
	}
}

func TestImageLibrary_Save(t *testing.T) {
	a := assert.New(t)
	sut := NewImageLibrary(filepath.Join(t.TempDir(), "images"))

	imageFile, err := sut.Save("upload.png", bytes.NewReader([]byte("png data")))
	a.Nil(err)

	data, err := os.ReadFile(imageFile.Path())
	a.Nil(err)
	a.Equal("png data", string(data))

	resolved, err := sut.Resolve("upload.png")
	a.Nil(err)
	a.Equal(imageFile.Path(), resolved.Path())

	_, err = sut.Save("../escape.png", bytes.NewReader(nil))
	a.ErrorIs(err, api.ErrInvalidName)
}
