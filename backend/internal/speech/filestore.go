package speech

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"vincit.fi/meme-generator/api"
)

// FileStore keeps synthesized audio as <dir>/<name>.<format>.
type FileStore struct {
	dir    string
	format string

	api.AudioStore
}

func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "audio"
	}
	return &FileStore{dir: dir, format: responseFormat}
}

func (s *FileStore) Save(audio *api.Audio, name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	format := audio.Format
	if format == "" {
		format = s.format
	}
	path := filepath.Join(s.dir, fmt.Sprintf("%s.%s", name, format))
	if err := os.WriteFile(path, audio.Data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *FileStore) Find(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, fmt.Sprintf("%s.%s", name, s.format))
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("audio %s: %w", name, api.ErrNotFound)
		}
		return "", err
	}
	return path, nil
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("'%s': %w", name, api.ErrInvalidName)
	}
	return nil
}
