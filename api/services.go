package api

import (
	"context"
	"errors"
	"image"
	"io"
	"vincit.fi/meme-generator/api/apitype"
)

var (
	ErrControlDisabled   = errors.New("control is disabled")
	ErrNotFound          = errors.New("not found")
	ErrInvalidName       = errors.New("invalid file name")
	ErrSpeechUnavailable = errors.New("speech synthesis unavailable")
)

type ImageLibrary interface {
	List() ([]*apitype.ImageFile, error)
	Resolve(name string) (*apitype.ImageFile, error)
	Save(name string, reader io.Reader) (*apitype.ImageFile, error)
}

type ImageLoader interface {
	LoadImage(imageFile *apitype.ImageFile) (image.Image, error)
	LoadThumbnail(imageFile *apitype.ImageFile, size apitype.Size) (image.Image, error)
}

// Audio is synthesized speech.
type Audio struct {
	Data   []byte
	Format string
}

type Synthesizer interface {
	Voices() []*apitype.Voice
	Synthesize(ctx context.Context, utterance *apitype.Utterance) (*Audio, error)
}

type AudioStore interface {
	Save(audio *Audio, name string) (string, error)
	Find(name string) (string, error)
}

type Speaker interface {
	Speak(utterance *apitype.Utterance)
	Cancel()
	Close()
}

type MemeStore interface {
	AddMeme(meme *apitype.Meme) error
	GetMemeById(id apitype.MemeId) (*apitype.Meme, error)
	GetLatestMemes(limit int) ([]*apitype.Meme, error)
}

type SessionState struct {
	ImageName string                `json:"imageName"`
	Caption   CaptionState          `json:"caption"`
	Controls  apitype.Controls      `json:"controls"`
	Voices    []apitype.VoiceOption `json:"voices"`
	Volume    apitype.Volume        `json:"volume"`
	Icon      string                `json:"icon"`
}

type CaptionState struct {
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
}

type MemeService interface {
	SelectImage(name string) (*apitype.FitResult, error)
	Generate(caption *apitype.Caption) (*apitype.Meme, error)
	Clear() error
	ReadAloud(voiceName string, volume apitype.Volume) (*apitype.Utterance, error)
	SetVolume(volume apitype.Volume) apitype.Volume
	State() *SessionState
	WriteCanvas(writer io.Writer) error
	History(limit int) ([]*apitype.Meme, error)
	MemeFile(id apitype.MemeId) (string, error)
	Close()
}
