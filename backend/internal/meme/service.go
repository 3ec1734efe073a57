package meme

import (
	"fmt"
	"github.com/google/uuid"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/backend/internal/canvas"
	"vincit.fi/meme-generator/backend/internal/speech"
	"vincit.fi/meme-generator/common/logger"
)

// session is what a single meme page holds between user actions.
type session struct {
	imageFile *apitype.ImageFile
	caption   *apitype.Caption
	controls  apitype.Controls
	utterance *apitype.Utterance
	volume    apitype.Volume
}

func newSession() session {
	return session{
		controls: apitype.NewControls(),
		volume:   apitype.DefaultVolume,
	}
}

type Service struct {
	library   api.ImageLibrary
	loader    api.ImageLoader
	canvas    *canvas.Canvas
	voices    *speech.VoiceCatalog
	speaker   api.Speaker
	store     api.MemeStore
	sender    api.Sender
	outputDir string
	now       func() time.Time

	session session
	mux     sync.Mutex

	api.MemeService
}

// NewService creates the meme session. speaker may be nil when speech is
// not configured.
func NewService(library api.ImageLibrary, loader api.ImageLoader, memeCanvas *canvas.Canvas,
	voices *speech.VoiceCatalog, speaker api.Speaker, store api.MemeStore, sender api.Sender, outputDir string) *Service {
	return &Service{
		library:   library,
		loader:    loader,
		canvas:    memeCanvas,
		voices:    voices,
		speaker:   speaker,
		store:     store,
		sender:    sender,
		outputDir: outputDir,
		now:       time.Now,
		session:   newSession(),
	}
}

func (s *Service) SelectImage(name string) (*apitype.FitResult, error) {
	imageFile, err := s.library.Resolve(name)
	if err != nil {
		return nil, err
	}
	img, err := s.loader.LoadImage(imageFile)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", imageFile, err)
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	fit, err := s.canvas.DrawImage(img)
	if err != nil {
		return nil, err
	}
	s.session.imageFile = imageFile
	logger.Info.Printf("Selected %s", imageFile)

	s.sender.SendCommandToTopic(api.ImageLoaded, &api.ImageLoadedCommand{
		ImageFile: imageFile,
		Fit:       fit,
	})
	return &fit, nil
}

func (s *Service) Generate(caption *apitype.Caption) (*apitype.Meme, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if !s.session.controls.Generate {
		return nil, fmt.Errorf("generate: %w", api.ErrControlDisabled)
	}

	s.canvas.DrawCaption(caption)
	s.session.caption = caption
	s.session.controls.Toggle()

	if s.voices.Populate() {
		s.sender.SendCommandToTopic(api.VoicesUpdated, &api.UpdateVoicesCommand{Options: s.voices.Options()})
	}

	s.session.utterance = apitype.NewUtterance(caption.SpokenText())
	s.session.utterance.SetVoice(s.voices.Selected())
	s.session.utterance.SetVolume(s.session.volume)

	meme, err := s.persist(caption)
	if err != nil {
		return nil, err
	}

	logger.Info.Printf("Generated meme %s", meme.Id)
	s.sender.SendCommandToTopic(api.MemeGenerated, &api.MemeGeneratedCommand{Meme: meme})
	return meme, nil
}

func (s *Service) persist(caption *apitype.Caption) (*apitype.Meme, error) {
	id := apitype.MemeId(uuid.New().String())
	meme := &apitype.Meme{
		Id:           id,
		ImageName:    s.session.imageFile.FileName(),
		TopText:      caption.Top(),
		BottomText:   caption.Bottom(),
		CanvasWidth:  s.canvas.Size().Width(),
		CanvasHeight: s.canvas.Size().Height(),
		FileName:     string(id) + ".png",
		Created:      s.now(),
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(s.outputDir, meme.FileName)
	if err := s.writeCanvas(path); err != nil {
		removeFile(path)
		return nil, fmt.Errorf("writing meme %s: %w", id, err)
	}

	if err := s.store.AddMeme(meme); err != nil {
		removeFile(path)
		return nil, err
	}
	return meme, nil
}

func (s *Service) writeCanvas(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.canvas.EncodePNG(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func removeFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warn.Printf("Could not remove %s: %s", path, err)
	}
}

func (s *Service) Clear() error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if !s.session.controls.Clear {
		return fmt.Errorf("clear: %w", api.ErrControlDisabled)
	}

	s.session.controls.Toggle()
	s.canvas.Clear()
	logger.Debug.Print("Canvas cleared")

	s.sender.SendCommandToTopic(api.CanvasCleared, &api.CanvasClearedCommand{Controls: s.session.controls})
	return nil
}

// ReadAloud speaks the caption of the generated meme with the named voice.
// An unknown voice name keeps the voice used previously.
func (s *Service) ReadAloud(voiceName string, volume apitype.Volume) (*apitype.Utterance, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if !s.session.controls.Read || s.session.utterance == nil {
		return nil, fmt.Errorf("read aloud: %w", api.ErrControlDisabled)
	}
	if s.speaker == nil {
		return nil, api.ErrSpeechUnavailable
	}

	utterance := s.session.utterance
	if voice := s.voices.Select(voiceName); voice != nil {
		utterance.SetVoice(voice)
	} else if voiceName != "" {
		logger.Warn.Printf("Unknown voice '%s'", voiceName)
	}
	s.session.volume = volume
	utterance.SetVolume(volume)
	utterance.Renew()

	s.speaker.Speak(utterance)

	snapshot := *utterance
	return &snapshot, nil
}

func (s *Service) SetVolume(volume apitype.Volume) apitype.Volume {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.session.volume = volume
	logger.Trace.Printf("Volume %d, icon %s", volume, volume.IconName())
	return volume
}

func (s *Service) State() *api.SessionState {
	s.mux.Lock()
	defer s.mux.Unlock()

	return &api.SessionState{
		ImageName: s.session.imageFile.FileName(),
		Caption: api.CaptionState{
			Top:    s.session.caption.Top(),
			Bottom: s.session.caption.Bottom(),
		},
		Controls: s.session.controls,
		Voices:   s.voices.Options(),
		Volume:   s.session.volume,
		Icon:     s.session.volume.IconName(),
	}
}

func (s *Service) WriteCanvas(writer io.Writer) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.canvas.EncodePNG(writer)
}

func (s *Service) History(limit int) ([]*apitype.Meme, error) {
	return s.store.GetLatestMemes(limit)
}

func (s *Service) MemeFile(id apitype.MemeId) (string, error) {
	meme, err := s.store.GetMemeById(id)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.outputDir, meme.FileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("meme file %s: %w", meme.FileName, api.ErrNotFound)
		}
		return "", err
	}
	return path, nil
}

func (s *Service) Close() {
	if s.speaker != nil {
		s.speaker.Close()
	}
}
