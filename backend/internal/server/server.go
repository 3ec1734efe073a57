package server

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"image/png"
	"net/http"
	"strconv"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common/logger"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

var (
	thumbnailSize = apitype.SizeOf(160, 160)
	errBadRequest = errors.New("bad request")
)

type Server struct {
	app     *fiber.App
	memes   api.MemeService
	library api.ImageLibrary
	loader  api.ImageLoader
	audio   api.AudioStore
	events  *EventLog
}

type imageResponse struct {
	Name string `json:"name"`
}

type speechResponse struct {
	Id     apitype.UtteranceId `json:"id"`
	Text   string              `json:"text"`
	Voice  string              `json:"voice"`
	Volume apitype.Volume      `json:"volume"`
	Gain   float64             `json:"gain"`
}

type volumeResponse struct {
	Volume apitype.Volume `json:"volume"`
	Level  int            `json:"level"`
	Icon   string         `json:"icon"`
}

func NewServer(memes api.MemeService, library api.ImageLibrary, loader api.ImageLoader, audio api.AudioStore, events *EventLog) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               "meme-generator",
			ErrorHandler:          errorHandler,
			DisableStartupMessage: true,
		}),
		memes:   memes,
		library: library,
		loader:  loader,
		audio:   audio,
		events:  events,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	s.app.Get("/fit", s.fit)

	s.app.Get("/images", s.listImages)
	s.app.Post("/images", s.uploadImage)
	s.app.Get("/images/:name/thumbnail", s.thumbnail)
	s.app.Post("/images/:name/select", s.selectImage)

	s.app.Post("/memes", s.generate)
	s.app.Post("/memes/clear", s.clear)
	s.app.Get("/memes", s.history)
	s.app.Get("/memes/:id", s.memeFile)

	s.app.Get("/canvas", s.canvas)
	s.app.Get("/state", s.state)
	s.app.Get("/events", s.listEvents)

	s.app.Post("/speech", s.readAloud)
	s.app.Get("/speech/:id", s.speechFile)
	s.app.Put("/volume", s.setVolume)
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(port int) error {
	logger.Info.Printf("Listening on port %d", port)
	return s.app.Listen(fmt.Sprintf(":%d", port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) fit(c *fiber.Ctx) error {
	values := make([]float64, 4)
	for i, key := range []string{"cw", "ch", "iw", "ih"} {
		value, err := strconv.ParseFloat(c.Query(key), 64)
		if err != nil {
			return fmt.Errorf("%s: %w", key, errBadRequest)
		}
		values[i] = value
	}

	result, err := apitype.Fit(values[0], values[1], values[2], values[3])
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (s *Server) listImages(c *fiber.Ctx) error {
	imageFiles, err := s.library.List()
	if err != nil {
		return err
	}
	images := make([]imageResponse, len(imageFiles))
	for i, imageFile := range imageFiles {
		images[i] = imageResponse{Name: imageFile.FileName()}
	}
	return c.JSON(images)
}

func (s *Server) uploadImage(c *fiber.Ctx) error {
	header, err := c.FormFile("image")
	if err != nil {
		return fmt.Errorf("image: %w", errBadRequest)
	}
	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	imageFile, err := s.library.Save(header.Filename, file)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(imageResponse{Name: imageFile.FileName()})
}

func (s *Server) thumbnail(c *fiber.Ctx) error {
	imageFile, err := s.library.Resolve(c.Params("name"))
	if err != nil {
		return err
	}
	img, err := s.loader.LoadThumbnail(imageFile, thumbnailSize)
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return err
	}
	c.Type("png")
	return c.Send(buf.Bytes())
}

func (s *Server) selectImage(c *fiber.Ctx) error {
	result, err := s.memes.SelectImage(c.Params("name"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (s *Server) generate(c *fiber.Ctx) error {
	caption := apitype.NewCaption(c.FormValue("top"), c.FormValue("bottom"))
	meme, err := s.memes.Generate(caption)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(meme)
}

func (s *Server) clear(c *fiber.Ctx) error {
	if err := s.memes.Clear(); err != nil {
		return err
	}
	return c.JSON(s.memes.State())
}

func (s *Server) history(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit <= 0 || limit > maxHistoryLimit {
		return fmt.Errorf("limit %d: %w", limit, errBadRequest)
	}
	memes, err := s.memes.History(limit)
	if err != nil {
		return err
	}
	return c.JSON(memes)
}

func (s *Server) memeFile(c *fiber.Ctx) error {
	path, err := s.memes.MemeFile(apitype.MemeId(c.Params("id")))
	if err != nil {
		return err
	}
	return c.SendFile(path)
}

func (s *Server) canvas(c *fiber.Ctx) error {
	buf := new(bytes.Buffer)
	if err := s.memes.WriteCanvas(buf); err != nil {
		return err
	}
	c.Type("png")
	return c.Send(buf.Bytes())
}

func (s *Server) state(c *fiber.Ctx) error {
	return c.JSON(s.memes.State())
}

func (s *Server) listEvents(c *fiber.Ctx) error {
	since, err := strconv.ParseUint(c.Query("since", "0"), 10, 64)
	if err != nil {
		return fmt.Errorf("since: %w", errBadRequest)
	}
	return c.JSON(s.events.Since(since))
}

func (s *Server) readAloud(c *fiber.Ctx) error {
	volume, err := parseVolume(c.FormValue("volume"), s.memes.State().Volume)
	if err != nil {
		return err
	}
	utterance, err := s.memes.ReadAloud(c.FormValue("voice"), volume)
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(speechResponse{
		Id:     utterance.Id(),
		Text:   utterance.Text(),
		Voice:  utterance.Voice().Name(),
		Volume: utterance.Volume(),
		Gain:   utterance.Volume().Gain(),
	})
}

func (s *Server) speechFile(c *fiber.Ctx) error {
	path, err := s.audio.Find(c.Params("id"))
	if err != nil {
		return err
	}
	c.Type("mp3")
	return c.SendFile(path)
}

func (s *Server) setVolume(c *fiber.Ctx) error {
	volume, err := parseVolume(c.FormValue("volume"), s.memes.State().Volume)
	if err != nil {
		return err
	}
	volume = s.memes.SetVolume(volume)
	return c.JSON(volumeResponse{
		Volume: volume,
		Level:  volume.Level(),
		Icon:   volume.IconName(),
	})
}

// parseVolume reads the slider value. Out of range values are clamped.
func parseVolume(value string, defaultVolume apitype.Volume) (apitype.Volume, error) {
	if value == "" {
		return defaultVolume, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("volume '%s': %w", value, errBadRequest)
	}
	return apitype.VolumeOf(parsed), nil
}

func statusOf(err error) int {
	var fiberError *fiber.Error
	switch {
	case errors.As(err, &fiberError):
		return fiberError.Code
	case errors.Is(err, api.ErrControlDisabled):
		return http.StatusConflict
	case errors.Is(err, api.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, api.ErrInvalidName),
		errors.Is(err, apitype.ErrInvalidGeometry),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, api.ErrSpeechUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		logger.Error.Printf("%s %s: %s", c.Method(), c.Path(), err)
	} else {
		logger.Debug.Printf("%s %s: %s", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
