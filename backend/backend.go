package backend

import (
	"errors"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/backend/internal/canvas"
	"vincit.fi/meme-generator/backend/internal/database"
	"vincit.fi/meme-generator/backend/internal/imageloader"
	"vincit.fi/meme-generator/backend/internal/library"
	"vincit.fi/meme-generator/backend/internal/meme"
	"vincit.fi/meme-generator/backend/internal/server"
	"vincit.fi/meme-generator/backend/internal/speech"
	"vincit.fi/meme-generator/common/event"
	"vincit.fi/meme-generator/common/logger"
	"vincit.fi/meme-generator/common/util"
)

type Stores struct {
	MemeStore  *database.MemeStore
	AudioStore *speech.FileStore
	db         *database.Database
}

func (s *Stores) Close() {
	if err := s.db.Close(); err != nil {
		logger.Warn.Printf("Could not close database: %s", err)
	}
}

type Services struct {
	MemeService  api.MemeService
	ImageLibrary api.ImageLibrary
	ImageLoader  api.ImageLoader
	Synthesizer  api.Synthesizer
}

func (s *Services) Close() {
	s.MemeService.Close()
}

type Brokers struct {
	Broker *event.Broker
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker: event.InitBus(eventBusQueueSize),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

// InitializeStores opens the meme history database in the data directory
// and the audio store.
func InitializeStores(params *util.Params) (*Stores, error) {
	logger.Debug.Printf("Initialize databases...")
	db := database.NewDatabase()
	if err := db.InitializeForDirectory(params.DataDir(), params.DatabaseFile()); err != nil {
		return nil, err
	}
	if _, err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	stores := &Stores{
		MemeStore:  database.NewMemeStore(db),
		AudioStore: speech.NewFileStore(params.AudioDir()),
		db:         db,
	}
	logger.Debug.Printf("Stores and databases initialized")
	return stores, nil
}

func InitializeServices(params *util.Params, stores *Stores, brokers *Brokers) (*Services, error) {
	logger.Debug.Printf("Initialize services...")

	style, err := canvas.NewCaptionStyle(params.FontSize(), params.CaptionColor(), params.StrokeColor())
	if err != nil {
		return nil, err
	}
	background, err := canvas.ParseColor(params.BackgroundColor())
	if err != nil {
		return nil, err
	}
	memeCanvas := canvas.NewCanvas(apitype.SizeOf(params.CanvasWidth(), params.CanvasHeight()), background, style)

	var synthesizer api.Synthesizer
	var speaker api.Speaker
	if openAI, err := speech.NewOpenAISynthesizer(params.OpenAIKey(), params.TTSModel(), params.DefaultVoice()); err == nil {
		synthesizer = openAI
		speaker = speech.NewSpeaker(openAI, stores.AudioStore, brokers.Broker)
	} else if errors.Is(err, api.ErrSpeechUnavailable) {
		logger.Warn.Printf("Read aloud disabled: %s", err)
	} else {
		return nil, err
	}

	imageLibrary := library.NewImageLibrary(params.ImageDir())
	imageLoader := imageloader.NewImageLoader()
	services := &Services{
		MemeService: meme.NewService(
			imageLibrary,
			imageLoader,
			memeCanvas,
			speech.NewVoiceCatalog(synthesizer),
			speaker,
			stores.MemeStore,
			brokers.Broker,
			params.OutputDir(),
		),
		ImageLibrary: imageLibrary,
		ImageLoader:  imageLoader,
		Synthesizer:  synthesizer,
	}
	logger.Debug.Printf("Services initialized")
	return services, nil
}

// InitializeServer creates the HTTP server and starts recording broker
// events for it.
func InitializeServer(services *Services, stores *Stores, brokers *Brokers) *server.Server {
	events := server.NewEventLog(0)
	events.Listen(brokers.Broker)
	return server.NewServer(services.MemeService, services.ImageLibrary, services.ImageLoader, stores.AudioStore, events)
}
