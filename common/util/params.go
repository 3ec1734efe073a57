package util

import (
	"flag"
	"github.com/joho/godotenv"
	"os"
	"strconv"
)

const (
	defaultHttpPort          = 8080
	defaultCanvasSize        = 400
	defaultFontSize          = 48
	defaultEventBusQueueSize = 100
)

type Params struct {
	httpPort          int
	logLevel          string
	imageDir          string
	outputDir         string
	audioDir          string
	dataDir           string
	databaseFile      string
	canvasWidth       int
	canvasHeight      int
	fontSize          float64
	captionColor      string
	strokeColor       string
	backgroundColor   string
	openAIKey         string
	ttsModel          string
	defaultVoice      string
	eventBusQueueSize int
}

// ParseParams reads the command line. Defaults come from the environment,
// which is first populated from .env when one exists.
func ParseParams() *Params {
	_ = godotenv.Load()
	params, err := ParseParamsFrom(flag.CommandLine, os.Args[1:])
	if err != nil {
		// flag.ExitOnError has already exited on bad flags
		panic(err)
	}
	return params
}

func ParseParamsFrom(flagSet *flag.FlagSet, args []string) (*Params, error) {
	httpPort := flagSet.Int("httpPort", getEnvInt("MEME_HTTP_PORT", defaultHttpPort), "HTTP server port")
	logLevel := flagSet.String("logLevel", getEnv("MEME_LOG_LEVEL", "INFO"), "Log level: ERROR, WARN, INFO, DEBUG, Trace")
	imageDir := flagSet.String("imageDir", getEnv("MEME_IMAGE_DIR", "images"), "Directory of selectable images")
	outputDir := flagSet.String("outputDir", getEnv("MEME_OUTPUT_DIR", "memes"), "Directory for generated memes")
	audioDir := flagSet.String("audioDir", getEnv("AUDIO_DIR", "audio"), "Directory for synthesized speech")
	dataDir := flagSet.String("dataDir", getEnv("MEME_DATA_DIR", "."), "Directory for the database")
	databaseFile := flagSet.String("database", getEnv("MEME_DATABASE", "memes.db"), "Database file name")
	canvasWidth := flagSet.Int("canvasWidth", getEnvInt("MEME_CANVAS_WIDTH", defaultCanvasSize), "Canvas width in pixels")
	canvasHeight := flagSet.Int("canvasHeight", getEnvInt("MEME_CANVAS_HEIGHT", defaultCanvasSize), "Canvas height in pixels")
	fontSize := flagSet.Float64("fontSize", getEnvFloat("MEME_FONT_SIZE", defaultFontSize), "Caption font size in pixels")
	captionColor := flagSet.String("captionColor", getEnv("MEME_CAPTION_COLOR", "#ffffff"), "Caption fill colour")
	strokeColor := flagSet.String("strokeColor", getEnv("MEME_STROKE_COLOR", "#000000"), "Caption outline colour")
	backgroundColor := flagSet.String("backgroundColor", getEnv("MEME_BACKGROUND_COLOR", "#000000"), "Letterbox colour")
	openAIKey := flagSet.String("openaiKey", os.Getenv("OPENAI_API_KEY"), "OpenAI API key for read aloud")
	ttsModel := flagSet.String("ttsModel", getEnv("MEME_TTS_MODEL", "tts-1"), "OpenAI speech model")
	defaultVoice := flagSet.String("defaultVoice", getEnv("MEME_DEFAULT_VOICE", "alloy"), "Voice selected by default")
	eventBusQueueSize := flagSet.Int("eventBusQueueSize", defaultEventBusQueueSize, "Event bus queue size")

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	return &Params{
		httpPort:          *httpPort,
		logLevel:          *logLevel,
		imageDir:          *imageDir,
		outputDir:         *outputDir,
		audioDir:          *audioDir,
		dataDir:           *dataDir,
		databaseFile:      *databaseFile,
		canvasWidth:       *canvasWidth,
		canvasHeight:      *canvasHeight,
		fontSize:          *fontSize,
		captionColor:      *captionColor,
		strokeColor:       *strokeColor,
		backgroundColor:   *backgroundColor,
		openAIKey:         *openAIKey,
		ttsModel:          *ttsModel,
		defaultVoice:      *defaultVoice,
		eventBusQueueSize: *eventBusQueueSize,
	}, nil
}

func getEnv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

func (s *Params) HttpPort() int {
	return s.httpPort
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) ImageDir() string {
	return s.imageDir
}

func (s *Params) OutputDir() string {
	return s.outputDir
}

func (s *Params) AudioDir() string {
	return s.audioDir
}

func (s *Params) DataDir() string {
	return s.dataDir
}

func (s *Params) DatabaseFile() string {
	return s.databaseFile
}

func (s *Params) CanvasWidth() int {
	return s.canvasWidth
}

func (s *Params) CanvasHeight() int {
	return s.canvasHeight
}

func (s *Params) FontSize() float64 {
	return s.fontSize
}

func (s *Params) CaptionColor() string {
	return s.captionColor
}

func (s *Params) StrokeColor() string {
	return s.strokeColor
}

func (s *Params) BackgroundColor() string {
	return s.backgroundColor
}

func (s *Params) OpenAIKey() string {
	return s.openAIKey
}

func (s *Params) TTSModel() string {
	return s.ttsModel
}

func (s *Params) DefaultVoice() string {
	return s.defaultVoice
}

func (s *Params) EventBusQueueSize() int {
	return s.eventBusQueueSize
}
