package speech

import (
	"context"
	"fmt"
	"github.com/imroc/req"
	"net/http"
	"strings"
	"time"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common/logger"
)

const (
	openAISpeechURL = "https://api.openai.com/v1/audio/speech"
	openAIVoiceLang = "en-US"
	responseFormat  = "mp3"
	requestTimeout  = 90 * time.Second
)

var openAIVoices = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}

// OpenAISynthesizer reads text aloud with the OpenAI speech endpoint.
type OpenAISynthesizer struct {
	apiKey       string
	model        string
	defaultVoice string
	url          string
	client       *req.Req

	api.Synthesizer
}

func NewOpenAISynthesizer(apiKey string, model string, defaultVoice string) (*OpenAISynthesizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required: %w", api.ErrSpeechUnavailable)
	}
	return &OpenAISynthesizer{
		apiKey:       apiKey,
		model:        model,
		defaultVoice: defaultVoice,
		url:          openAISpeechURL,
		client:       req.New(),
	}, nil
}

func (s *OpenAISynthesizer) Voices() []*apitype.Voice {
	voices := make([]*apitype.Voice, len(openAIVoices))
	for i, name := range openAIVoices {
		voices[i] = apitype.NewVoice(name, openAIVoiceLang, name == s.defaultVoice)
	}
	return voices
}

type speechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

func (s *OpenAISynthesizer) Synthesize(ctx context.Context, utterance *apitype.Utterance) (*api.Audio, error) {
	voice := utterance.Voice().Name()
	if voice == "" {
		voice = s.defaultVoice
	}

	logger.Debug.Printf("Synthesizing %s with model %s, voice %s, %d characters",
		utterance.Id(), s.model, voice, len([]rune(utterance.Text())))
	startTime := time.Now()

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, requestTimeout)
		defer cancel()
	}

	resp, err := s.client.Post(s.url, ctx,
		req.Header{
			"Content-Type":  "application/json",
			"Authorization": "Bearer " + s.apiKey,
		},
		req.BodyJSON(&speechRequest{
			Model:          s.model,
			Input:          utterance.Text(),
			Voice:          voice,
			ResponseFormat: responseFormat,
		}))
	if err != nil {
		return nil, fmt.Errorf("openai speech request: %w", err)
	}

	data, err := resp.ToBytes()
	if err != nil {
		return nil, err
	}
	if status := resp.Response().StatusCode; status != http.StatusOK {
		return nil, fmt.Errorf("openai error %d: %s", status, strings.TrimSpace(string(data)))
	}

	logger.Debug.Printf("Synthesized %s: %d bytes in %s", utterance.Id(), len(data), time.Since(startTime))
	return &api.Audio{Data: data, Format: responseFormat}, nil
}
