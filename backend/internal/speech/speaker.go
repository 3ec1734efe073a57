package speech

import (
	"context"
	"errors"
	"sync"
	"time"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common/logger"
)

const speakTimeout = 2 * time.Minute

// Speaker plays one utterance at a time. Speaking cancels whatever is still
// being synthesized and the cancelled utterance is dropped silently.
type Speaker struct {
	synthesizer api.Synthesizer
	store       api.AudioStore
	sender      api.Sender
	timeout     time.Duration
	cancel      context.CancelFunc
	mux         sync.Mutex
	wg          sync.WaitGroup

	api.Speaker
}

func NewSpeaker(synthesizer api.Synthesizer, store api.AudioStore, sender api.Sender) *Speaker {
	return &Speaker{
		synthesizer: synthesizer,
		store:       store,
		sender:      sender,
		timeout:     speakTimeout,
	}
}

func (s *Speaker) Speak(utterance *apitype.Utterance) {
	snapshot := *utterance

	s.mux.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	s.cancel = cancel
	s.wg.Add(1)
	s.mux.Unlock()

	logger.Debug.Printf("Speaking %s", snapshot.String())
	s.sender.SendCommandToTopic(api.SpeechStarted, &api.SpeechCommand{
		UtteranceId: snapshot.Id(),
		Gain:        snapshot.Volume().Gain(),
	})
	go s.speak(ctx, cancel, &snapshot)
}

func (s *Speaker) speak(ctx context.Context, cancel context.CancelFunc, utterance *apitype.Utterance) {
	defer s.wg.Done()
	defer cancel()

	audio, err := s.synthesizer.Synthesize(ctx, utterance)
	if errors.Is(ctx.Err(), context.Canceled) {
		logger.Debug.Printf("Utterance %s was cancelled", utterance.Id())
		return
	}
	if err != nil {
		s.sender.SendError("Could not read text aloud", err)
		return
	}

	path, err := s.store.Save(audio, string(utterance.Id()))
	if errors.Is(ctx.Err(), context.Canceled) {
		logger.Debug.Printf("Utterance %s was cancelled while storing", utterance.Id())
		return
	}
	if err != nil {
		s.sender.SendError("Could not store speech", err)
		return
	}

	logger.Info.Printf("Speech %s ready at %s", utterance.Id(), path)
	s.sender.SendCommandToTopic(api.SpeechReady, &api.SpeechCommand{
		UtteranceId: utterance.Id(),
		Path:        path,
		Gain:        utterance.Volume().Gain(),
	})
}

func (s *Speaker) Cancel() {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Close cancels the current utterance and waits for the background work to
// finish.
func (s *Speaker) Close() {
	s.Cancel()
	s.wg.Wait()
}
