package apitype

import (
	"fmt"
	"github.com/google/uuid"
)

type UtteranceId string

// Utterance is caption text queued for speech. A nil voice means the
// synthesizer's default voice.
type Utterance struct {
	id     UtteranceId
	text   string
	voice  *Voice
	volume Volume
}

func NewUtterance(text string) *Utterance {
	return &Utterance{
		id:     UtteranceId(uuid.New().String()),
		text:   text,
		volume: DefaultVolume,
	}
}

func (s *Utterance) Id() UtteranceId {
	return s.id
}

func (s *Utterance) Text() string {
	return s.text
}

func (s *Utterance) Voice() *Voice {
	return s.voice
}

func (s *Utterance) SetVoice(voice *Voice) {
	s.voice = voice
}

func (s *Utterance) Volume() Volume {
	return s.volume
}

func (s *Utterance) SetVolume(volume Volume) {
	s.volume = volume
}

// Renew gives the utterance a fresh id so every read aloud gets its own
// audio file.
func (s *Utterance) Renew() {
	s.id = UtteranceId(uuid.New().String())
}

func (s *Utterance) String() string {
	return fmt.Sprintf("Utterance{%s, voice: %s, volume: %d}", s.id, s.voice.Name(), s.volume)
}
