package speech

import (
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common/logger"
)

// VoiceCatalog is the voice selector. It is filled from the synthesizer on
// first use only and starts with the default voice selected.
type VoiceCatalog struct {
	synthesizer api.Synthesizer
	voices      []*apitype.Voice
	options     []apitype.VoiceOption
	populated   bool
}

func NewVoiceCatalog(synthesizer api.Synthesizer) *VoiceCatalog {
	return &VoiceCatalog{
		synthesizer: synthesizer,
	}
}

// Populate reads the voices once. It reports whether the list changed.
func (s *VoiceCatalog) Populate() bool {
	if s.populated {
		return false
	}
	s.populated = true
	if s.synthesizer == nil {
		logger.Warn.Print("No synthesizer, voice list stays empty")
		return false
	}

	s.voices = s.synthesizer.Voices()
	s.options = make([]apitype.VoiceOption, len(s.voices))
	for i, voice := range s.voices {
		s.options[i] = apitype.NewVoiceOption(voice)
	}
	logger.Debug.Printf("Populated %d voices", len(s.voices))
	return true
}

func (s *VoiceCatalog) IsPopulated() bool {
	return s.populated
}

func (s *VoiceCatalog) Options() []apitype.VoiceOption {
	options := make([]apitype.VoiceOption, len(s.options))
	copy(options, s.options)
	return options
}

// Find returns the voice with the given name or nil.
func (s *VoiceCatalog) Find(name string) *apitype.Voice {
	for _, voice := range s.voices {
		if voice.Name() == name {
			return voice
		}
	}
	return nil
}

// Select marks the named voice as the selected option. Unknown names leave
// the selection as it was.
func (s *VoiceCatalog) Select(name string) *apitype.Voice {
	voice := s.Find(name)
	if voice == nil {
		return nil
	}
	for i := range s.options {
		s.options[i].Selected = s.options[i].Name == name
	}
	return voice
}

// Selected is the voice of the selected option or nil.
func (s *VoiceCatalog) Selected() *apitype.Voice {
	for _, option := range s.options {
		if option.Selected {
			return s.Find(option.Name)
		}
	}
	return nil
}
