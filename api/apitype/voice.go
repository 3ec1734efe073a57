package apitype

import "fmt"

type Voice struct {
	name      string
	lang      string
	isDefault bool
}

func NewVoice(name string, lang string, isDefault bool) *Voice {
	return &Voice{
		name:      name,
		lang:      lang,
		isDefault: isDefault,
	}
}

func (s *Voice) Name() string {
	if s != nil {
		return s.name
	} else {
		return ""
	}
}

func (s *Voice) Lang() string {
	if s != nil {
		return s.lang
	} else {
		return ""
	}
}

func (s *Voice) IsDefault() bool {
	return s != nil && s.isDefault
}

// Description is "<name> (<lang>)" with " -- DEFAULT" appended for the
// default voice.
func (s *Voice) Description() string {
	description := fmt.Sprintf("%s (%s)", s.Name(), s.Lang())
	if s.IsDefault() {
		description += " -- DEFAULT"
	}
	return description
}

func (s *Voice) String() string {
	if s != nil {
		return "Voice{" + s.Description() + "}"
	} else {
		return "Voice<nil>"
	}
}

// VoiceOption is one entry of the voice selector.
type VoiceOption struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Name        string `json:"name"`
	Lang        string `json:"lang"`
	Selected    bool   `json:"selected"`
}

func NewVoiceOption(voice *Voice) VoiceOption {
	return VoiceOption{
		Label:       voice.Name(),
		Description: voice.Description(),
		Name:        voice.Name(),
		Lang:        voice.Lang(),
		Selected:    voice.IsDefault(),
	}
}
