package apitype

// Controls tracks which form controls are usable. Before a meme is
// generated only Generate is enabled. After generating, Generate is disabled
// and Clear, Read and Voice are enabled. Clearing switches back.
type Controls struct {
	Generate bool `json:"generate"`
	Clear    bool `json:"clear"`
	Read     bool `json:"read"`
	Voice    bool `json:"voice"`
}

func NewControls() Controls {
	return Controls{
		Generate: true,
		Clear:    false,
		Read:     false,
		Voice:    false,
	}
}

func (s *Controls) Toggle() {
	if s.Generate {
		s.Generate = false
		s.Clear = true
		s.Read = true
		s.Voice = true
	} else {
		s.Generate = true
		s.Clear = false
		s.Read = false
		s.Voice = false
	}
}
