package apitype

import "fmt"

type Caption struct {
	top    string
	bottom string
}

func NewCaption(top string, bottom string) *Caption {
	return &Caption{
		top:    top,
		bottom: bottom,
	}
}

func (s *Caption) Top() string {
	if s != nil {
		return s.top
	} else {
		return ""
	}
}

func (s *Caption) Bottom() string {
	if s != nil {
		return s.bottom
	} else {
		return ""
	}
}

func (s *Caption) IsEmpty() bool {
	return s.Top() == "" && s.Bottom() == ""
}

// SpokenText is the text read aloud. Top and bottom are joined as typed,
// without a separator.
func (s *Caption) SpokenText() string {
	return s.Top() + s.Bottom()
}

func (s *Caption) String() string {
	return fmt.Sprintf("Caption{top: '%s', bottom: '%s'}", s.Top(), s.Bottom())
}
