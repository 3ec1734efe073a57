package api

import (
	"fmt"
	"vincit.fi/meme-generator/api/apitype"
)

type ErrorCommand struct {
	Message string
}

func (s *ErrorCommand) String() string {
	return "ErrorCommand{" + s.Message + "}"
}

type ImageLoadedCommand struct {
	ImageFile *apitype.ImageFile
	Fit       apitype.FitResult
}

func (s *ImageLoadedCommand) String() string {
	return fmt.Sprintf("ImageLoadedCommand{%s, %+v}", s.ImageFile, s.Fit)
}

type MemeGeneratedCommand struct {
	Meme *apitype.Meme
}

func (s *MemeGeneratedCommand) String() string {
	return fmt.Sprintf("MemeGeneratedCommand{%s}", s.Meme.Id)
}

type CanvasClearedCommand struct {
	Controls apitype.Controls
}

func (s *CanvasClearedCommand) String() string {
	return fmt.Sprintf("CanvasClearedCommand{%+v}", s.Controls)
}

type UpdateVoicesCommand struct {
	Options []apitype.VoiceOption
}

func (s *UpdateVoicesCommand) String() string {
	return fmt.Sprintf("UpdateVoicesCommand{%d voices}", len(s.Options))
}

type SpeechCommand struct {
	UtteranceId apitype.UtteranceId
	Path        string
	Gain        float64
}

func (s *SpeechCommand) String() string {
	return fmt.Sprintf("SpeechCommand{%s, %s}", s.UtteranceId, s.Path)
}
