package apitype

import (
	"time"
)

type MemeId string

// Meme is a generated meme as stored in the history.
type Meme struct {
	Id           MemeId    `json:"id"`
	ImageName    string    `json:"imageName"`
	TopText      string    `json:"topText"`
	BottomText   string    `json:"bottomText"`
	CanvasWidth  int       `json:"canvasWidth"`
	CanvasHeight int       `json:"canvasHeight"`
	FileName     string    `json:"fileName"`
	Created      time.Time `json:"created"`
}
