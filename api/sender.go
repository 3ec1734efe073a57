package api

import "vincit.fi/meme-generator/api/apitype"

type Sender interface {
	SendCommandToTopic(topic Topic, command apitype.Command)
	SendError(message string, err error)
}
