package event

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
	"time"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
)

func TestBroker_SendCommandToTopic(t *testing.T) {
	a := assert.New(t)

	sut := InitBus(10)
	received := make(chan apitype.Command, 1)
	sut.Subscribe(api.MemeGenerated, func(command *api.MemeGeneratedCommand) {
		received <- command
	})

	sut.SendCommandToTopic(api.MemeGenerated, &api.MemeGeneratedCommand{Meme: &apitype.Meme{Id: "abc"}})

	select {
	case command := <-received:
		a.Equal(apitype.MemeId("abc"), command.(*api.MemeGeneratedCommand).Meme.Id)
	case <-time.After(time.Second):
		a.Fail("command was not delivered")
	}
}

func TestBroker_SendError(t *testing.T) {
	a := assert.New(t)

	sut := InitBus(10)
	received := make(chan *api.ErrorCommand, 1)
	sut.Subscribe(api.ShowError, func(command *api.ErrorCommand) {
		received <- command
	})

	sut.SendError("Speech failed", errors.New("timeout"))

	select {
	case command := <-received:
		a.Equal("Speech failed\ntimeout", command.Message)
	case <-time.After(time.Second):
		a.Fail("error was not delivered")
	}
}

func TestBroker_CommandInterfaceSubscriber(t *testing.T) {
	a := assert.New(t)

	sut := InitBus(10)
	received := make(chan apitype.Command, 2)
	handler := func(command apitype.Command) {
		received <- command
	}
	sut.Subscribe(api.CanvasCleared, handler)
	sut.Subscribe(api.ShowError, handler)

	sut.SendCommandToTopic(api.CanvasCleared, &api.CanvasClearedCommand{Controls: apitype.NewControls()})
	sut.SendError("Could not store speech", errors.New("disk full"))

	var messages []string
	for i := 0; i < 2; i++ {
		select {
		case command := <-received:
			messages = append(messages, command.String())
		case <-time.After(time.Second):
			a.FailNow("command was not delivered")
		}
	}
	joined := strings.Join(messages, " ")
	a.Contains(joined, "CanvasClearedCommand")
	a.Contains(joined, "ErrorCommand{Could not store speech")
}
