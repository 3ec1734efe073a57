package server

import (
	"github.com/gofiber/fiber/v2"
	"sync"
	"time"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
)

const defaultEventCapacity = 50

// Event is a published command as shown to HTTP clients.
type Event struct {
	Seq     uint64      `json:"seq"`
	Topic   api.Topic   `json:"topic"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Time    time.Time   `json:"time"`
}

// Subscriber is the subscribing side of the event broker.
type Subscriber interface {
	Subscribe(topic api.Topic, fn interface{})
}

// EventLog keeps the latest events so that clients can poll for the ones
// they have not seen yet.
type EventLog struct {
	events   []Event
	capacity int
	seq      uint64
	mux      sync.Mutex
}

func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = defaultEventCapacity
	}
	return &EventLog{capacity: capacity}
}

var listenedTopics = []api.Topic{
	api.ImageLoaded,
	api.MemeGenerated,
	api.CanvasCleared,
	api.VoicesUpdated,
	api.SpeechStarted,
	api.SpeechReady,
	api.ShowError,
}

func (s *EventLog) Listen(subscriber Subscriber) {
	for _, topic := range listenedTopics {
		topic := topic
		subscriber.Subscribe(topic, func(command apitype.Command) {
			s.Add(topic, command)
		})
	}
}

func (s *EventLog) Add(topic api.Topic, command apitype.Command) {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.seq++
	event := Event{
		Seq:   s.seq,
		Topic: topic,
		Time:  time.Now(),
	}
	if command != nil {
		event.Message = command.String()
		event.Data = eventData(command)
	}

	s.events = append(s.events, event)
	if len(s.events) > s.capacity {
		s.events = s.events[len(s.events)-s.capacity:]
	}
}

// Since returns the events newer than seq, oldest first.
func (s *EventLog) Since(seq uint64) []Event {
	s.mux.Lock()
	defer s.mux.Unlock()

	events := make([]Event, 0)
	for _, event := range s.events {
		if event.Seq > seq {
			events = append(events, event)
		}
	}
	return events
}

func eventData(command apitype.Command) interface{} {
	switch c := command.(type) {
	case *api.ImageLoadedCommand:
		return fiber.Map{"image": c.ImageFile.FileName(), "fit": c.Fit}
	case *api.MemeGeneratedCommand:
		return c.Meme
	case *api.CanvasClearedCommand:
		return c.Controls
	case *api.UpdateVoicesCommand:
		return c.Options
	case *api.SpeechCommand:
		return fiber.Map{"id": c.UtteranceId, "gain": c.Gain, "ready": c.Path != ""}
	case *api.ErrorCommand:
		return fiber.Map{"error": c.Message}
	default:
		return nil
	}
}
