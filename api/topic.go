package api

type Topic string

const (
	ImageLoaded   Topic = "event-image-loaded"
	MemeGenerated Topic = "event-meme-generated"
	CanvasCleared Topic = "event-canvas-cleared"
	VoicesUpdated Topic = "event-voices-updated"
	SpeechStarted Topic = "event-speech-started"
	SpeechReady   Topic = "event-speech-ready"
	ShowError     Topic = "event-show-error"
)
