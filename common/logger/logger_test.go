package logger

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestStringToLogLevel(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		value string
		level LogLevel
	}{
		{value: "error", level: ERROR},
		{value: "WARN", level: WARN},
		{value: "Info", level: INFO},
		{value: "debug", level: DEBUG},
		{value: "trace", level: TRACE},
		{value: "bogus", level: INFO},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			a.Equal(tt.level, StringToLogLevel(tt.value))
		})
	}
}

func TestInitializeWithWriters(t *testing.T) {
	a := assert.New(t)
	defer InitializeWithWriters(ERROR, &bytes.Buffer{}, &bytes.Buffer{})

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	InitializeWithWriters(INFO, out, errOut)

	Info.Print("info line")
	Debug.Print("debug line")
	Error.Print("error line")

	a.Contains(out.String(), "INFO:  ")
	a.Contains(out.String(), "info line")
	a.NotContains(out.String(), "debug line")
	a.Contains(errOut.String(), "error line")

	a.True(IsLogLevel(WARN))
	a.True(IsLogLevel(INFO))
	a.False(IsLogLevel(TRACE))
}
