package apitype

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewControls(t *testing.T) {
	a := assert.New(t)

	controls := NewControls()
	a.True(controls.Generate)
	a.False(controls.Clear)
	a.False(controls.Read)
	a.False(controls.Voice)
}

func TestControls_Toggle(t *testing.T) {
	a := assert.New(t)

	controls := NewControls()

	t.Run("After generate", func(t *testing.T) {
		controls.Toggle()
		a.Equal(Controls{Generate: false, Clear: true, Read: true, Voice: true}, controls)
	})
	t.Run("After clear", func(t *testing.T) {
		controls.Toggle()
		a.Equal(NewControls(), controls)
	})
}
