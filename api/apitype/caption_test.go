package apitype

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCaption_SpokenText(t *testing.T) {
	a := assert.New(t)

	a.Equal("one does notsimply walk", NewCaption("one does not", "simply walk").SpokenText())
	a.Equal("top", NewCaption("top", "").SpokenText())
	a.Equal("", NewCaption("", "").SpokenText())
}

func TestCaption_IsEmpty(t *testing.T) {
	a := assert.New(t)

	var nilCaption *Caption
	a.True(nilCaption.IsEmpty())
	a.True(NewCaption("", "").IsEmpty())
	a.False(NewCaption("", "bottom").IsEmpty())
}

func TestUtterance(t *testing.T) {
	a := assert.New(t)

	utterance := NewUtterance("hello")
	a.Equal("hello", utterance.Text())
	a.Equal(DefaultVolume, utterance.Volume())
	a.Nil(utterance.Voice())
	a.NotEmpty(utterance.Id())

	id := utterance.Id()
	utterance.Renew()
	a.NotEqual(id, utterance.Id())
}
