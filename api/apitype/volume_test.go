package apitype

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestVolume_Level(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		volume int
		level  int
		icon   string
	}{
		{volume: 100, level: 3, icon: "volume-level-3.svg"},
		{volume: 67, level: 3, icon: "volume-level-3.svg"},
		{volume: 66, level: 2, icon: "volume-level-2.svg"},
		{volume: 34, level: 2, icon: "volume-level-2.svg"},
		{volume: 33, level: 1, icon: "volume-level-1.svg"},
		{volume: 1, level: 1, icon: "volume-level-1.svg"},
		{volume: 0, level: 0, icon: "volume-level-0.svg"},
	}
	for _, tt := range tests {
		t.Run(VolumeOf(tt.volume).IconName(), func(t *testing.T) {
			volume := VolumeOf(tt.volume)
			a.Equal(tt.level, volume.Level())
			a.Equal(tt.icon, volume.IconName())
		})
	}
}

func TestVolumeOf(t *testing.T) {
	a := assert.New(t)

	a.Equal(MinVolume, VolumeOf(-5))
	a.Equal(MaxVolume, VolumeOf(150))
	a.Equal(Volume(42), VolumeOf(42))
}

func TestVolume_Gain(t *testing.T) {
	a := assert.New(t)

	a.Equal(0.0, VolumeOf(0).Gain())
	a.Equal(0.5, VolumeOf(50).Gain())
	a.Equal(1.0, VolumeOf(100).Gain())
}
