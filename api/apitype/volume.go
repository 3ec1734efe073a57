package apitype

import "fmt"

const (
	MinVolume     = Volume(0)
	MaxVolume     = Volume(100)
	DefaultVolume = MaxVolume
)

// Volume is the read aloud slider value from 0 to 100.
type Volume int

func VolumeOf(value int) Volume {
	if value < int(MinVolume) {
		return MinVolume
	} else if value > int(MaxVolume) {
		return MaxVolume
	}
	return Volume(value)
}

// Gain is the volume as a playback multiplier between 0 and 1.
func (s Volume) Gain() float64 {
	return float64(s) / 100
}

func (s Volume) Level() int {
	switch {
	case s >= 67:
		return 3
	case s >= 34:
		return 2
	case s >= 1:
		return 1
	default:
		return 0
	}
}

func (s Volume) IconName() string {
	return fmt.Sprintf("volume-level-%d.svg", s.Level())
}
