package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeFrequency  = 880
	chimeDuration   = 120 * time.Millisecond
	chimeVolume     = 0.4
)

// chime plays a short sine tone on every burst.
type chime struct{}

func newChime() (*chime, error) {
	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &chime{}, nil
}

// play is a no-op on a nil chime.
func (c *chime) play() {
	if c == nil {
		return
	}
	sine, err := generators.SineTone(chimeSampleRate, chimeFrequency)
	if err != nil {
		return
	}
	tone := beep.Take(chimeSampleRate.N(chimeDuration), sine)
	speaker.Play(&effects.Volume{Streamer: tone, Base: 2, Volume: math.Log2(chimeVolume)})
}
