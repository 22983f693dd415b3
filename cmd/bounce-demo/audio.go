package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// audioPlayer wraps the speaker with the demo's one sound effect
type audioPlayer struct {
	sampleRate beep.SampleRate
}

func newAudioPlayer() (*audioPlayer, error) {
	sr := beep.SampleRate(44100)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &audioPlayer{sampleRate: sr}, nil
}

// playBounce plays a short 880Hz blip
func (p *audioPlayer) playBounce() {
	sine, err := generators.SineTone(p.sampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(p.sampleRate.N(50*time.Millisecond), sine))
}
