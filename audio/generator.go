package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ToneGenerator generates a sine tone with a short attack and exponential decay
type ToneGenerator struct {
	sr        beep.SampleRate
	freq      float64
	amplitude float64
	pos       int
}

// NewToneGenerator creates a tone generator
func NewToneGenerator(sr beep.SampleRate, freq, amplitude float64) *ToneGenerator {
	return &ToneGenerator{
		sr:        sr,
		freq:      freq,
		amplitude: amplitude,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 5ms attack, then decay
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*12)
		sample := g.amplitude * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus harmonics for a harsh edge
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Envelope to fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
