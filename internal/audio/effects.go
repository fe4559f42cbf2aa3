package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a wave whose frequency glides linearly from freq to
// endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq.
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with the given attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 2*time.Millisecond, d/2, rate)
}

// Cue streamers

// NewCueStreamer builds the finite streamer for c.
func NewCueStreamer(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueShoot:
		d := 60 * time.Millisecond
		return newVolume(NewEnvelope(NewSweep(880, 440, d, WaveSquare, rate), d, time.Millisecond, 40*time.Millisecond, rate), 0.12)

	case CueEnemyHit:
		return newVolume(tone(330, 80*time.Millisecond, WaveSine, rate), 0.4)

	case CueEnemyDestroyed:
		d := 220 * time.Millisecond
		noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 180*time.Millisecond, rate)
		thump := NewEnvelope(NewSweep(160, 60, d, WaveSine, rate), d, time.Millisecond, 150*time.Millisecond, rate)
		return newVolume(beep.Mix(newVolume(noise, 0.5), newVolume(thump, 0.5)), 0.5)

	case CueDeath:
		d := 700 * time.Millisecond
		return newVolume(NewEnvelope(NewSweep(440, 55, d, WaveSaw, rate), d, 5*time.Millisecond, 400*time.Millisecond, rate), 0.3)

	case CuePowerUp:
		n := 70 * time.Millisecond
		return newVolume(beep.Seq(
			tone(523.25, n, WaveSquare, rate),
			tone(659.25, n, WaveSquare, rate),
			tone(783.99, n, WaveSquare, rate),
			tone(1046.5, 2*n, WaveSquare, rate),
		), 0.15)

	case CueSelect:
		n := 60 * time.Millisecond
		return newVolume(beep.Seq(
			tone(659.25, n, WaveSine, rate),
			tone(987.77, 2*n, WaveSine, rate),
		), 0.4)
	}
	return nil
}
