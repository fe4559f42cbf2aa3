package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				if v := buf[i][ch]; v < -1 || v > 1 {
					t.Fatalf("sample %d out of range: %f", total+i, v)
				}
			}
		}
		total += n
		if !ok {
			return total
		}
		if total > limit {
			t.Fatalf("streamer did not terminate within %d samples", limit)
		}
	}
}

func TestCueStreamersTerminate(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, c := range Cues {
		t.Run(c.String(), func(t *testing.T) {
			s := NewCueStreamer(c, rate)
			if s == nil {
				t.Fatal("no streamer for cue")
			}
			n := drain(t, s, rate.N(2*time.Second))
			if n == 0 {
				t.Error("cue produced no samples")
			}
			if err := s.Err(); err != nil {
				t.Errorf("Err() = %v", err)
			}
		})
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)
	if n := drain(t, osc, rate.N(time.Second)); n != rate.N(100*time.Millisecond) {
		t.Errorf("streamed %d samples, want %d", n, rate.N(100*time.Millisecond))
	}
}

func TestSquareWaveValues(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("square sample %d = %f, want ±1", i, v)
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 50 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 4)
	if _, ok := env.Stream(samples); !ok {
		t.Fatal("envelope drained early")
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 during attack", samples[0][0])
	}
	if samples[3][0] <= 0 || samples[3][0] >= 0.01 {
		t.Errorf("attack sample = %f, want a small ramp", samples[3][0])
	}
}

func TestSilentPlayer(t *testing.T) {
	var p Player = Silent{}
	for _, c := range Cues {
		p.Play(c)
	}
}

func TestSoundManagerUninitializedIsSilent(t *testing.T) {
	sm := NewSoundManager(nil)
	sm.Play(CueShoot)
	sm.Close()
}

func TestOpenDisabledIsSilent(t *testing.T) {
	p, closeAudio := Open(false, nil)
	if _, ok := p.(Silent); !ok {
		t.Errorf("Open(false) = %T, want Silent", p)
	}
	p.Play(CueDeath)
	closeAudio()
	closeAudio()
}
