package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays cues through the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates a sound manager. It is silent until Initialize succeeds.
func NewSoundManager(logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize sets up the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Play adds the cue to the mixer.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := NewCueStreamer(c, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Open returns a speaker-backed player when enabled and the speaker starts,
// otherwise Silent. The returned func releases the speaker; callers defer it
// in a function that returns before the process exits.
func Open(enabled bool, logger *log.Logger) (Player, func()) {
	if !enabled {
		return Silent{}, func() {}
	}
	sm := NewSoundManager(logger)
	if err := sm.Initialize(); err != nil {
		sm.logger.Warn("audio disabled", "err", err)
		return Silent{}, func() {}
	}
	return sm, sm.Close
}
