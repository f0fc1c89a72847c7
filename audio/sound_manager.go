package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Cue durations
const (
	stepDuration = 40 * time.Millisecond
	bumpDuration = 90 * time.Millisecond
	noteDuration = 110 * time.Millisecond
)

// SoundManager plays short procedural cues through a single mixer.
// All methods are no-ops until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker. Failure is non-fatal for callers; the
// game runs silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Active reports whether cues will be heard
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// PlayStep plays a soft tick when a corridor traversal starts
func (sm *SoundManager) PlayStep() {
	sm.play(beep.Take(sampleRate.N(stepDuration), NewToneGenerator(sampleRate, 660, 0.08)))
}

// PlayBump plays a low buzz when input hits a wall
func (sm *SoundManager) PlayBump() {
	sm.play(beep.Take(sampleRate.N(bumpDuration), NewBuzzGenerator(sampleRate, 110)))
}

// PlayGoal plays a rising arpeggio when the goal is reached
func (sm *SoundManager) PlayGoal() {
	sm.play(GoalChime(sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// GoalChime returns the finite goal arpeggio
func GoalChime(sr beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(goalNotes))
	for _, n := range goalNotes {
		notes = append(notes, beep.Take(sr.N(noteDuration), NewToneGenerator(sr, NoteFreq(n), 0.12)))
	}
	return beep.Seq(notes...)
}
