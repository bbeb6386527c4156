// internal/audio/sink.go
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-iso-arena/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Shape: форма волны голоса.
type Shape int

const (
	Sine Shape = iota
	Square
	Triangle
)

// Voice is a short frequency sweep with a linear fade-out.
type Voice struct {
	From, To float64 // Гц
	Duration time.Duration
	Shape    Shape
	Gain     float64
}

// Voices maps every SFX tag to its sound.
var Voices = map[event.SFXTag]Voice{
	event.SFXAttack:  {From: 520, To: 260, Duration: 70 * time.Millisecond, Shape: Triangle, Gain: 0.20},
	event.SFXHit:     {From: 180, To: 90, Duration: 90 * time.Millisecond, Shape: Square, Gain: 0.18},
	event.SFXKill:    {From: 440, To: 110, Duration: 220 * time.Millisecond, Shape: Square, Gain: 0.20},
	event.SFXBuy:     {From: 880, To: 1320, Duration: 120 * time.Millisecond, Shape: Sine, Gain: 0.25},
	event.SFXEquip:   {From: 300, To: 600, Duration: 150 * time.Millisecond, Shape: Triangle, Gain: 0.25},
	event.SFXLevelUp: {From: 440, To: 1760, Duration: 450 * time.Millisecond, Shape: Sine, Gain: 0.30},
	event.SFXClick:   {From: 1200, To: 1000, Duration: 30 * time.Millisecond, Shape: Sine, Gain: 0.15},
	event.SFXSkill:   {From: 200, To: 800, Duration: 250 * time.Millisecond, Shape: Triangle, Gain: 0.25},
}

// sweep streams one Voice.
type sweep struct {
	voice    Voice
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

// NewSweep returns a finite streamer playing v at rate.
func NewSweep(v Voice, rate beep.SampleRate) beep.Streamer {
	return &sweep{voice: v, rate: rate, total: rate.N(v.Duration)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.total)
		freq := s.voice.From + (s.voice.To-s.voice.From)*t

		var val float64
		switch s.voice.Shape {
		case Square:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case Triangle:
			val = 4*math.Abs(s.phase-0.5) - 1
		default:
			val = math.Sin(2 * math.Pi * s.phase)
		}
		val *= s.voice.Gain * (1 - t)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// Sink plays SFX events through the speaker. Events arrive on the game
// goroutine; the mixer is read by the speaker goroutine under speaker.Lock.
type Sink struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	logger *log.Logger
	muted  bool
	ready  bool
	play   func(beep.Streamer)
}

// NewSink creates a sink. A muted sink accepts events and plays nothing.
func NewSink(logger *log.Logger, muted bool) *Sink {
	if logger == nil {
		logger = log.Default()
	}
	s := &Sink{
		mixer:  &beep.Mixer{},
		logger: logger,
		muted:  muted,
	}
	s.play = s.enqueue
	return s
}

// Init opens the speaker. Failure is logged and leaves the sink silent.
func (s *Sink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.muted || s.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		s.logger.Warn("audio disabled", "err", err)
		return err
	}
	speaker.Play(s.mixer)
	s.ready = true
	return nil
}

// Attach subscribes the sink to SFX events on d.
func (s *Sink) Attach(d *event.Dispatcher) {
	d.Subscribe(event.SFX, s)
}

// OnEvent plays the voice for an SFX tag. Unknown tags are ignored.
func (s *Sink) OnEvent(e event.Event) {
	tag, ok := e.Data.(event.SFXTag)
	if !ok {
		return
	}
	v, ok := Voices[tag]
	if !ok {
		return
	}
	s.mu.Lock()
	active := s.ready && !s.muted
	s.mu.Unlock()
	if !active {
		return
	}
	s.play(NewSweep(v, sampleRate))
}

func (s *Sink) enqueue(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops everything still playing.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.ready = false
}
