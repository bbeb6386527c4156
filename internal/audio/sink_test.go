package audio

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"go-iso-arena/internal/event"
)

func TestEveryTagHasAVoice(t *testing.T) {
	for _, tag := range event.AllSFX {
		if _, ok := Voices[tag]; !ok {
			t.Errorf("no voice for %q", tag)
		}
	}
}

func TestSweepLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for tag, v := range Voices {
		st := NewSweep(v, rate)
		buf := make([][2]float64, 512)
		total := 0
		for {
			n, ok := st.Stream(buf)
			for i := 0; i < n; i++ {
				if buf[i][0] < -1 || buf[i][0] > 1 {
					t.Fatalf("%s: sample %d out of range: %f", tag, total+i, buf[i][0])
				}
			}
			total += n
			if !ok {
				break
			}
		}
		if want := rate.N(v.Duration); total != want {
			t.Errorf("%s: streamed %d samples, want %d", tag, total, want)
		}
		if st.Err() != nil {
			t.Errorf("%s: Err() = %v", tag, st.Err())
		}
	}
}

func TestSinkPlaysOnlyWhenReady(t *testing.T) {
	logger := log.New(io.Discard)
	d := event.NewDispatcher()

	s := NewSink(logger, false)
	played := 0
	s.play = func(beep.Streamer) { played++ }
	s.Attach(d)

	d.Sound(event.SFXKill)
	if played != 0 {
		t.Fatalf("played %d sounds before Init", played)
	}

	s.ready = true
	d.Sound(event.SFXKill)
	d.Sound(event.SFXTag("unknown"))
	d.Emit(event.SFX, "not a tag")
	if played != 1 {
		t.Errorf("played %d sounds, want 1", played)
	}
}

func TestMutedSinkIsSilent(t *testing.T) {
	s := NewSink(log.New(io.Discard), true)
	played := 0
	s.play = func(beep.Streamer) { played++ }
	if err := s.Init(); err != nil {
		t.Fatalf("Init() on a muted sink failed: %v", err)
	}
	s.ready = true
	s.OnEvent(event.Event{Type: event.SFX, Data: event.SFXLevelUp})
	if played != 0 {
		t.Errorf("muted sink played %d sounds", played)
	}
}

func TestSweepShortDuration(t *testing.T) {
	st := NewSweep(Voice{From: 100, To: 100, Duration: time.Millisecond, Gain: 1}, 1000)
	buf := make([][2]float64, 8)
	n, ok := st.Stream(buf)
	if n != 1 || !ok {
		t.Errorf("Stream = %d, %v; want 1 sample", n, ok)
	}
	if n, ok = st.Stream(buf); n != 0 || ok {
		t.Errorf("drained Stream = %d, %v; want 0, false", n, ok)
	}
}
