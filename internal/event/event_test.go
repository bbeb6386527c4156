package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchOrderAndFilter(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(WaveComplete, a)
	d.Subscribe(WaveComplete, b)
	d.Subscribe(SFX, b)

	d.Emit(WaveComplete, WaveData{Wave: 3})
	d.Sound(SFXKill)

	if len(a.got) != 1 {
		t.Fatalf("listener a got %d events, want 1", len(a.got))
	}
	if w := a.got[0].Data.(WaveData).Wave; w != 3 {
		t.Errorf("wave = %d, want 3", w)
	}
	if len(b.got) != 2 || b.got[1].Data.(SFXTag) != SFXKill {
		t.Errorf("listener b got %v, want wave then kill sfx", b.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(PlayerHit, r)
	d.Unsubscribe(PlayerHit, r)
	d.Emit(PlayerHit, PlayerHitData{Damage: 10})
	if len(r.got) != 0 {
		t.Errorf("unsubscribed listener got %d events", len(r.got))
	}
}

func TestNilDispatcherIsSilent(t *testing.T) {
	var d *Dispatcher
	d.Sound(SFXHit)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	n := 0
	d.Subscribe(SFX, ListenerFunc(func(Event) { n++ }))
	d.Sound(SFXClick)
	d.Sound(SFXClick)
	if n != 2 {
		t.Errorf("ListenerFunc called %d times, want 2", n)
	}
}
