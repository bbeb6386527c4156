package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(defaultTuningYAML)
	if err != nil {
		t.Fatalf("Parse(default.yaml) failed: %v", err)
	}
	def := DefaultTuning()
	if cfg.Map != def.Map {
		t.Errorf("map = %+v, want %+v", cfg.Map, def.Map)
	}
	if cfg.Player != def.Player {
		t.Errorf("player = %+v, want %+v", cfg.Player, def.Player)
	}
	if cfg.Combat != def.Combat {
		t.Errorf("combat = %+v, want %+v", cfg.Combat, def.Combat)
	}
	if cfg.Skills != def.Skills {
		t.Errorf("skills = %+v, want %+v", cfg.Skills, def.Skills)
	}
	if cfg.Autoplay != def.Autoplay {
		t.Errorf("autoplay = %+v, want %+v", cfg.Autoplay, def.Autoplay)
	}
	if len(cfg.Equipment) != 3 {
		t.Fatalf("equipment = %+v, want 3 items", cfg.Equipment)
	}
	if w := cfg.Equipment[0]; w.Name != "Iron Sword" || w.Slot != "weapon" {
		t.Errorf("equipment[0] = %+v, want the Iron Sword weapon", w)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	data := []byte("player:\n  attack: 60\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Attack != 60 {
		t.Errorf("attack = %v, want 60", cfg.Player.Attack)
	}
	if cfg.Player.HP != 450 {
		t.Errorf("hp = %v, want default 450", cfg.Player.HP)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "player: [\n"},
		{"tiny map", "map:\n  width: 2\n  height: 2\n"},
		{"zero speed", "player:\n  speed: 0\n"},
		{"bad log level", "log:\n  level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
			cfg, err := Load(path)
			if err == nil {
				t.Fatal("Load() returned nil error")
			}
			if cfg.Player.Speed != DefaultTuning().Player.Speed {
				t.Errorf("failed Load() did not fall back to defaults")
			}
		})
	}
}

func TestValidateMapSize(t *testing.T) {
	tests := []struct {
		w, h    int
		wantErr bool
	}{
		{60, 60, false},
		{SafeZoneMin, SafeZoneMin, false},
		{4, 5, false},
		{SafeZoneMin - 1, 10, true},
		{10, 0, true},
	}
	for _, tt := range tests {
		cfg := DefaultTuning()
		cfg.Map.Width, cfg.Map.Height = tt.w, tt.h
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate() on %dx%d: err = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
		}
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of a missing file returned nil error")
	}
}
