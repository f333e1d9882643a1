package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
	if s.WaveCount != 3 || s.ParticleCount != 50 || s.WaveStep != 5 {
		t.Errorf("unexpected renderer defaults: %+v", s)
	}
	if s.Contact.Phone != ContactPhone {
		t.Errorf("contact phone = %q, want %q", s.Contact.Phone, ContactPhone)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.WindowWidth != WindowWidth || s.TPS != TPS {
		t.Errorf("got %+v, want defaults", s)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backdrop.yml")

	original := Default()
	original.WindowWidth = 1920
	original.WindowHeight = 1080
	original.Chrome = false
	original.WaveCount = 2
	original.Contact.Owner = "Ana"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.WindowWidth != 1920 || loaded.WindowHeight != 1080 {
		t.Errorf("window = %dx%d, want 1920x1080", loaded.WindowWidth, loaded.WindowHeight)
	}
	if loaded.Chrome {
		t.Error("chrome: got true, want false")
	}
	if loaded.WaveCount != 2 {
		t.Errorf("wave_count = %d, want 2", loaded.WaveCount)
	}
	if loaded.Contact.Owner != "Ana" {
		t.Errorf("contact.owner = %q, want Ana", loaded.Contact.Owner)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backdrop.yml")
	if err := os.WriteFile(path, []byte("tps: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.TPS != 30 {
		t.Errorf("tps = %d, want 30", s.TPS)
	}
	if s.ParticleCount != 50 {
		t.Errorf("particle_count = %d, want default 50", s.ParticleCount)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BACKDROP_TITLE", "from env")
	t.Setenv("BACKDROP_CONTACT__PHONE", "5511999999999")

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Title != "from env" {
		t.Errorf("title = %q, want %q", s.Title, "from env")
	}
	if s.Contact.Phone != "5511999999999" {
		t.Errorf("contact.phone = %q, want env value", s.Contact.Phone)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero width", func(s *Settings) { s.WindowWidth = 0 }},
		{"zero tps", func(s *Settings) { s.TPS = 0 }},
		{"too many waves", func(s *Settings) { s.WaveCount = 4 }},
		{"negative particles", func(s *Settings) { s.ParticleCount = -1 }},
		{"zero step", func(s *Settings) { s.WaveStep = 0 }},
		{"no phone", func(s *Settings) { s.Contact.Phone = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			if err := s.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestParams(t *testing.T) {
	s := Default()
	s.WaveCount = 1
	s.ParticleCount = 8
	p := s.Params()
	if p.WaveCount != 1 || p.ParticleCount != 8 || p.WaveStep != 5 {
		t.Errorf("Params() = %+v", p)
	}
}
