package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/iburimskiy/shader-backdrop/internal/backdrop"
)

// Settings is the runtime configuration, usually read from backdrop.yml.
type Settings struct {
	WindowWidth        int     `yaml:"window_width" koanf:"window_width"`
	WindowHeight       int     `yaml:"window_height" koanf:"window_height"`
	Title              string  `yaml:"title" koanf:"title"`
	Fullscreen         bool    `yaml:"fullscreen" koanf:"fullscreen"`
	TPS                int     `yaml:"tps" koanf:"tps"`
	PauseWhenUnfocused bool    `yaml:"pause_when_unfocused" koanf:"pause_when_unfocused"`
	Chrome             bool    `yaml:"chrome" koanf:"chrome"`
	Logo               string  `yaml:"logo" koanf:"logo"`
	WaveCount          int     `yaml:"wave_count" koanf:"wave_count"`
	ParticleCount      int     `yaml:"particle_count" koanf:"particle_count"`
	WaveStep           float64 `yaml:"wave_step" koanf:"wave_step"`
	Contact            Contact `yaml:"contact" koanf:"contact"`
}

// Contact holds where the contact form sends people.
type Contact struct {
	Phone string `yaml:"phone" koanf:"phone"`
	Owner string `yaml:"owner" koanf:"owner"`
}

// Default returns the settings used when no file is present.
func Default() *Settings {
	return &Settings{
		WindowWidth:        WindowWidth,
		WindowHeight:       WindowHeight,
		Title:              WindowTitle,
		TPS:                TPS,
		PauseWhenUnfocused: true,
		Chrome:             true,
		WaveCount:          backdrop.DefaultWaveCount,
		ParticleCount:      backdrop.DefaultParticleCount,
		WaveStep:           backdrop.DefaultWaveStep,
		Contact: Contact{
			Phone: ContactPhone,
			Owner: ContactOwner,
		},
	}
}

// Load reads the YAML file at path if it exists, then applies BACKDROP_*
// environment overrides. Nested keys use a double underscore, e.g.
// BACKDROP_CONTACT__PHONE.
func Load(path string) (*Settings, error) {
	k := koanf.New(".")
	s := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(key string) string {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", s); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return s, nil
}

// Save writes the settings as YAML.
func (s *Settings) Save(path string) error {
	data, err := yamlv3.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the renderer or window cannot use.
func (s *Settings) Validate() error {
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.WindowWidth, s.WindowHeight)
	}
	if s.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", s.TPS)
	}
	if s.WaveCount < 0 || s.WaveCount > backdrop.MaxWaveCount {
		return fmt.Errorf("wave_count must be between 0 and %d, got %d", backdrop.MaxWaveCount, s.WaveCount)
	}
	if s.ParticleCount < 0 {
		return fmt.Errorf("particle_count must be non-negative, got %d", s.ParticleCount)
	}
	if s.WaveStep <= 0 {
		return fmt.Errorf("wave_step must be positive, got %v", s.WaveStep)
	}
	if s.Contact.Phone == "" {
		return fmt.Errorf("contact.phone is required")
	}
	return nil
}

// Params returns the renderer parameters these settings describe.
func (s *Settings) Params() backdrop.Params {
	p := backdrop.DefaultParams()
	p.WaveCount = s.WaveCount
	p.ParticleCount = s.ParticleCount
	p.WaveStep = s.WaveStep
	return p
}
