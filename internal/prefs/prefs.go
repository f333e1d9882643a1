// Package prefs remembers window preferences between runs.
package prefs

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName names the per-user data directory.
const AppName = "shader_backdrop"

const (
	prefsObject   = "prefs"
	prefsProperty = "window"
)

// Prefs are the values restored at startup.
type Prefs struct {
	WindowWidth  int  `yaml:"windowWidth"`
	WindowHeight int  `yaml:"windowHeight"`
	Paused       bool `yaml:"paused"`
}

// Store loads and saves Prefs. With a nil manager it only keeps them in memory.
type Store struct {
	manager *gdata.Manager
	prefs   Prefs
}

// OpenManager opens the platform data directory for appName.
func OpenManager(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("opening data dir: %w", err)
	}
	return m, nil
}

// NewStore creates a store and loads saved prefs. A load failure is logged
// and leaves the zero Prefs in place.
func NewStore(manager *gdata.Manager) *Store {
	s := &Store{manager: manager}
	if err := s.Load(); err != nil {
		log.Printf("[Prefs] Warning: %v (using defaults)", err)
	}
	return s
}

// Load reads saved prefs, if any.
func (s *Store) Load() error {
	s.prefs = Prefs{}
	if s.manager == nil || !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("failed to load prefs: %w", err)
	}
	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to unmarshal prefs: %w", err)
	}
	s.prefs = p
	return nil
}

// Save persists the current prefs. It is a no-op without a manager.
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("failed to save prefs: %w", err)
	}
	return nil
}

func (s *Store) Get() Prefs { return s.prefs }

func (s *Store) Set(p Prefs) { s.prefs = p }

// WindowSize returns the saved size, or the fallback when none was saved.
func (s *Store) WindowSize(fallbackW, fallbackH int) (int, int) {
	if s.prefs.WindowWidth <= 0 || s.prefs.WindowHeight <= 0 {
		return fallbackW, fallbackH
	}
	return s.prefs.WindowWidth, s.prefs.WindowHeight
}
