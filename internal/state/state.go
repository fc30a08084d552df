package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LookupState caches the result of an index version lookup.
type LookupState struct {
	Latest    string `json:"latest"`
	CheckedAt string `json:"checked_at"`
}

type State struct {
	Lookups map[string]LookupState `json:"lookups"`
}

type Manager struct {
	path  string
	state State
	ttl   time.Duration
	mu    sync.RWMutex
}

func NewManager(configDir string, ttl time.Duration) (*Manager, error) {
	path := filepath.Join(configDir, "state.json")
	m := &Manager{
		path:  path,
		state: State{Lookups: make(map[string]LookupState)},
		ttl:   ttl,
	}
	if err := m.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return m, nil
}

func (m *Manager) load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &m.state)
}

func (m *Manager) save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m.state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}

// Get returns the cached latest version for a package, if still fresh.
func (m *Manager) Get(name string) (string, bool) {
	m.mu.RLock()
	ls, ok := m.state.Lookups[name]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	at, err := time.Parse(time.RFC3339, ls.CheckedAt)
	if err != nil || time.Since(at) > m.ttl {
		return "", false
	}
	return ls.Latest, true
}

func (m *Manager) Put(name, latest string) error {
	m.mu.Lock()
	m.state.Lookups[name] = LookupState{Latest: latest, CheckedAt: time.Now().UTC().Format(time.RFC3339)}
	m.mu.Unlock()
	return m.save()
}

func (m *Manager) Forget(name string) error {
	m.mu.Lock()
	delete(m.state.Lookups, name)
	m.mu.Unlock()
	return m.save()
}
