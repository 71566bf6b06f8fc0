// Package session persists the current user session outside the process,
// mirroring it to a single JSON-encoded user record on disk: read once at
// startup, written on login and register, removed on logout. The shape is
// unversioned; changing the user record is a breaking change for an existing
// mirror file, which is simply discarded when it no longer decodes.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"dc-atlas-api-server/internal/models"
)

type Mirror struct {
	mu   sync.Mutex
	path string
}

func NewMirror(path string) *Mirror {
	return &Mirror{path: path}
}

// Load reads the mirrored user record. A missing or undecodable file means
// no session.
func (m *Mirror) Load() (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path)
	if err != nil {
		return models.User{}, false
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil || u.ID == "" {
		return models.User{}, false
	}
	return u, true
}

func (m *Mirror) Save(u models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o600)
}

func (m *Mirror) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := os.Remove(m.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
