package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dc-atlas-api-server/internal/models"
)

func TestMirrorRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	m := NewMirror(path)

	if _, ok := m.Load(); ok {
		t.Fatal("Load on a fresh path reported a session")
	}

	u := models.User{ID: "u-1", Email: "admin@datacenter.com", Name: "Admin", Country: "USA", Role: models.RoleAdmin}
	if err := m.Save(u); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok := m.Load()
	if !ok {
		t.Fatal("Load after Save reported no session")
	}
	if got.ID != u.ID || got.Email != u.Email || got.Role != u.Role {
		t.Errorf("Load = %+v, want %+v", got, u)
	}

	if err := m.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := m.Load(); ok {
		t.Error("Load after Clear reported a session")
	}
	if err := m.Clear(); err != nil {
		t.Errorf("Clear on a missing file: %v", err)
	}
}

func TestMirrorNeverPersistsPasswordHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	m := NewMirror(path)

	u := models.User{ID: "u-1", Email: "admin@datacenter.com", Password: "$2a$14$secret"}
	if err := m.Save(u); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(data), "secret") {
		t.Errorf("mirror file contains the password hash: %s", data)
	}
}

func TestMirrorDiscardsUndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, ok := NewMirror(path).Load(); ok {
		t.Error("Load on a corrupt file reported a session")
	}
}

func TestMirrorIgnoresRecordWithoutID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"email":"x@example.com"}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, ok := NewMirror(path).Load(); ok {
		t.Error("Load on a record without an id reported a session")
	}
}
