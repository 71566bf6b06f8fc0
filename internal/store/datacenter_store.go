package store

import (
	"errors"
	"sync"

	"dc-atlas-api-server/internal/models"
)

var (
	ErrNotFound    = errors.New("store: record not found")
	ErrDuplicateID = errors.New("store: duplicate id")
)

// DataCenterStore holds the in-memory facility collection. All reads return
// copies so callers can never alias the internal slice; writes are explicit
// whole-record operations. The version counter increments on every mutation
// and keys derived-state memoization in the catalog package.
type DataCenterStore struct {
	mu      sync.RWMutex
	items   []models.DataCenter
	version uint64
}

func NewDataCenterStore(seed []models.DataCenter) *DataCenterStore {
	items := make([]models.DataCenter, len(seed))
	copy(items, seed)
	return &DataCenterStore{items: items, version: 1}
}

// List returns a snapshot of the collection in stable insertion order.
func (s *DataCenterStore) List() []models.DataCenter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DataCenter, len(s.items))
	copy(out, s.items)
	return out
}

// ListVersioned returns the snapshot together with the version it belongs
// to, read under a single lock so the pair is always consistent.
func (s *DataCenterStore) ListVersioned() ([]models.DataCenter, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DataCenter, len(s.items))
	copy(out, s.items)
	return out, s.version
}

func (s *DataCenterStore) Get(id string) (models.DataCenter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, dc := range s.items {
		if dc.ID == id {
			return dc, nil
		}
	}
	return models.DataCenter{}, ErrNotFound
}

func (s *DataCenterStore) Create(dc models.DataCenter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.ID == dc.ID {
			return ErrDuplicateID
		}
	}
	s.items = append(s.items, dc)
	s.version++
	return nil
}

// Replace swaps the entire record at id. Partial merges are not supported;
// admin edits submit the full document.
func (s *DataCenterStore) Replace(id string, dc models.DataCenter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if existing.ID == id {
			dc.ID = id
			s.items[i] = dc
			s.version++
			return nil
		}
	}
	return ErrNotFound
}

func (s *DataCenterStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if existing.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.version++
			return nil
		}
	}
	return ErrNotFound
}

// UpdateRealTime refreshes only the simulated telemetry block of a record.
// This is the single exception to whole-record replacement; the simulator
// must not clobber concurrent admin edits to the rest of the document.
func (s *DataCenterStore) UpdateRealTime(id string, rt models.RealTimeData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].RealTimeData = rt
			s.version++
			return nil
		}
	}
	return ErrNotFound
}

func (s *DataCenterStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *DataCenterStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
