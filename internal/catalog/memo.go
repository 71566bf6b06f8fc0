package catalog

import (
	"sync"

	"dc-atlas-api-server/internal/models"
	"dc-atlas-api-server/internal/store"
)

// queryKey is the shallow-equality tuple that keys query recomputation.
type queryKey struct {
	version  uint64
	country  string
	loggedIn bool
	showAll  bool
	search   string
	location string
	tier     string
}

// Memo caches the most recent query result and analytics snapshot against the
// store version and the exact parameter tuple. A single last-value entry is
// enough: the UI recomputes only when its inputs change, and successive
// requests from one view carry identical parameters.
type Memo struct {
	mu sync.Mutex

	queryOK  bool
	lastKey  queryKey
	lastList []models.DataCenter

	snapVersion uint64
	snap        *Snapshot
}

// Visible is the memoized form of the Visible query over the store contents.
func (m *Memo) Visible(s *store.DataCenterStore, user *models.User, showAll bool, search, location, tier string) []models.DataCenter {
	all, version := s.ListVersioned()

	key := queryKey{
		version:  version,
		showAll:  showAll,
		search:   search,
		location: location,
		tier:     tier,
	}
	if user != nil {
		key.loggedIn = true
		key.country = user.Country
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.queryOK && key == m.lastKey {
		out := make([]models.DataCenter, len(m.lastList))
		copy(out, m.lastList)
		return out
	}

	result := Visible(all, user, showAll, search, location, tier)
	m.lastKey = key
	m.lastList = result
	m.queryOK = true

	out := make([]models.DataCenter, len(result))
	copy(out, result)
	return out
}

// Aggregate is the memoized form of the analytics snapshot, keyed on the
// store version alone.
func (m *Memo) Aggregate(s *store.DataCenterStore) (*Snapshot, error) {
	all, version := s.ListVersioned()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap != nil && m.snapVersion == version {
		return m.snap, nil
	}

	snap, err := Aggregate(all)
	if err != nil {
		return nil, err
	}
	m.snapVersion = version
	m.snap = snap
	return snap, nil
}
