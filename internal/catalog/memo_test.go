package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"dc-atlas-api-server/internal/models"
	"dc-atlas-api-server/internal/store"
)

func TestMemoVisibleRecomputesOnVersionChange(t *testing.T) {
	s := store.NewDataCenterStore(sampleCatalog())
	memo := &Memo{}
	user := &models.User{Country: "USA"}

	first := memo.Visible(s, user, false, "", "", "")
	if len(first) != 4 {
		t.Fatalf("len = %d, want 4", len(first))
	}

	// Same store version and parameters serve the cached list.
	cached := memo.Visible(s, user, false, "", "", "")
	if diff := cmp.Diff(ids(first), ids(cached)); diff != "" {
		t.Errorf("cached result differs (-first +cached):\n%s", diff)
	}

	if err := s.Create(facility("dc-9", "NewVault Austin", "Austin, USA", "Austin", "USA", models.Tier3)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	after := memo.Visible(s, user, false, "", "", "")
	if len(after) != 5 {
		t.Errorf("len after create = %d, want 5", len(after))
	}
	if after[2].ID != "dc-9" {
		t.Errorf("new USA facility not prioritized, order = %v", ids(after))
	}
}

func TestMemoVisibleKeysOnParameters(t *testing.T) {
	s := store.NewDataCenterStore(sampleCatalog())
	memo := &Memo{}

	all := memo.Visible(s, nil, false, "", "", "")
	filtered := memo.Visible(s, nil, false, "vault", "", "")
	if len(filtered) >= len(all) {
		t.Errorf("filtered len = %d, want < %d", len(filtered), len(all))
	}

	asViewer := memo.Visible(s, &models.User{Country: "Japan"}, false, "", "", "")
	if asViewer[0].ID != "dc-3" {
		t.Errorf("viewer order = %v, want dc-3 first", ids(asViewer))
	}
}

func TestMemoVisibleReturnsCopies(t *testing.T) {
	s := store.NewDataCenterStore(sampleCatalog())
	memo := &Memo{}

	first := memo.Visible(s, nil, false, "", "", "")
	first[0].Name = "mutated"

	second := memo.Visible(s, nil, false, "", "", "")
	if second[0].Name == "mutated" {
		t.Error("mutating a returned slice leaked into the cache")
	}
}

func TestMemoAggregateCachesByVersion(t *testing.T) {
	a := analyticsFacility("dc-a", "Alpha", "USA", models.Tier4)
	b := analyticsFacility("dc-b", "Beta", "Japan", models.Tier3)
	s := store.NewDataCenterStore([]models.DataCenter{a, b})
	memo := &Memo{}

	first, err := memo.Aggregate(s)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	cached, err := memo.Aggregate(s)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if first != cached {
		t.Error("unchanged store should serve the cached snapshot")
	}

	c := analyticsFacility("dc-c", "Gamma", "USA", models.Tier4)
	if err := s.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	after, err := memo.Aggregate(s)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if after == first {
		t.Error("version bump should recompute the snapshot")
	}
	if after.TotalFacilities != 3 {
		t.Errorf("TotalFacilities = %d, want 3", after.TotalFacilities)
	}
}
