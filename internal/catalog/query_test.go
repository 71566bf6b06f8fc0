package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"dc-atlas-api-server/internal/models"
)

func facility(id, name, location, city, country, tier string) models.DataCenter {
	return models.DataCenter{
		ID:       id,
		Name:     name,
		Location: location,
		City:     city,
		Country:  country,
		Tier:     tier,
	}
}

func ids(list []models.DataCenter) []string {
	out := make([]string, len(list))
	for i, dc := range list {
		out[i] = dc.ID
	}
	return out
}

func sampleCatalog() []models.DataCenter {
	return []models.DataCenter{
		facility("dc-1", "TechVault NYC", "New York, USA", "New York", "USA", models.Tier4),
		facility("dc-2", "CloudCore London", "London, UK", "London", "United Kingdom", models.Tier3),
		facility("dc-3", "DataFlex Tokyo", "Tokyo, Japan", "Tokyo", "Japan", models.Tier4),
		facility("dc-4", "SecureVault Chicago", "Chicago, USA", "Chicago", "USA", models.Tier3),
	}
}

func TestVisiblePrioritizesViewerCountry(t *testing.T) {
	all := sampleCatalog()
	user := &models.User{Country: "usa"}

	got := ids(Visible(all, user, false, "", "", ""))
	want := []string{"dc-1", "dc-4", "dc-2", "dc-3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestVisibleAnonymousKeepsOrder(t *testing.T) {
	all := sampleCatalog()

	got := ids(Visible(all, nil, false, "", "", ""))
	want := []string{"dc-1", "dc-2", "dc-3", "dc-4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestVisibleShowAllOverridesPrioritization(t *testing.T) {
	all := sampleCatalog()
	user := &models.User{Country: "USA"}

	got := ids(Visible(all, user, true, "", "", ""))
	want := []string{"dc-1", "dc-2", "dc-3", "dc-4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestVisibleFiltersAreConjunctive(t *testing.T) {
	all := sampleCatalog()

	tests := []struct {
		name     string
		search   string
		location string
		tier     string
		want     []string
	}{
		{"search only", "vault", "", "", []string{"dc-1", "dc-4"}},
		{"search is case insensitive", "TOKYO", "", "", []string{"dc-3"}},
		{"search matches country", "united", "", "", []string{"dc-2"}},
		{"location is exact", "", "Chicago, USA", "", []string{"dc-4"}},
		{"tier is exact", "", "", models.Tier4, []string{"dc-1", "dc-3"}},
		{"search and tier", "vault", "", models.Tier3, []string{"dc-4"}},
		{"all three", "vault", "New York, USA", models.Tier4, []string{"dc-1"}},
		{"conjunction can be empty", "vault", "Tokyo, Japan", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Visible(all, nil, false, tt.search, tt.location, tt.tier))
			if len(got) == 0 {
				got = nil
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVisibleDoesNotMutateInput(t *testing.T) {
	all := sampleCatalog()
	before := ids(all)

	Visible(all, &models.User{Country: "Japan"}, false, "", "", "")

	if diff := cmp.Diff(before, ids(all)); diff != "" {
		t.Errorf("input slice was reordered (-want +got):\n%s", diff)
	}
}

func TestVisibleIsIdempotent(t *testing.T) {
	all := sampleCatalog()
	user := &models.User{Country: "USA"}

	first := Visible(all, user, false, "vault", "", "")
	second := Visible(first, user, false, "vault", "", "")
	if diff := cmp.Diff(ids(first), ids(second)); diff != "" {
		t.Errorf("second application changed the result (-first +second):\n%s", diff)
	}
}

func TestDistinctOptionsKeepFirstOccurrenceOrder(t *testing.T) {
	all := sampleCatalog()
	all = append(all, facility("dc-5", "Dup", "New York, USA", "New York", "USA", models.Tier3))

	if diff := cmp.Diff(
		[]string{"New York, USA", "London, UK", "Tokyo, Japan", "Chicago, USA"},
		DistinctLocations(all),
	); diff != "" {
		t.Errorf("locations mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{models.Tier4, models.Tier3}, DistinctTiers(all)); diff != "" {
		t.Errorf("tiers mismatch (-want +got):\n%s", diff)
	}
}
