package catalog

import (
	"strings"

	"dc-atlas-api-server/internal/models"
)

// Visible derives the facility list a viewer sees: facilities in the viewer's
// country first (original order preserved within each group), then the
// conjunction of free-text search and exact location/tier filters. Pure; the
// input slice is never mutated.
func Visible(all []models.DataCenter, user *models.User, showAll bool, search, location, tier string) []models.DataCenter {
	prioritized := prioritize(all, user, showAll)

	q := strings.ToLower(search)
	out := make([]models.DataCenter, 0, len(prioritized))
	for _, dc := range prioritized {
		if q != "" && !matchesSearch(dc, q) {
			continue
		}
		if location != "" && dc.Location != location {
			continue
		}
		if tier != "" && dc.Tier != tier {
			continue
		}
		out = append(out, dc)
	}
	return out
}

// prioritize partitions by case-insensitive country match against the viewer.
// Anonymous viewers and the show-all override leave the order untouched.
func prioritize(all []models.DataCenter, user *models.User, showAll bool) []models.DataCenter {
	if user == nil || showAll {
		out := make([]models.DataCenter, len(all))
		copy(out, all)
		return out
	}

	home := make([]models.DataCenter, 0, len(all))
	other := make([]models.DataCenter, 0, len(all))
	for _, dc := range all {
		if strings.EqualFold(dc.Country, user.Country) {
			home = append(home, dc)
		} else {
			other = append(other, dc)
		}
	}
	return append(home, other...)
}

func matchesSearch(dc models.DataCenter, q string) bool {
	for _, field := range []string{dc.Name, dc.Location, dc.City, dc.Country} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// DistinctLocations returns the location values present, first occurrence
// first, for populating filter options.
func DistinctLocations(all []models.DataCenter) []string {
	return distinct(all, func(dc models.DataCenter) string { return dc.Location })
}

// DistinctTiers returns the tier values present, first occurrence first.
func DistinctTiers(all []models.DataCenter) []string {
	return distinct(all, func(dc models.DataCenter) string { return dc.Tier })
}

func distinct(all []models.DataCenter, key func(models.DataCenter) string) []string {
	seen := make(map[string]struct{}, len(all))
	out := make([]string, 0, len(all))
	for _, dc := range all {
		k := key(dc)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
