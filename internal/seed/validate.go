package seed

import (
	"fmt"

	"dc-atlas-api-server/internal/catalog"
	"dc-atlas-api-server/internal/models"
)

var validTiers = map[string]bool{
	models.Tier1: true,
	models.Tier2: true,
	models.Tier3: true,
	models.Tier4: true,
}

var validStatuses = map[string]bool{
	models.CapacityAvailable: true,
	models.CapacityLimited:   true,
	models.CapacityFull:      true,
}

// Validate rejects a facility record that would later break the aggregation
// or comparison engines. Malformed numeric strings surface here, at ingest,
// instead of propagating NaN into chart series.
func Validate(dc models.DataCenter) error {
	if dc.ID == "" {
		return fmt.Errorf("seed: facility with empty id (%q)", dc.Name)
	}
	if !validTiers[dc.Tier] {
		return fmt.Errorf("seed: facility %s: unknown tier %q", dc.ID, dc.Tier)
	}
	if !validStatuses[dc.Capacity.Status] {
		return fmt.Errorf("seed: facility %s: unknown capacity status %q", dc.ID, dc.Capacity.Status)
	}
	if dc.Capacity.Used < 0 || dc.Capacity.Used > 100 {
		return fmt.Errorf("seed: facility %s: capacity.used %v out of range", dc.ID, dc.Capacity.Used)
	}
	if dc.Capacity.AvailableRacks < 0 {
		return fmt.Errorf("seed: facility %s: negative availableRacks", dc.ID)
	}
	for label, r := range map[string]float64{
		"rating":      dc.Reviews.Rating,
		"reliability": dc.Reviews.Reliability,
		"support":     dc.Reviews.Support,
		"value":       dc.Reviews.Value,
	} {
		if r < 0 || r > 5 {
			return fmt.Errorf("seed: facility %s: reviews.%s %v out of range", dc.ID, label, r)
		}
	}
	if dc.Sustainability.PUE <= 0 {
		return fmt.Errorf("seed: facility %s: non-positive pue %v", dc.ID, dc.Sustainability.PUE)
	}
	if dc.Sustainability.RenewableEnergy < 0 || dc.Sustainability.RenewableEnergy > 100 {
		return fmt.Errorf("seed: facility %s: renewableEnergy %v out of range", dc.ID, dc.Sustainability.RenewableEnergy)
	}

	if _, err := catalog.ParseLeadingInt("pricing.colocation", dc.ID, dc.Pricing.Colocation); err != nil {
		return err
	}
	if _, err := catalog.ParseLeadingInt("pricing.dedicatedServer", dc.ID, dc.Pricing.DedicatedServer); err != nil {
		return err
	}
	if _, err := catalog.ParseLeadingFloat("pricing.cloudHosting", dc.ID, dc.Pricing.CloudHosting); err != nil {
		return err
	}
	if _, err := catalog.ParseLeadingFloat("pricing.bandwidth", dc.ID, dc.Pricing.Bandwidth); err != nil {
		return err
	}
	if _, err := catalog.ParseLeadingInt("pricing.setup", dc.ID, dc.Pricing.Setup); err != nil {
		return err
	}
	if _, err := catalog.ParseLeadingInt("specifications.power", dc.ID, dc.Specifications.Power); err != nil {
		return err
	}
	return nil
}
