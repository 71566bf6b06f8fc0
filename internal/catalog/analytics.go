package catalog

import (
	"errors"
	"math"
	"strings"

	"dc-atlas-api-server/internal/models"
)

// ErrEmptyCatalog is returned by Aggregate for a zero-facility input. The
// averages and superlatives are undefined there, and an empty store indicates
// broken seeding rather than a state worth rendering.
var ErrEmptyCatalog = errors.New("catalog: aggregate over empty collection")

type TierCount struct {
	Tier       string  `json:"tier"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // one decimal place
}

type RegionCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

type CapacityPoint struct {
	Name      string  `json:"name"`
	Used      float64 `json:"used"`
	Available float64 `json:"available"`
	PowerMW   int     `json:"power"`
}

type SustainabilityPoint struct {
	Name      string  `json:"name"`
	PUE       float64 `json:"pue"`
	Renewable float64 `json:"renewable"`
	Rating    float64 `json:"rating"`
}

type PricingPoint struct {
	Name       string  `json:"name"`
	Colocation int     `json:"colocation"`
	Dedicated  int     `json:"dedicated"`
	Cloud      float64 `json:"cloud"`
}

type Averages struct {
	PUE             float64 `json:"pue"`             // two decimals
	RenewableEnergy float64 `json:"renewableEnergy"` // one decimal
	Rating          float64 `json:"rating"`          // one decimal
	Uptime          float64 `json:"uptime"`          // two decimals
	CapacityUsed    float64 `json:"capacityUsed"`    // one decimal
}

// Snapshot is the chart-ready aggregate view of the whole catalog.
type Snapshot struct {
	TotalFacilities      int                   `json:"totalFacilities"`
	TierDistribution     []TierCount           `json:"tierDistribution"`
	RegionalDistribution []RegionCount         `json:"regionalDistribution"`
	CapacitySeries       []CapacityPoint       `json:"capacitySeries"`
	SustainabilitySeries []SustainabilityPoint `json:"sustainabilitySeries"`
	PricingSeries        []PricingPoint        `json:"pricingSeries"`
	Averages             Averages              `json:"averages"`
	MostEfficient        models.DataCenter     `json:"mostEfficient"`
	HighestRated         models.DataCenter     `json:"highestRated"`
	BestValue            models.DataCenter     `json:"bestValue"`
}

// Aggregate computes the full analytics snapshot in one pass over the
// collection. Pure; fails on empty input or a malformed pricing string.
func Aggregate(all []models.DataCenter) (*Snapshot, error) {
	if len(all) == 0 {
		return nil, ErrEmptyCatalog
	}

	snap := &Snapshot{
		TotalFacilities:      len(all),
		CapacitySeries:       make([]CapacityPoint, 0, len(all)),
		SustainabilitySeries: make([]SustainabilityPoint, 0, len(all)),
		PricingSeries:        make([]PricingPoint, 0, len(all)),
	}

	tierCounts := make(map[string]int)
	tierOrder := make([]string, 0, 4)
	regionCounts := make(map[string]int)
	regionOrder := make([]string, 0, len(all))

	var sumPUE, sumRenewable, sumRating, sumUptime, sumUsed float64
	bestValuePrice := 0
	for i, dc := range all {
		if _, ok := tierCounts[dc.Tier]; !ok {
			tierOrder = append(tierOrder, dc.Tier)
		}
		tierCounts[dc.Tier]++
		if _, ok := regionCounts[dc.Country]; !ok {
			regionOrder = append(regionOrder, dc.Country)
		}
		regionCounts[dc.Country]++

		colocation, err := ParseLeadingInt("pricing.colocation", dc.ID, dc.Pricing.Colocation)
		if err != nil {
			return nil, err
		}
		dedicated, err := ParseLeadingInt("pricing.dedicatedServer", dc.ID, dc.Pricing.DedicatedServer)
		if err != nil {
			return nil, err
		}
		cloud, err := ParseLeadingFloat("pricing.cloudHosting", dc.ID, dc.Pricing.CloudHosting)
		if err != nil {
			return nil, err
		}
		power, err := ParseLeadingInt("specifications.power", dc.ID, dc.Specifications.Power)
		if err != nil {
			return nil, err
		}

		name := firstWord(dc.Name)
		snap.CapacitySeries = append(snap.CapacitySeries, CapacityPoint{
			Name:      name,
			Used:      dc.Capacity.Used,
			Available: 100 - dc.Capacity.Used,
			PowerMW:   power,
		})
		snap.SustainabilitySeries = append(snap.SustainabilitySeries, SustainabilityPoint{
			Name:      name,
			PUE:       dc.Sustainability.PUE,
			Renewable: dc.Sustainability.RenewableEnergy,
			Rating:    dc.Reviews.Rating,
		})
		snap.PricingSeries = append(snap.PricingSeries, PricingPoint{
			Name:       name,
			Colocation: colocation,
			Dedicated:  dedicated,
			Cloud:      cloud * 100, // Convert to per 100 hours for better visualization
		})

		sumPUE += dc.Sustainability.PUE
		sumRenewable += dc.Sustainability.RenewableEnergy
		sumRating += dc.Reviews.Rating
		sumUptime += dc.RealTimeData.Uptime
		sumUsed += dc.Capacity.Used

		// Strict comparisons keep the first occurrence on ties.
		if i == 0 {
			snap.MostEfficient = dc
			snap.HighestRated = dc
			snap.BestValue = dc
			bestValuePrice = colocation
			continue
		}
		if dc.Sustainability.PUE < snap.MostEfficient.Sustainability.PUE {
			snap.MostEfficient = dc
		}
		if dc.Reviews.Rating > snap.HighestRated.Reviews.Rating {
			snap.HighestRated = dc
		}
		if colocation < bestValuePrice {
			snap.BestValue = dc
			bestValuePrice = colocation
		}
	}

	total := float64(len(all))
	for _, tier := range tierOrder {
		count := tierCounts[tier]
		snap.TierDistribution = append(snap.TierDistribution, TierCount{
			Tier:       tier,
			Count:      count,
			Percentage: round1(float64(count) / total * 100),
		})
	}
	for _, country := range regionOrder {
		snap.RegionalDistribution = append(snap.RegionalDistribution, RegionCount{
			Country: country,
			Count:   regionCounts[country],
		})
	}

	snap.Averages = Averages{
		PUE:             round2(sumPUE / total),
		RenewableEnergy: round1(sumRenewable / total),
		Rating:          round1(sumRating / total),
		Uptime:          round2(sumUptime / total),
		CapacityUsed:    round1(sumUsed / total),
	}

	return snap, nil
}

func firstWord(name string) string {
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return name
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
