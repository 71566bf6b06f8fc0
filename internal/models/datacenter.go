package models

import "time"

// Tier levels, lowest to highest reliability.
const (
	Tier1 = "Tier 1"
	Tier2 = "Tier 2"
	Tier3 = "Tier 3"
	Tier4 = "Tier 4"
)

// Capacity status values.
const (
	CapacityAvailable = "Available"
	CapacityLimited   = "Limited"
	CapacityFull      = "Full"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Specifications struct {
	TotalSpace   string `json:"totalSpace"`
	Power        string `json:"power"` // numeric-with-unit, e.g. "25 MW"
	Cooling      string `json:"cooling"`
	Floors       int    `json:"floors"`
	RackCount    int    `json:"rackCount"`
	PowerDensity string `json:"powerDensity"`
}

type Capacity struct {
	Used           float64   `json:"used"` // percentage 0-100
	AvailableRacks int       `json:"availableRacks"`
	Status         string    `json:"status"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

type Connectivity struct {
	Carriers          []string `json:"carriers"`
	Bandwidth         string   `json:"bandwidth"`
	InternetExchanges []string `json:"internetExchanges"`
	FiberProviders    []string `json:"fiberProviders"`
	CloudOnRamps      []string `json:"cloudOnRamps"`
}

type Security struct {
	Level         string   `json:"level"`
	AccessControl string   `json:"accessControl"`
	Surveillance  string   `json:"surveillance"`
	Compliance    []string `json:"compliance"`
}

type Sustainability struct {
	PUE                 float64  `json:"pue"`
	RenewableEnergy     float64  `json:"renewableEnergy"` // percentage
	CarbonNeutral       bool     `json:"carbonNeutral"`
	GreenCertifications []string `json:"greenCertifications"`
}

type Contact struct {
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Website   string `json:"website"`
	SalesTeam string `json:"salesTeam"`
	Support   string `json:"support"`
}

// Pricing amounts are numeric-bearing strings as published by operators,
// e.g. "450" ($/month) or "0.12" ($/hour). Parsing happens in the catalog
// package and malformed values are rejected at ingest.
type Pricing struct {
	Colocation      string `json:"colocation"`
	DedicatedServer string `json:"dedicatedServer"`
	CloudHosting    string `json:"cloudHosting"`
	Bandwidth       string `json:"bandwidth"`
	Setup           string `json:"setup"`
}

type Reviews struct {
	Rating       float64 `json:"rating"` // 0-5
	TotalReviews int     `json:"totalReviews"`
	Reliability  float64 `json:"reliability"`
	Support      float64 `json:"support"`
	Value        float64 `json:"value"`
}

// RealTimeData holds simulated facility telemetry, not live sensor feeds.
type RealTimeData struct {
	Temperature    float64 `json:"temperature"`
	Humidity       float64 `json:"humidity"`
	PowerUsage     float64 `json:"powerUsage"`
	NetworkLatency float64 `json:"networkLatency"`
	Uptime         float64 `json:"uptime"` // percentage
}

// DataCenter is the core listing record of the directory.
type DataCenter struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Location       string         `json:"location"`
	City           string         `json:"city"`
	Country        string         `json:"country"`
	Coordinates    Coordinates    `json:"coordinates"`
	Tier           string         `json:"tier"`
	Description    string         `json:"description"`
	Website        string         `json:"website"`
	Established    string         `json:"established"`
	Operator       string         `json:"operator"`
	Specifications Specifications `json:"specifications"`
	Capacity       Capacity       `json:"capacity"`
	Connectivity   Connectivity   `json:"connectivity"`
	Services       []string       `json:"services"`
	Security       Security       `json:"security"`
	Certifications []string       `json:"certifications"`
	Sustainability Sustainability `json:"sustainability"`
	Contact        Contact        `json:"contact"`
	Pricing        Pricing        `json:"pricing"`
	Amenities      []string       `json:"amenities"`
	NearbyServices []string       `json:"nearbyServices"`
	Reviews        Reviews        `json:"reviews"`
	RealTimeData   RealTimeData   `json:"realTimeData"`
}
