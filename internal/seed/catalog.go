package seed

import (
	"time"

	"dc-atlas-api-server/internal/models"
)

// DataCenters returns the static seed catalog, validated record by record.
// Hyperscaler cloud regions are not listed: their published pricing carries
// no colocation figures and would be rejected at ingest.
func DataCenters() ([]models.DataCenter, error) {
	catalog := seedCatalog()
	seen := make(map[string]bool, len(catalog))
	for _, dc := range catalog {
		if err := Validate(dc); err != nil {
			return nil, err
		}
		if seen[dc.ID] {
			return nil, &duplicateIDError{ID: dc.ID}
		}
		seen[dc.ID] = true
	}
	return catalog, nil
}

type duplicateIDError struct{ ID string }

func (e *duplicateIDError) Error() string {
	return "seed: duplicate facility id " + e.ID
}

func seedCatalog() []models.DataCenter {
	return []models.DataCenter{
		{
			ID:          "1",
			Name:        "TechVault NYC",
			Location:    "New York, NY",
			City:        "New York",
			Country:     "USA",
			Coordinates: models.Coordinates{Lat: 40.7589, Lng: -73.9851},
			Tier:        models.Tier3,
			Description: "Premier data center facility in the heart of Manhattan, offering enterprise-grade colocation and cloud services with 99.982% uptime guarantee.",
			Website:     "https://techvault-nyc.com",
			Established: "2018",
			Operator:    "TechVault Corporation",
			Specifications: models.Specifications{
				TotalSpace:   "150,000 sq ft",
				Power:        "25 MW",
				Cooling:      "N+1 Redundant",
				Floors:       8,
				RackCount:    2400,
				PowerDensity: "15 kW/rack",
			},
			Capacity: models.Capacity{
				Used:           78,
				AvailableRacks: 45,
				Status:         models.CapacityAvailable,
				LastUpdated:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			},
			Connectivity: models.Connectivity{
				Carriers:          []string{"Verizon", "AT&T", "Level 3", "Cogent", "NTT"},
				Bandwidth:         "100 Gbps",
				InternetExchanges: []string{"NYIIX", "DE-CIX NY"},
				FiberProviders:    []string{"Crown Castle", "Zayo", "Lightower"},
				CloudOnRamps:      []string{"AWS Direct Connect", "Azure ExpressRoute", "Google Cloud Interconnect"},
			},
			Services: []string{
				"Colocation", "Dedicated Servers", "Cloud Hosting", "Disaster Recovery",
				"Managed Services", "Network Security", "Load Balancing", "24/7 Support",
				"Remote Hands", "Smart Hands",
			},
			Security: models.Security{
				Level:         "Military Grade",
				AccessControl: "Biometric + Key Card",
				Surveillance:  "24/7 CCTV with AI monitoring",
				Compliance:    []string{"SOC 2 Type II", "PCI DSS", "HIPAA"},
			},
			Certifications: []string{"SOC 2 Type II", "PCI DSS", "HIPAA", "ISO 27001", "SSAE 18"},
			Sustainability: models.Sustainability{
				PUE:                 1.3,
				RenewableEnergy:     85,
				CarbonNeutral:       true,
				GreenCertifications: []string{"LEED Gold", "Energy Star"},
			},
			Contact: models.Contact{
				Phone:     "+1 (212) 555-0123",
				Email:     "sales@techvault-nyc.com",
				Website:   "www.techvault-nyc.com",
				SalesTeam: "sales@techvault-nyc.com",
				Support:   "support@techvault-nyc.com",
			},
			Pricing: models.Pricing{
				Colocation:      "450",
				DedicatedServer: "299",
				CloudHosting:    "0.12",
				Bandwidth:       "2.50",
				Setup:           "500",
			},
			Amenities:      []string{"Conference Rooms", "Break Area", "Parking", "Loading Dock", "Visitor Center"},
			NearbyServices: []string{"Restaurants", "Hotels", "Airport (30 min)", "Public Transit", "Banks"},
			Reviews: models.Reviews{
				Rating:       4.7,
				TotalReviews: 156,
				Reliability:  4.8,
				Support:      4.6,
				Value:        4.5,
			},
			RealTimeData: models.RealTimeData{
				Temperature:    22.5,
				Humidity:       45,
				PowerUsage:     18.2,
				NetworkLatency: 2.1,
				Uptime:         99.98,
			},
		},
		{
			ID:          "2",
			Name:        "CloudCore London",
			Location:    "London, UK",
			City:        "London",
			Country:     "United Kingdom",
			Coordinates: models.Coordinates{Lat: 51.5074, Lng: -0.1278},
			Tier:        models.Tier4,
			Description: "State-of-the-art Tier 4 data center in London's financial district, providing maximum uptime and security for mission-critical applications.",
			Website:     "https://cloudcore-london.co.uk",
			Established: "2016",
			Operator:    "CloudCore International",
			Specifications: models.Specifications{
				TotalSpace:   "200,000 sq ft",
				Power:        "40 MW",
				Cooling:      "2N Redundant",
				Floors:       12,
				RackCount:    3200,
				PowerDensity: "20 kW/rack",
			},
			Capacity: models.Capacity{
				Used:           65,
				AvailableRacks: 78,
				Status:         models.CapacityAvailable,
				LastUpdated:    time.Date(2024, 1, 15, 9, 15, 0, 0, time.UTC),
			},
			Connectivity: models.Connectivity{
				Carriers:          []string{"BT", "Virgin Media", "TalkTalk", "COLT", "Zayo"},
				Bandwidth:         "200 Gbps",
				InternetExchanges: []string{"LINX", "DE-CIX London"},
				FiberProviders:    []string{"Openreach", "CityFibre", "Hyperoptic"},
				CloudOnRamps:      []string{"AWS Direct Connect", "Azure ExpressRoute", "Google Cloud", "Oracle FastConnect"},
			},
			Services: []string{
				"Colocation", "Private Cloud", "Hybrid Cloud", "DDoS Protection",
				"Data Backup", "Remote Hands", "Power Management", "Compliance Support",
				"Managed Security", "Network Monitoring",
			},
			Security: models.Security{
				Level:         "Maximum Security",
				AccessControl: "Multi-factor Authentication",
				Surveillance:  "AI-powered 24/7 monitoring",
				Compliance:    []string{"SOC 2 Type II", "ISO 27001", "PCI DSS"},
			},
			Certifications: []string{"SOC 2 Type II", "ISO 27001", "PCI DSS", "GDPR Compliant", "ISO 14001"},
			Sustainability: models.Sustainability{
				PUE:                 1.25,
				RenewableEnergy:     100,
				CarbonNeutral:       true,
				GreenCertifications: []string{"BREEAM Excellent", "Carbon Trust Standard"},
			},
			Contact: models.Contact{
				Phone:     "+44 20 7946 0958",
				Email:     "info@cloudcore-london.co.uk",
				Website:   "www.cloudcore-london.co.uk",
				SalesTeam: "sales@cloudcore-london.co.uk",
				Support:   "support@cloudcore-london.co.uk",
			},
			Pricing: models.Pricing{
				Colocation:      "520",
				DedicatedServer: "389",
				CloudHosting:    "0.15",
				Bandwidth:       "3.20",
				Setup:           "750",
			},
			Amenities:      []string{"Executive Lounge", "Meeting Rooms", "Café", "Secure Parking", "Concierge"},
			NearbyServices: []string{"Financial District", "Hotels", "Heathrow (45 min)", "Underground", "Restaurants"},
			Reviews: models.Reviews{
				Rating:       4.9,
				TotalReviews: 203,
				Reliability:  4.9,
				Support:      4.8,
				Value:        4.7,
			},
			RealTimeData: models.RealTimeData{
				Temperature:    21.8,
				Humidity:       42,
				PowerUsage:     26.5,
				NetworkLatency: 1.8,
				Uptime:         99.99,
			},
		},
		{
			ID:          "3",
			Name:        "DataFlex Tokyo",
			Location:    "Tokyo, Japan",
			City:        "Tokyo",
			Country:     "Japan",
			Coordinates: models.Coordinates{Lat: 35.6762, Lng: 139.6503},
			Tier:        models.Tier3,
			Description: "Modern data center facility serving the Asia-Pacific region with cutting-edge infrastructure and local language support.",
			Website:     "https://dataflex-tokyo.jp",
			Established: "2019",
			Operator:    "DataFlex Asia Pacific",
			Specifications: models.Specifications{
				TotalSpace:   "120,000 sq ft",
				Power:        "30 MW",
				Cooling:      "N+1 Redundant",
				Floors:       6,
				RackCount:    1800,
				PowerDensity: "12 kW/rack",
			},
			Capacity: models.Capacity{
				Used:           82,
				AvailableRacks: 28,
				Status:         models.CapacityLimited,
				LastUpdated:    time.Date(2024, 1, 15, 14, 20, 0, 0, time.UTC),
			},
			Connectivity: models.Connectivity{
				Carriers:          []string{"NTT", "KDDI", "SoftBank", "IIJ", "ARTERIA"},
				Bandwidth:         "150 Gbps",
				InternetExchanges: []string{"JPIX", "JPNAP Tokyo"},
				FiberProviders:    []string{"NTT East", "KDDI", "Colt"},
				CloudOnRamps:      []string{"AWS Direct Connect", "Azure ExpressRoute", "Google Cloud", "Alibaba Cloud"},
			},
			Services: []string{
				"Colocation", "Dedicated Servers", "CDN Services", "Gaming Infrastructure",
				"Streaming Services", "Mobile App Backend", "AI/ML Hosting", "IoT Platform",
				"Edge Computing", "Content Delivery",
			},
			Security: models.Security{
				Level:         "High Security",
				AccessControl: "Biometric Scanning",
				Surveillance:  "360° monitoring with facial recognition",
				Compliance:    []string{"SOC 2 Type II", "ISO 27001", "ISMS"},
			},
			Certifications: []string{"SOC 2 Type II", "ISO 27001", "ISMS", "Privacy Mark", "FISC"},
			Sustainability: models.Sustainability{
				PUE:                 1.35,
				RenewableEnergy:     70,
				CarbonNeutral:       false,
				GreenCertifications: []string{"CASBEE A-rank"},
			},
			Contact: models.Contact{
				Phone:     "+81 3-5555-0123",
				Email:     "sales@dataflex-tokyo.jp",
				Website:   "www.dataflex-tokyo.jp",
				SalesTeam: "sales@dataflex-tokyo.jp",
				Support:   "support@dataflex-tokyo.jp",
			},
			Pricing: models.Pricing{
				Colocation:      "420",
				DedicatedServer: "259",
				CloudHosting:    "0.10",
				Bandwidth:       "2.80",
				Setup:           "400",
			},
			Amenities:      []string{"Traditional Tea Room", "Business Center", "Vending Area", "Parking", "Reception"},
			NearbyServices: []string{"Tech District", "Hotels", "Narita Airport (60 min)", "JR Station", "Convenience Stores"},
			Reviews: models.Reviews{
				Rating:       4.6,
				TotalReviews: 89,
				Reliability:  4.7,
				Support:      4.8,
				Value:        4.4,
			},
			RealTimeData: models.RealTimeData{
				Temperature:    23.2,
				Humidity:       48,
				PowerUsage:     24.6,
				NetworkLatency: 3.2,
				Uptime:         99.95,
			},
		},
		{
			ID:          "4",
			Name:        "SecureVault Frankfurt",
			Location:    "Frankfurt, Germany",
			City:        "Frankfurt",
			Country:     "Germany",
			Coordinates: models.Coordinates{Lat: 50.1109, Lng: 8.6821},
			Tier:        models.Tier3,
			Description: "European hub data center with excellent connectivity to major financial markets and strict data protection compliance.",
			Website:     "https://securevault-frankfurt.de",
			Established: "2017",
			Operator:    "SecureVault Europe GmbH",
			Specifications: models.Specifications{
				TotalSpace:   "180,000 sq ft",
				Power:        "35 MW",
				Cooling:      "N+1 Redundant",
				Floors:       10,
				RackCount:    2800,
				PowerDensity: "18 kW/rack",
			},
			Capacity: models.Capacity{
				Used:           71,
				AvailableRacks: 52,
				Status:         models.CapacityAvailable,
				LastUpdated:    time.Date(2024, 1, 15, 11, 45, 0, 0, time.UTC),
			},
			Connectivity: models.Connectivity{
				Carriers:          []string{"Deutsche Telekom", "Vodafone", "1&1", "Level 3", "Telia"},
				Bandwidth:         "180 Gbps",
				InternetExchanges: []string{"DE-CIX Frankfurt", "ECIX-FRA"},
				FiberProviders:    []string{"Deutsche Telekom", "Vodafone", "Telefónica"},
				CloudOnRamps:      []string{"AWS Direct Connect", "Azure ExpressRoute", "Google Cloud", "IBM Cloud"},
			},
			Services: []string{
				"Colocation", "Private Cloud", "Financial Services", "GDPR Compliance",
				"Data Analytics", "Blockchain Hosting", "High-Frequency Trading",
				"Disaster Recovery", "Managed Services", "Security Operations",
			},
			Security: models.Security{
				Level:         "Bank Grade",
				AccessControl: "Multi-layered Security",
				Surveillance:  "Military-grade monitoring",
				Compliance:    []string{"SOC 2 Type II", "ISO 27001", "PCI DSS"},
			},
			Certifications: []string{"SOC 2 Type II", "ISO 27001", "PCI DSS", "GDPR", "BSI C5", "TISAX"},
			Sustainability: models.Sustainability{
				PUE:                 1.28,
				RenewableEnergy:     95,
				CarbonNeutral:       true,
				GreenCertifications: []string{"LEED Platinum", "EU Green Building"},
			},
			Contact: models.Contact{
				Phone:     "+49 69 5555 0123",
				Email:     "info@securevault-frankfurt.de",
				Website:   "www.securevault-frankfurt.de",
				SalesTeam: "sales@securevault-frankfurt.de",
				Support:   "support@securevault-frankfurt.de",
			},
			Pricing: models.Pricing{
				Colocation:      "480",
				DedicatedServer: "329",
				CloudHosting:    "0.14",
				Bandwidth:       "3.50",
				Setup:           "650",
			},
			Amenities:      []string{"Executive Suites", "Conference Center", "Restaurant", "Parking Garage", "Helipad"},
			NearbyServices: []string{"Financial Hub", "Hotels", "Frankfurt Airport (15 min)", "S-Bahn", "Business District"},
			Reviews: models.Reviews{
				Rating:       4.8,
				TotalReviews: 167,
				Reliability:  4.9,
				Support:      4.7,
				Value:        4.6,
			},
			RealTimeData: models.RealTimeData{
				Temperature:    22.1,
				Humidity:       44,
				PowerUsage:     25.2,
				NetworkLatency: 1.9,
				Uptime:         99.97,
			},
		},
		{
			ID:          "5",
			Name:        "PowerGrid Sydney",
			Location:    "Sydney, Australia",
			City:        "Sydney",
			Country:     "Australia",
			Coordinates: models.Coordinates{Lat: -33.8688, Lng: 151.2093},
			Tier:        models.Tier2,
			Description: "Reliable data center serving the Australian market with renewable energy focus and excellent local support.",
			Website:     "https://powergrid-sydney.com.au",
			Established: "2020",
			Operator:    "PowerGrid Australia Pty Ltd",
			Specifications: models.Specifications{
				TotalSpace:   "90,000 sq ft",
				Power:        "20 MW",
				Cooling:      "N+1 Redundant",
				Floors:       4,
				RackCount:    1200,
				PowerDensity: "10 kW/rack",
			},
			Capacity: models.Capacity{
				Used:           58,
				AvailableRacks: 68,
				Status:         models.CapacityAvailable,
				LastUpdated:    time.Date(2024, 1, 15, 16, 30, 0, 0, time.UTC),
			},
			Connectivity: models.Connectivity{
				Carriers:          []string{"Telstra", "Optus", "Vocus", "TPG", "Aussie Broadband"},
				Bandwidth:         "100 Gbps",
				InternetExchanges: []string{"IX Australia", "Megaport"},
				FiberProviders:    []string{"NBN Co", "Telstra", "Optus"},
				CloudOnRamps:      []string{"AWS Direct Connect", "Azure ExpressRoute", "Google Cloud"},
			},
			Services: []string{
				"Colocation", "Cloud Hosting", "Content Delivery", "Media Streaming",
				"E-commerce Hosting", "Mobile Backend", "Green Energy", "Local Support",
				"Backup Services", "Monitoring",
			},
			Security: models.Security{
				Level:         "Standard Security",
				AccessControl: "Key Card Access",
				Surveillance:  "Standard CCTV monitoring",
				Compliance:    []string{"SOC 2 Type II", "ISO 27001"},
			},
			Certifications: []string{"SOC 2 Type II", "ISO 27001", "ACSC", "Australian Privacy Principles"},
			Sustainability: models.Sustainability{
				PUE:                 1.4,
				RenewableEnergy:     90,
				CarbonNeutral:       true,
				GreenCertifications: []string{"Green Star", "Climate Active"},
			},
			Contact: models.Contact{
				Phone:     "+61 2 5555 0123",
				Email:     "sales@powergrid-sydney.com.au",
				Website:   "www.powergrid-sydney.com.au",
				SalesTeam: "sales@powergrid-sydney.com.au",
				Support:   "support@powergrid-sydney.com.au",
			},
			Pricing: models.Pricing{
				Colocation:      "380",
				DedicatedServer: "229",
				CloudHosting:    "0.09",
				Bandwidth:       "2.20",
				Setup:           "350",
			},
			Amenities:      []string{"Surf Board Storage", "BBQ Area", "Parking", "Bike Racks", "Visitor Lounge"},
			NearbyServices: []string{"CBD", "Hotels", "Kingsford Smith Airport (20 min)", "Train Station", "Beaches"},
			Reviews: models.Reviews{
				Rating:       4.4,
				TotalReviews: 72,
				Reliability:  4.5,
				Support:      4.6,
				Value:        4.7,
			},
			RealTimeData: models.RealTimeData{
				Temperature:    24.1,
				Humidity:       52,
				PowerUsage:     11.6,
				NetworkLatency: 4.1,
				Uptime:         99.92,
			},
		},
		{
			ID:          "6",
			Name:        "NordicConnect Stockholm",
			Location:    "Stockholm, Sweden",
			City:        "Stockholm",
			Country:     "Sweden",
			Coordinates: models.Coordinates{Lat: 59.3293, Lng: 18.0686},
			Tier:        models.Tier3,
			Description: "Sustainable data center in Stockholm, powered by 100% renewable energy and offering excellent connectivity to Northern Europe.",
			Website:     "https://nordicconnect-stockholm.se",
			Established: "2021",
			Operator:    "NordicConnect AB",
			Specifications: models.Specifications{
				TotalSpace:   "100,000 sq ft",
				Power:        "22 MW",
				Cooling:      "Free Cooling + N+1",
				Floors:       5,
				RackCount:    1500,
				PowerDensity: "14 kW/rack",
			},
			Capacity: models.Capacity{
				Used:           62,
				AvailableRacks: 57,
				Status:         models.CapacityAvailable,
				LastUpdated:    time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC),
			},
			Connectivity: models.Connectivity{
				Carriers:          []string{"Telia", "Tele2", "GlobalConnect", "Netnod", "IP-Only"},
				Bandwidth:         "120 Gbps",
				InternetExchanges: []string{"Netnod Stockholm", "STHIX"},
				FiberProviders:    []string{"Stokab", "GlobalConnect", "Telia"},
				CloudOnRamps:      []string{"AWS Direct Connect", "Azure ExpressRoute", "Google Cloud"},
			},
			Services: []string{
				"Colocation", "Green Hosting", "Edge Computing", "IoT Solutions",
				"Managed Services", "Disaster Recovery", "Network Security", "24/7 Support",
			},
			Security: models.Security{
				Level:         "High Security",
				AccessControl: "Biometric + Key Card",
				Surveillance:  "24/7 CCTV",
				Compliance:    []string{"ISO 27001", "GDPR"},
			},
			Certifications: []string{"ISO 27001", "GDPR Compliant", "ISO 14001", "LEED Gold"},
			Sustainability: models.Sustainability{
				PUE:                 1.15,
				RenewableEnergy:     100,
				CarbonNeutral:       true,
				GreenCertifications: []string{"Green Power Certified"},
			},
			Contact: models.Contact{
				Phone:     "+46 8-5555-0123",
				Email:     "sales@nordicconnect-stockholm.se",
				Website:   "www.nordicconnect-stockholm.se",
				SalesTeam: "sales@nordicconnect-stockholm.se",
				Support:   "support@nordicconnect-stockholm.se",
			},
			Pricing: models.Pricing{
				Colocation:      "400",
				DedicatedServer: "280",
				CloudHosting:    "0.11",
				Bandwidth:       "2.70",
				Setup:           "450",
			},
			Amenities:      []string{"Sauna", "Gym", "Cafeteria", "Meeting Rooms", "Parking"},
			NearbyServices: []string{"Tech Park", "Hotels", "Arlanda Airport (35 min)", "Metro Station", "Restaurants"},
			Reviews: models.Reviews{
				Rating:       4.7,
				TotalReviews: 95,
				Reliability:  4.8,
				Support:      4.7,
				Value:        4.6,
			},
			RealTimeData: models.RealTimeData{
				Temperature:    20.0,
				Humidity:       40,
				PowerUsage:     15.5,
				NetworkLatency: 2.5,
				Uptime:         99.99,
			},
		},
		{
			ID:          "7",
			Name:        "DesertCloud Dubai",
			Location:    "Dubai, UAE",
			City:        "Dubai",
			Country:     "United Arab Emirates",
			Coordinates: models.Coordinates{Lat: 25.2048, Lng: 55.2708},
			Tier:        models.Tier4,
			Description: "Cutting-edge data center in Dubai, offering high-density colocation and cloud services for the Middle East and Africa.",
			Website:     "https://desertcloud-dubai.ae",
			Established: "2022",
			Operator:    "DesertCloud Innovations",
			Specifications: models.Specifications{
				TotalSpace:   "130,000 sq ft",
				Power:        "30 MW",
				Cooling:      "2N Redundant + Adiabatic",
				Floors:       7,
				RackCount:    2000,
				PowerDensity: "16 kW/rack",
			},
			Capacity: models.Capacity{
				Used:           70,
				AvailableRacks: 60,
				Status:         models.CapacityAvailable,
				LastUpdated:    time.Date(2024, 1, 15, 19, 30, 0, 0, time.UTC),
			},
			Connectivity: models.Connectivity{
				Carriers:          []string{"Etisalat", "Du", "STC", "Omantel", "Mobily"},
				Bandwidth:         "150 Gbps",
				InternetExchanges: []string{"UAE-IX"},
				FiberProviders:    []string{"Etisalat", "Du"},
				CloudOnRamps:      []string{"AWS Direct Connect", "Azure ExpressRoute", "Oracle FastConnect"},
			},
			Services: []string{
				"Colocation", "Cloud Hosting", "Managed Services", "Disaster Recovery",
				"Cybersecurity", "AI/ML Infrastructure", "Blockchain Hosting", "Content Delivery",
			},
			Security: models.Security{
				Level:         "Military Grade",
				AccessControl: "Biometric + Retina Scan",
				Surveillance:  "24/7 AI-powered CCTV",
				Compliance:    []string{"ISO 27001", "PCI DSS", "NIST"},
			},
			Certifications: []string{"ISO 27001", "PCI DSS", "NIST", "Tier IV Design Certified"},
			Sustainability: models.Sustainability{
				PUE:                 1.30,
				RenewableEnergy:     60,
				CarbonNeutral:       false,
				GreenCertifications: []string{"Estidama Pearl Rating"},
			},
			Contact: models.Contact{
				Phone:     "+971 4-5555-0123",
				Email:     "sales@desertcloud-dubai.ae",
				Website:   "www.desertcloud-dubai.ae",
				SalesTeam: "sales@desertcloud-dubai.ae",
				Support:   "support@desertcloud-dubai.ae",
			},
			Pricing: models.Pricing{
				Colocation:      "550",
				DedicatedServer: "350",
				CloudHosting:    "0.18",
				Bandwidth:       "3.00",
				Setup:           "800",
			},
			Amenities:      []string{"Executive Suites", "Prayer Rooms", "Cafeteria", "Valet Parking", "Concierge"},
			NearbyServices: []string{"Business Bay", "Hotels", "Dubai International Airport (20 min)", "Metro Station", "Shopping Malls"},
			Reviews: models.Reviews{
				Rating:       4.8,
				TotalReviews: 110,
				Reliability:  4.9,
				Support:      4.7,
				Value:        4.6,
			},
			RealTimeData: models.RealTimeData{
				Temperature:    23.0,
				Humidity:       35,
				PowerUsage:     20.1,
				NetworkLatency: 3.0,
				Uptime:         99.99,
			},
		},
	}
}
