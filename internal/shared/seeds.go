package shared

// SeedLocation is a metro area the crawler warms the item store with.
type SeedLocation struct {
	Name string
	Lat  float64
	Lon  float64
}

var SeedLocations = []SeedLocation{
	{"New York", 40.7128, -74.0060},
	{"Los Angeles", 34.0522, -118.2437},
	{"Chicago", 41.8781, -87.6298},
	{"Houston", 29.7604, -95.3698},
	{"Phoenix", 33.4484, -112.0740},
	{"Philadelphia", 39.9526, -75.1652},
	{"San Antonio", 29.4241, -98.4936},
	{"San Diego", 32.7157, -117.1611},
	{"Dallas", 32.7767, -96.7970},
	{"San Jose", 37.3382, -121.8863},
	{"Seattle", 47.6062, -122.3321},
	{"Denver", 39.7392, -104.9903},
	{"Boston", 42.3601, -71.0589},
	{"Atlanta", 33.7490, -84.3880},
	{"Miami", 25.7617, -80.1918},
}
