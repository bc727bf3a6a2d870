package domain

import "math"

// earthRadiusMiles is the Haversine radius used across the service. The
// API reports distances in statute miles, so this constant is load-bearing:
// changing it changes every ranking and every stored test fixture.
const earthRadiusMiles = 3961

// Distance returns the great-circle distance in miles between two points
// given in degrees, using the Haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)

	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
