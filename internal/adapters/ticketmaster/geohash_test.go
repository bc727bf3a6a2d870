package ticketmaster

import "testing"

func TestEncodeGeohash_KnownValues(t *testing.T) {
	cases := []struct {
		lat, lon  float64
		precision int
		want      string
	}{
		{40.7128, -74.0060, 4, "dr5r"},  // New York
		{51.5074, -0.1278, 4, "gcpv"},   // London
		{37.7749, -122.4194, 4, "9q8y"}, // San Francisco
		{0, 0, 4, "s000"},
	}
	for _, tc := range cases {
		if got := encodeGeohash(tc.lat, tc.lon, tc.precision); got != tc.want {
			t.Fatalf("encodeGeohash(%f, %f, %d) = %q, want %q", tc.lat, tc.lon, tc.precision, got, tc.want)
		}
	}
}

func TestEncodeGeohash_PrecisionGrowsPrefix(t *testing.T) {
	short := encodeGeohash(40.7128, -74.0060, 4)
	long := encodeGeohash(40.7128, -74.0060, 8)
	if len(long) != 8 || long[:4] != short {
		t.Fatalf("longer geohash should extend the shorter one: %q vs %q", short, long)
	}
}
