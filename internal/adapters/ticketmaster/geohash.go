package ticketmaster

// The discovery API takes a geoPoint parameter encoded as a geohash. The
// encoding here follows the standard base32 alphabet; precision 4 covers a
// cell of roughly 20km, which pairs with the 50-mile search radius.

const geohashBase32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// encodeGeohash encodes (lat, lon) into a geohash of the given precision
// (number of output characters).
func encodeGeohash(lat, lon float64, precision int) string {
	if precision <= 0 {
		precision = 4
	}

	latLo, latHi := -90.0, 90.0
	lonLo, lonHi := -180.0, 180.0

	buf := make([]byte, 0, precision)
	bit := 0
	idx := 0
	even := true // alternate longitude/latitude bits, longitude first

	for len(buf) < precision {
		if even {
			mid := (lonLo + lonHi) / 2
			if lon >= mid {
				idx = idx<<1 | 1
				lonLo = mid
			} else {
				idx <<= 1
				lonHi = mid
			}
		} else {
			mid := (latLo + latHi) / 2
			if lat >= mid {
				idx = idx<<1 | 1
				latLo = mid
			} else {
				idx <<= 1
				latHi = mid
			}
		}
		even = !even

		bit++
		if bit == 5 {
			buf = append(buf, geohashBase32[idx])
			bit = 0
			idx = 0
		}
	}
	return string(buf)
}
