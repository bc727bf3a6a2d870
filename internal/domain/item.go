package domain

// Item is a recommendable event as returned by the search provider or the
// item store. Identity is by ID; two items with the same ID are the same
// event even when their attribute snapshots differ.
type Item struct {
	ID          string   `json:"item_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Categories  []string `json:"categories"`
	Lat         float64  `json:"latitude"`
	Lon         float64  `json:"longitude"`
	Date        string   `json:"date,omitempty"`
	PriceRange  string   `json:"price_range,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	URL         string   `json:"url,omitempty"`
	Address     string   `json:"address,omitempty"`
	City        string   `json:"city,omitempty"`
	State       string   `json:"state,omitempty"`
	Country     string   `json:"country,omitempty"`
	Zip         string   `json:"zip,omitempty"`
}

// UndefinedCategory is the provider's placeholder tag for untagged events.
// It is never treated as a real interest.
const UndefinedCategory = "Undefined"

type Coordinate struct{ Lat, Lon float64 }

// Valid reports whether the coordinate is inside the WGS84 degree ranges.
// Upstream does not enforce this, so consumers validate defensively.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}
