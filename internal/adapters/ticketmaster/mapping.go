package ticketmaster

import (
	"fmt"
	"strings"

	"event_recommender/internal/domain"
)

// Wire shapes for the Discovery API payload. Only the fields the service
// reads are declared; everything else is ignored by the decoder.

type apiResponse struct {
	Embedded *struct {
		Events []apiEvent `json:"events"`
	} `json:"_embedded"`
}

type apiEvent struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	URL            string `json:"url"`
	Description    string `json:"description"`
	AdditionalInfo string `json:"additionalInfo"`
	Info           string `json:"info"`
	PleaseNote     string `json:"pleaseNote"`

	Images []struct {
		URL string `json:"url"`
	} `json:"images"`

	Classifications []struct {
		Segment *struct {
			Name string `json:"name"`
		} `json:"segment"`
		Genre *struct {
			Name string `json:"name"`
		} `json:"genre"`
	} `json:"classifications"`

	Dates *struct {
		Start *struct {
			LocalDate string `json:"localDate"`
		} `json:"start"`
	} `json:"dates"`

	PriceRanges []struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"priceRanges"`

	Embedded *struct {
		Venues []apiVenue `json:"venues"`
	} `json:"_embedded"`
}

type apiVenue struct {
	PostalCode string `json:"postalCode"`
	Address    *struct {
		Line1 string `json:"line1"`
		Line2 string `json:"line2"`
		Line3 string `json:"line3"`
	} `json:"address"`
	City *struct {
		Name string `json:"name"`
	} `json:"city"`
	State *struct {
		Name string `json:"name"`
	} `json:"state"`
	Country *struct {
		Name string `json:"name"`
	} `json:"country"`
	Location *struct {
		// The API serializes coordinates as strings.
		Latitude  float64 `json:"latitude,string"`
		Longitude float64 `json:"longitude,string"`
	} `json:"location"`
}

func mapEvents(events []apiEvent) []domain.Item {
	out := make([]domain.Item, 0, len(events))
	for _, ev := range events {
		it := domain.Item{
			ID:          ev.ID,
			Name:        ev.Name,
			URL:         ev.URL,
			Description: firstNonEmpty(ev.Description, ev.AdditionalInfo, ev.Info, ev.PleaseNote),
			Categories:  mapCategories(ev),
			Date:        mapStartDate(ev),
			PriceRange:  mapPriceRange(ev),
			ImageURL:    mapImageURL(ev),
		}
		if v := firstVenue(ev); v != nil {
			if v.Address != nil {
				it.Address = strings.TrimSpace(v.Address.Line1 + v.Address.Line2 + v.Address.Line3)
			}
			if v.City != nil {
				it.City = v.City.Name
			}
			if v.State != nil {
				it.State = v.State.Name
			}
			if v.Country != nil {
				it.Country = v.Country.Name
			}
			it.Zip = v.PostalCode
			if v.Location != nil {
				it.Lat = v.Location.Latitude
				it.Lon = v.Location.Longitude
			}
		}
		out = append(out, it)
	}
	return out
}

// mapCategories collects segment and genre names across classifications.
func mapCategories(ev apiEvent) []string {
	seen := map[string]struct{}{}
	var cats []string
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		cats = append(cats, name)
	}
	for _, cl := range ev.Classifications {
		if cl.Segment != nil {
			add(cl.Segment.Name)
		}
		if cl.Genre != nil {
			add(cl.Genre.Name)
		}
	}
	return cats
}

func mapStartDate(ev apiEvent) string {
	if ev.Dates != nil && ev.Dates.Start != nil {
		return ev.Dates.Start.LocalDate
	}
	return ""
}

func mapPriceRange(ev apiEvent) string {
	if len(ev.PriceRanges) == 0 {
		return "NA"
	}
	pr := ev.PriceRanges[0]
	return fmt.Sprintf("$%.0f-%.0f", pr.Min, pr.Max)
}

func mapImageURL(ev apiEvent) string {
	if len(ev.Images) == 0 {
		return ""
	}
	return ev.Images[0].URL
}

func firstVenue(ev apiEvent) *apiVenue {
	if ev.Embedded == nil || len(ev.Embedded.Venues) == 0 {
		return nil
	}
	return &ev.Embedded.Venues[0]
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
