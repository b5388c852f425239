// Package destinations holds the travel destination catalog and the
// API handlers serving it. The catalog is an in-memory dataset; the
// handlers are plain api.Handler functions meant to be wrapped by the
// middleware pipeline.
package destinations

import (
	"strings"
)

// Destination is one entry in the travel catalog.
type Destination struct {
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	Country          string   `json:"country"`
	Region           string   `json:"region"`
	Continent        string   `json:"continent"`
	Climate          string   `json:"climate"`
	ShortDescription string   `json:"shortDescription"`
	FlightTimeHours  float64  `json:"flightTimeHours"`
	Highlights       []string `json:"highlights"`
	Types            []string `json:"types"`
	Featured         bool     `json:"featured"`
}

// Filter narrows a catalog listing. Zero values mean "no constraint";
// FeaturedSet distinguishes "featured=false" from "not filtered".
type Filter struct {
	Region      string
	Query       string
	Types       []string
	Featured    bool
	FeaturedSet bool
}

// Catalog is the in-memory destination dataset.
type Catalog struct {
	destinations []Destination
}

// NewCatalog returns a catalog seeded with the standard dataset.
func NewCatalog() *Catalog {
	return &Catalog{destinations: seed()}
}

// List returns destinations matching filter, in catalog order.
func (c *Catalog) List(filter Filter) []Destination {
	result := make([]Destination, 0, len(c.destinations))
	for _, d := range c.destinations {
		if matches(d, filter) {
			result = append(result, d)
		}
	}
	return result
}

// Get returns the destination with the given slug.
func (c *Catalog) Get(slug string) (Destination, bool) {
	for _, d := range c.destinations {
		if d.Slug == slug {
			return d, true
		}
	}
	return Destination{}, false
}

// Featured returns up to limit featured destinations.
func (c *Catalog) Featured(limit int) []Destination {
	result := make([]Destination, 0, limit)
	for _, d := range c.destinations {
		if !d.Featured {
			continue
		}
		result = append(result, d)
		if len(result) == limit {
			break
		}
	}
	return result
}

// Related returns up to limit destinations sharing a region with slug,
// excluding the destination itself.
func (c *Catalog) Related(slug string, limit int) []Destination {
	origin, ok := c.Get(slug)
	if !ok {
		return nil
	}

	result := make([]Destination, 0, limit)
	for _, d := range c.destinations {
		if d.Slug == slug || d.Region != origin.Region {
			continue
		}
		result = append(result, d)
		if len(result) == limit {
			break
		}
	}
	return result
}

func matches(d Destination, filter Filter) bool {
	if filter.Region != "" && !strings.EqualFold(d.Region, filter.Region) {
		return false
	}

	if filter.FeaturedSet && d.Featured != filter.Featured {
		return false
	}

	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.Country), q) &&
			!strings.Contains(d.Slug, q) {
			return false
		}
	}

	if len(filter.Types) > 0 && !overlaps(d.Types, filter.Types) {
		return false
	}

	return true
}

func overlaps(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

// Flight times are measured from the New York area.
func seed() []Destination {
	return []Destination{
		{
			Slug:             "cancun-mexico",
			Name:             "Cancun",
			Country:          "Mexico",
			Region:           "caribbean",
			Continent:        "North America",
			Climate:          "tropical",
			ShortDescription: "White-sand beaches and turquoise water on the Yucatan coast, with all-inclusive resorts for every budget.",
			FlightTimeHours:  3.5,
			Highlights:       []string{"Hotel Zone beaches", "Chichen Itza day trips", "Isla Mujeres ferries"},
			Types:            []string{"beach", "resort", "family"},
			Featured:         true,
		},
		{
			Slug:             "nassau-bahamas",
			Name:             "Nassau",
			Country:          "Bahamas",
			Region:           "caribbean",
			Continent:        "North America",
			Climate:          "tropical",
			ShortDescription: "Short-haul island escape with powder beaches, straw markets, and easy cruise connections.",
			FlightTimeHours:  2.5,
			Highlights:       []string{"Cable Beach", "Atlantis water park", "Blue Lagoon Island"},
			Types:            []string{"beach", "cruise", "family"},
			Featured:         true,
		},
		{
			Slug:             "aruba",
			Name:             "Aruba",
			Country:          "Aruba",
			Region:           "caribbean",
			Continent:        "North America",
			Climate:          "arid tropical",
			ShortDescription: "One happy island outside the hurricane belt, with constant trade winds and reliable sunshine.",
			FlightTimeHours:  4.5,
			Highlights:       []string{"Eagle Beach", "Arikok National Park", "California Lighthouse"},
			Types:            []string{"beach", "resort"},
			Featured:         true,
		},
		{
			Slug:             "montego-bay-jamaica",
			Name:             "Montego Bay",
			Country:          "Jamaica",
			Region:           "caribbean",
			Continent:        "North America",
			Climate:          "tropical",
			ShortDescription: "Reggae, jerk cooking, and resort strips along Jamaica's famous northern coastline.",
			FlightTimeHours:  3.8,
			Highlights:       []string{"Doctor's Cave Beach", "Rose Hall Great House", "Martha Brae rafting"},
			Types:            []string{"beach", "resort", "adventure"},
			Featured:         false,
		},
		{
			Slug:             "hamilton-bermuda",
			Name:             "Hamilton",
			Country:          "Bermuda",
			Region:           "atlantic",
			Continent:        "North America",
			Climate:          "subtropical",
			ShortDescription: "Pink-sand beaches and pastel colonial streets just two hours off the US East Coast.",
			FlightTimeHours:  2,
			Highlights:       []string{"Horseshoe Bay", "Royal Naval Dockyard", "Crystal Caves"},
			Types:            []string{"beach", "cruise"},
			Featured:         true,
		},
		{
			Slug:             "honolulu-hawaii",
			Name:             "Honolulu",
			Country:          "United States",
			Region:           "pacific",
			Continent:        "North America",
			Climate:          "tropical",
			ShortDescription: "Waikiki surf, Pearl Harbor history, and volcanic hikes on the island of Oahu.",
			FlightTimeHours:  11,
			Highlights:       []string{"Waikiki Beach", "Diamond Head crater", "North Shore surf towns"},
			Types:            []string{"beach", "adventure", "family"},
			Featured:         true,
		},
		{
			Slug:             "maui-hawaii",
			Name:             "Maui",
			Country:          "United States",
			Region:           "pacific",
			Continent:        "North America",
			Climate:          "tropical",
			ShortDescription: "The Road to Hana, Haleakala sunrises, and winter whale watching across the Auau Channel.",
			FlightTimeHours:  11.5,
			Highlights:       []string{"Road to Hana", "Haleakala National Park", "Kaanapali Beach"},
			Types:            []string{"beach", "adventure", "honeymoon"},
			Featured:         false,
		},
		{
			Slug:             "rome-italy",
			Name:             "Rome",
			Country:          "Italy",
			Region:           "mediterranean",
			Continent:        "Europe",
			Climate:          "mediterranean",
			ShortDescription: "The Eternal City layers ancient ruins, Renaissance art, and trattoria dining in one walkable capital.",
			FlightTimeHours:  9,
			Highlights:       []string{"Colosseum", "Vatican Museums", "Trastevere evenings"},
			Types:            []string{"city", "culture", "food"},
			Featured:         true,
		},
		{
			Slug:             "santorini-greece",
			Name:             "Santorini",
			Country:          "Greece",
			Region:           "mediterranean",
			Continent:        "Europe",
			Climate:          "mediterranean",
			ShortDescription: "Caldera sunsets, whitewashed cliff villages, and volcanic beaches in the southern Aegean.",
			FlightTimeHours:  10.5,
			Highlights:       []string{"Oia sunset", "Red Beach", "Akrotiri ruins"},
			Types:            []string{"island", "honeymoon", "culture"},
			Featured:         true,
		},
		{
			Slug:             "barcelona-spain",
			Name:             "Barcelona",
			Country:          "Spain",
			Region:           "mediterranean",
			Continent:        "Europe",
			Climate:          "mediterranean",
			ShortDescription: "Gaudi architecture, Gothic Quarter lanes, and city beaches on Spain's Catalan coast.",
			FlightTimeHours:  7.5,
			Highlights:       []string{"Sagrada Familia", "Park Guell", "La Boqueria market"},
			Types:            []string{"city", "culture", "beach"},
			Featured:         false,
		},
		{
			Slug:             "punta-cana",
			Name:             "Punta Cana",
			Country:          "Dominican Republic",
			Region:           "caribbean",
			Continent:        "North America",
			Climate:          "tropical",
			ShortDescription: "Thirty kilometers of coconut-palm coastline with the Caribbean's largest all-inclusive selection.",
			FlightTimeHours:  3.7,
			Highlights:       []string{"Bavaro Beach", "Saona Island catamarans", "Hoyo Azul cenote"},
			Types:            []string{"beach", "resort", "family"},
			Featured:         false,
		},
		{
			Slug:             "st-lucia",
			Name:             "Saint Lucia",
			Country:          "Saint Lucia",
			Region:           "caribbean",
			Continent:        "North America",
			Climate:          "tropical",
			ShortDescription: "The twin Piton peaks rise straight from the sea on the Caribbean's most dramatic honeymoon island.",
			FlightTimeHours:  4.5,
			Highlights:       []string{"The Pitons", "Sulphur Springs", "Marigot Bay"},
			Types:            []string{"island", "honeymoon", "adventure"},
			Featured:         false,
		},
	}
}
