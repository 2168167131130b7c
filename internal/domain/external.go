package domain

type Weather struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon,omitempty"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

type Attraction struct {
	XID       string   `json:"xid"`
	Name      string   `json:"name"`
	Kinds     []string `json:"kinds"`
	Distance  float64  `json:"distance_m"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
}

type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

type CountryInfo struct {
	Name         string     `json:"name"`
	OfficialName string     `json:"official_name"`
	Capital      string     `json:"capital"`
	Region       string     `json:"region"`
	Subregion    string     `json:"subregion"`
	Population   int64      `json:"population"`
	Area         float64    `json:"area"`
	FlagURL      string     `json:"flag"`
	Languages    []string   `json:"languages"`
	Currencies   []Currency `json:"currencies"`
}

// DefaultCountryInfo is what callers see when the country provider has nothing.
func DefaultCountryInfo() CountryInfo {
	return CountryInfo{
		Name:         "Philippines",
		OfficialName: "Republic of the Philippines",
		Capital:      "Manila",
		Region:       "Asia",
		Subregion:    "Southeast Asia",
		Languages:    []string{},
		Currencies:   []Currency{},
	}
}

type Tribe struct {
	Name        string `json:"name"`
	Region      string `json:"region"`
	Description string `json:"description"`
	Population  string `json:"population"`
}

type Festival struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Month       string `json:"month"`
	Description string `json:"description"`
}

type Cuisine struct {
	Name        string `json:"name"`
	Region      string `json:"region"`
	Description string `json:"description"`
}

type CulturalInfo struct {
	Tribes    []Tribe    `json:"tribes"`
	Festivals []Festival `json:"festivals"`
	Cuisines  []Cuisine  `json:"cuisines"`
}
