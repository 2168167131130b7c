package cache

import "time"

// TTLs holds the freshness window for every cached resource.
type TTLs struct {
	Weather       time.Duration
	Attractions   time.Duration
	Destinations  time.Duration
	CountryInfo   time.Duration
	RegionalStats time.Duration
	CulturalInfo  time.Duration
}

func DefaultTTLs() TTLs {
	return TTLs{
		Weather:       10 * time.Minute,
		Attractions:   time.Hour,
		Destinations:  time.Hour,
		CountryInfo:   time.Hour,
		RegionalStats: time.Hour,
		CulturalInfo:  24 * time.Hour,
	}
}

// WithDefaults fills zero or negative durations from DefaultTTLs.
func (t TTLs) WithDefaults() TTLs {
	def := DefaultTTLs()
	pick := func(v, fallback time.Duration) time.Duration {
		if v <= 0 {
			return fallback
		}
		return v
	}
	return TTLs{
		Weather:       pick(t.Weather, def.Weather),
		Attractions:   pick(t.Attractions, def.Attractions),
		Destinations:  pick(t.Destinations, def.Destinations),
		CountryInfo:   pick(t.CountryInfo, def.CountryInfo),
		RegionalStats: pick(t.RegionalStats, def.RegionalStats),
		CulturalInfo:  pick(t.CulturalInfo, def.CulturalInfo),
	}
}
