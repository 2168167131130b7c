package cache

import (
	"strings"

	"github.com/google/uuid"
)

const (
	KeyDestinations  = "destinations"
	KeyRegionalStats = "regional_stats"
	KeyCulturalInfo  = "cultural_info"
)

func WeatherKey(destinationID uuid.UUID) string {
	return "weather:" + destinationID.String()
}

func AttractionsKey(destinationID uuid.UUID) string {
	return "attractions:" + destinationID.String()
}

func CountryInfoKey(country string) string {
	return "country_info:" + strings.ToLower(strings.TrimSpace(country))
}
