package external

import (
	"context"
	"strconv"
	"strings"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
)

const (
	DefaultOpenTripMapBaseURL = "https://api.opentripmap.com"

	nearbyRadiusMeters = 10000
	nearbyKinds        = "interesting_places,museums,parks,restaurants"
	MaxNearbyPlaces    = 5
)

// PlacesClient lists points of interest around a coordinate via OpenTripMap.
type PlacesClient struct {
	http    HTTPClient
	baseURL string
	apiKey  string
}

func NewPlacesClient(client HTTPClient, baseURL, apiKey string) *PlacesClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultOpenTripMapBaseURL
	}
	return &PlacesClient{http: client, baseURL: baseURL, apiKey: strings.TrimSpace(apiKey)}
}

type openTripMapResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			XID   string  `json:"xid"`
			Name  string  `json:"name"`
			Kinds string  `json:"kinds"`
			Dist  float64 `json:"dist"`
		} `json:"properties"`
	} `json:"features"`
}

// Nearby returns at most MaxNearbyPlaces results in provider order.
func (c *PlacesClient) Nearby(ctx context.Context, lat, lon float64) ([]domain.Attraction, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}
	query := map[string][]string{
		"radius": {strconv.Itoa(nearbyRadiusMeters)},
		"lat":    {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(lon, 'f', -1, 64)},
		"kinds":  {nearbyKinds},
		"format": {"geojson"},
		"apikey": {c.apiKey},
	}

	var payload openTripMapResponse
	if err := getJSON(ctx, c.http, joinURL(c.baseURL, "/0.2/en/places/radius"), query, &payload); err != nil {
		return nil, err
	}

	places := make([]domain.Attraction, 0, MaxNearbyPlaces)
	for _, feature := range payload.Features {
		if len(places) == MaxNearbyPlaces {
			break
		}
		place := domain.Attraction{
			XID:      feature.Properties.XID,
			Name:     feature.Properties.Name,
			Kinds:    splitKinds(feature.Properties.Kinds),
			Distance: feature.Properties.Dist,
		}
		// GeoJSON order is lon, lat.
		if coords := feature.Geometry.Coordinates; len(coords) >= 2 {
			place.Longitude = coords[0]
			place.Latitude = coords[1]
		}
		places = append(places, place)
	}
	return places, nil
}

func splitKinds(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
