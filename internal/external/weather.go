package external

import (
	"context"
	"strconv"
	"strings"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
)

const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org"

// WeatherClient reads current conditions from OpenWeather.
type WeatherClient struct {
	http    HTTPClient
	baseURL string
	apiKey  string
}

func NewWeatherClient(client HTTPClient, baseURL, apiKey string) *WeatherClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}
	return &WeatherClient{http: client, baseURL: baseURL, apiKey: strings.TrimSpace(apiKey)}
}

type openWeatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (c *WeatherClient) Current(ctx context.Context, lat, lon float64) (*domain.Weather, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}
	query := map[string][]string{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"appid": {c.apiKey},
		"units": {"metric"},
	}

	var payload openWeatherResponse
	if err := getJSON(ctx, c.http, joinURL(c.baseURL, "/data/2.5/weather"), query, &payload); err != nil {
		return nil, err
	}

	weather := &domain.Weather{
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		weather.Condition = payload.Weather[0].Main
		weather.Description = payload.Weather[0].Description
		weather.Icon = payload.Weather[0].Icon
	}
	return weather, nil
}
