package external

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherClientCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "7.0731", q.Get("lat"))
		assert.Equal(t, "125.6127", q.Get("lon"))
		assert.Equal(t, "key", q.Get("appid"))
		assert.Equal(t, "metric", q.Get("units"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"weather":[{"main":"Clouds","description":"scattered clouds","icon":"03d"}],
			"main":{"temp":30.2,"feels_like":34.1,"humidity":70},
			"wind":{"speed":3.6}
		}`))
	}))
	defer srv.Close()

	client := NewWeatherClient(srv.Client(), srv.URL, "key")
	weather, err := client.Current(context.Background(), 7.0731, 125.6127)
	require.NoError(t, err)

	assert.Equal(t, 30.2, weather.Temperature)
	assert.Equal(t, "Clouds", weather.Condition)
	assert.Equal(t, "scattered clouds", weather.Description)
	assert.Equal(t, 70, weather.Humidity)
	assert.Equal(t, 3.6, weather.WindSpeed)
}

func TestWeatherClientNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewWeatherClient(srv.Client(), srv.URL, "bad").Current(context.Background(), 1, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamStatus))
}

func TestWeatherClientRequiresKey(t *testing.T) {
	_, err := NewWeatherClient(http.DefaultClient, "", "").Current(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestPlacesClientNearbyKeepsFirstFive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "10000", q.Get("radius"))
		assert.Equal(t, "interesting_places,museums,parks,restaurants", q.Get("kinds"))
		_, _ = w.Write([]byte(`{"features":[
			{"geometry":{"coordinates":[125.61,7.07]},"properties":{"xid":"a","name":"People's Park","kinds":"parks,urban_environment","dist":120.5}},
			{"geometry":{"coordinates":[125.62,7.08]},"properties":{"xid":"b","name":"Museo Dabawenyo","kinds":"museums","dist":300}},
			{"properties":{"xid":"c","name":"C"}},
			{"properties":{"xid":"d","name":"D"}},
			{"properties":{"xid":"e","name":"E"}},
			{"properties":{"xid":"f","name":"F"}},
			{"properties":{"xid":"g","name":"G"}}
		]}`))
	}))
	defer srv.Close()

	places, err := NewPlacesClient(srv.Client(), srv.URL, "key").Nearby(context.Background(), 7.07, 125.61)
	require.NoError(t, err)
	require.Len(t, places, MaxNearbyPlaces)

	assert.Equal(t, "People's Park", places[0].Name)
	assert.Equal(t, []string{"parks", "urban_environment"}, places[0].Kinds)
	assert.Equal(t, 7.07, places[0].Latitude)
	assert.Equal(t, 125.61, places[0].Longitude)
	assert.Equal(t, "e", places[4].XID)
}

func TestCountryClientLookupFillsDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3.1/name/Philippines", r.URL.Path)
		_, _ = w.Write([]byte(`[{
			"name":{"common":"Philippines"},
			"capital":[],
			"region":"Asia",
			"population":109581085,
			"area":342353,
			"languages":{"fil":"Filipino","eng":"English"},
			"currencies":{"PHP":{"name":"Philippine peso","symbol":"₱"}},
			"flags":{"svg":"https://flagcdn.com/ph.svg"}
		}]`))
	}))
	defer srv.Close()

	info, err := NewCountryClient(srv.Client(), srv.URL).Lookup(context.Background(), "Philippines")
	require.NoError(t, err)

	assert.Equal(t, "Philippines", info.Name)
	assert.Equal(t, "Republic of the Philippines", info.OfficialName)
	assert.Equal(t, "Manila", info.Capital)
	assert.Equal(t, "Southeast Asia", info.Subregion)
	assert.Equal(t, int64(109581085), info.Population)
	assert.Equal(t, "https://flagcdn.com/ph.svg", info.FlagURL)
	assert.Equal(t, []string{"English", "Filipino"}, info.Languages)
	require.Len(t, info.Currencies, 1)
	assert.Equal(t, "PHP", info.Currencies[0].Code)
}

func TestCountryClientEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := NewCountryClient(srv.Client(), srv.URL).Lookup(context.Background(), "Atlantis")
	assert.Error(t, err)
}

func TestClientTimeoutSurfacesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewWeatherClient(NewHTTPClient(20*time.Millisecond), srv.URL, "key")
	_, err := client.Current(context.Background(), 1, 2)
	assert.Error(t, err)
}
