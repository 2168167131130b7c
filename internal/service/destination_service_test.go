package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/cache"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
)

type stubWeather struct {
	calls int
	err   error
}

func (s *stubWeather) Current(_ context.Context, lat, lon float64) (*domain.Weather, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Weather{Temperature: 31.5, Condition: "Clouds", Description: "scattered clouds", Humidity: 70}, nil
}

type stubPlaces struct {
	calls int
	err   error
}

func (s *stubPlaces) Nearby(_ context.Context, lat, lon float64) ([]domain.Attraction, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Attraction{{XID: "N1", Name: "People's Park", Latitude: lat, Longitude: lon}}, nil
}

type stubCountry struct {
	calls int
	name  string
	err   error
}

func (s *stubCountry) Lookup(_ context.Context, name string) (*domain.CountryInfo, error) {
	s.calls++
	s.name = name
	if s.err != nil {
		return nil, s.err
	}
	info := domain.DefaultCountryInfo()
	info.Population = 109581085
	return &info, nil
}

type destinationFixture struct {
	svc          *DestinationService
	destinations *memoryDestinationRepository
	reviews      *memoryReviewRepository
	weather      *stubWeather
	places       *stubPlaces
	country      *stubCountry
	davao        *domain.Destination
}

func newDestinationFixture() *destinationFixture {
	destRepo, davao := newDestinationRepoWithDavao()
	cdo := domain.Destination{ID: uuid.New(), Name: "Cagayan de Oro", Slug: "cagayan-de-oro", Region: "Northern Mindanao"}
	iligan := domain.Destination{ID: uuid.New(), Name: "Iligan City", Slug: "iligan-city", Region: "Northern Mindanao"}
	destRepo.items[cdo.ID] = &cdo
	destRepo.items[iligan.ID] = &iligan

	f := &destinationFixture{
		destinations: destRepo,
		reviews:      newMemoryReviewRepository(),
		weather:      &stubWeather{},
		places:       &stubPlaces{},
		country:      &stubCountry{},
		davao:        davao,
	}
	facade := cache.NewFacade(cache.NewMemoryStore(), zerolog.Nop())
	f.svc = NewDestinationService(destRepo, f.reviews, nil, facade, cache.TTLs{}, DestinationProviders{
		Weather: f.weather,
		Places:  f.places,
		Country: f.country,
	})
	return f
}

func TestDestinationService_ListIsCached(t *testing.T) {
	f := newDestinationFixture()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		list, err := f.svc.List(ctx)
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if len(list) != 3 {
			t.Fatalf("expected 3 destinations, got %d", len(list))
		}
	}
	if f.destinations.listCalls != 1 {
		t.Fatalf("expected a single store read, got %d", f.destinations.listCalls)
	}

	f.svc.InvalidateList(ctx)
	if _, err := f.svc.List(ctx); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if f.destinations.listCalls != 2 {
		t.Fatalf("expected reload after invalidation, got %d reads", f.destinations.listCalls)
	}
}

func TestDestinationService_ListSurfacesStoreErrors(t *testing.T) {
	f := newDestinationFixture()
	f.destinations.listErr = errors.New("db down")

	if _, err := f.svc.List(context.Background()); err == nil {
		t.Fatalf("expected store error")
	}
	f.destinations.listErr = nil
	if _, err := f.svc.List(context.Background()); err != nil {
		t.Fatalf("expected recovery once the store is back, got %v", err)
	}
}

func TestDestinationService_FindBySlug(t *testing.T) {
	f := newDestinationFixture()

	got, err := f.svc.FindBySlug(context.Background(), "davao-city")
	if err != nil || got.ID != f.davao.ID {
		t.Fatalf("expected davao, got %v (%v)", got, err)
	}
	if _, err := f.svc.FindBySlug(context.Background(), "atlantis"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDestinationService_Search(t *testing.T) {
	f := newDestinationFixture()
	ctx := context.Background()

	for _, q := range []string{"", " ", "d", "  x  "} {
		result, err := f.svc.Search(ctx, q, 0)
		if err != nil {
			t.Fatalf("Search(%q) returned error: %v", q, err)
		}
		if len(result) != 0 {
			t.Fatalf("expected empty result for %q", q)
		}
	}
	if f.destinations.searchCalls != 0 {
		t.Fatalf("expected short queries to skip the store, got %d calls", f.destinations.searchCalls)
	}

	result, err := f.svc.Search(ctx, "NORTHERN", 0)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected region match for both northern cities, got %d", len(result))
	}
	result, err = f.svc.Search(ctx, "dav", 1)
	if err != nil || len(result) != 1 || result[0].Slug != "davao-city" {
		t.Fatalf("expected davao by name, got %v (%v)", result, err)
	}
}

func TestDestinationService_Details(t *testing.T) {
	f := newDestinationFixture()
	ctx := context.Background()
	seedRatings(t, f.reviews, f.davao.ID, 5, 5, 4, 3)

	details, err := f.svc.Details(ctx, "davao-city")
	if err != nil {
		t.Fatalf("Details returned error: %v", err)
	}
	if details.Stats.AverageRating != 4.25 || details.Destination.ReviewCount != 4 {
		t.Fatalf("unexpected stats: %+v", details.Stats)
	}
	if len(details.Reviews) != 4 {
		t.Fatalf("expected 4 reviews, got %d", len(details.Reviews))
	}
	if details.Weather == nil || details.Weather.Condition != "Clouds" {
		t.Fatalf("expected weather, got %+v", details.Weather)
	}
	if len(details.Attractions) != 1 {
		t.Fatalf("expected one attraction, got %d", len(details.Attractions))
	}

	if _, err := f.svc.Details(ctx, "davao-city"); err != nil {
		t.Fatalf("Details returned error: %v", err)
	}
	if f.weather.calls != 1 || f.places.calls != 1 {
		t.Fatalf("expected providers to be cached, got weather=%d places=%d", f.weather.calls, f.places.calls)
	}
}

func TestDestinationService_DetailsProviderFailure(t *testing.T) {
	f := newDestinationFixture()
	ctx := context.Background()
	f.weather.err = errors.New("timeout")
	f.places.err = errors.New("timeout")

	details, err := f.svc.Details(ctx, "davao-city")
	if err != nil {
		t.Fatalf("provider failure must not fail details: %v", err)
	}
	if details.Weather != nil || details.Attractions == nil || len(details.Attractions) != 0 {
		t.Fatalf("expected empty external sections, got %+v / %+v", details.Weather, details.Attractions)
	}

	// Failures are not cached.
	f.weather.err = nil
	details, err = f.svc.Details(ctx, "davao-city")
	if err != nil {
		t.Fatalf("Details returned error: %v", err)
	}
	if details.Weather == nil || f.weather.calls != 2 {
		t.Fatalf("expected weather to be fetched again, calls=%d", f.weather.calls)
	}

	// No coordinates means no provider calls at all.
	if _, err := f.svc.Details(ctx, "iligan-city"); err != nil {
		t.Fatalf("Details returned error: %v", err)
	}
	if f.weather.calls != 2 {
		t.Fatalf("expected no weather call without coordinates")
	}
}

func TestDestinationService_RegionalStats(t *testing.T) {
	f := newDestinationFixture()

	stats, err := f.svc.RegionalStats(context.Background())
	if err != nil {
		t.Fatalf("RegionalStats returned error: %v", err)
	}
	if stats.TotalDestinations != 3 || stats.TotalRegions != 2 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.Regions[0].Region != "Northern Mindanao" || stats.Regions[0].Count != 2 {
		t.Fatalf("expected busiest region first, got %+v", stats.Regions)
	}
}

func TestDestinationService_CountryInfo(t *testing.T) {
	f := newDestinationFixture()
	ctx := context.Background()

	f.country.err = errors.New("restcountries down")
	info := f.svc.CountryInfo(ctx)
	if info.Name != "Philippines" || info.Capital != "Manila" || info.Population != 0 {
		t.Fatalf("expected defaults, got %+v", info)
	}

	f.country.err = nil
	info = f.svc.CountryInfo(ctx)
	if info.Population != 109581085 {
		t.Fatalf("expected upstream data after recovery, got %+v", info)
	}
	f.svc.CountryInfo(ctx)
	if f.country.calls != 2 {
		t.Fatalf("expected defaults not to be cached and success to be cached, got %d calls", f.country.calls)
	}
	if f.country.name != "Philippines" {
		t.Fatalf("expected default country name, got %q", f.country.name)
	}
}

func TestDestinationService_CulturalInfo(t *testing.T) {
	f := newDestinationFixture()

	info := f.svc.CulturalInfo(context.Background())
	if len(info.Tribes) != 4 || len(info.Festivals) != 3 || len(info.Cuisines) != 3 {
		t.Fatalf("unexpected cultural info: %+v", info)
	}
	if info.Festivals[2].Name != "Kadayawan Festival" {
		t.Fatalf("unexpected festival order: %+v", info.Festivals)
	}
}
