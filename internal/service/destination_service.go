package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/cache"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/ports"
)

const (
	minSearchQueryLength = 2
	defaultSearchLimit   = 10
	maxSearchLimit       = 50
	detailsReviewLimit   = 10
	defaultCountryName   = "Philippines"
)

var errEmptyUpstream = errors.New("upstream returned no data")

type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (*domain.Weather, error)
}

type PlacesProvider interface {
	Nearby(ctx context.Context, lat, lon float64) ([]domain.Attraction, error)
}

type CountryProvider interface {
	Lookup(ctx context.Context, name string) (*domain.CountryInfo, error)
}

// DestinationProviders groups the optional third-party lookups. Any of them
// may be nil, in which case the matching section is left empty.
type DestinationProviders struct {
	Weather     WeatherProvider
	Places      PlacesProvider
	Country     CountryProvider
	CountryName string
}

type DestinationService struct {
	destinations ports.DestinationRepository
	reviews      ports.ReviewRepository
	ratings      *RatingService
	cache        *cache.Facade
	ttl          cache.TTLs
	providers    DestinationProviders
}

func NewDestinationService(
	destinations ports.DestinationRepository,
	reviews ports.ReviewRepository,
	ratings *RatingService,
	facade *cache.Facade,
	ttl cache.TTLs,
	providers DestinationProviders,
) *DestinationService {
	if ratings == nil {
		ratings = NewRatingService(reviews)
	}
	if strings.TrimSpace(providers.CountryName) == "" {
		providers.CountryName = defaultCountryName
	}
	return &DestinationService{
		destinations: destinations,
		reviews:      reviews,
		ratings:      ratings,
		cache:        facade,
		ttl:          ttl.WithDefaults(),
		providers:    providers,
	}
}

// List returns every destination with its rating summary.
func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	if list, ok := cache.RememberFor(ctx, s.cache, cache.KeyDestinations, s.ttl.Destinations, s.destinations.List); ok {
		return list, nil
	}
	// The facade swallowed the failure; ask the store again so the caller sees it.
	return s.destinations.List(ctx)
}

func (s *DestinationService) FindBySlug(ctx context.Context, slug string) (*domain.Destination, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrDestinationNotFound
	}
	destination, err := s.destinations.FindBySlug(ctx, slug)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return destination, nil
}

// Search matches name or region, case-insensitively. Queries shorter than two
// characters return nothing without hitting the store.
func (s *DestinationService) Search(ctx context.Context, query string, limit int) ([]domain.Destination, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchQueryLength {
		return []domain.Destination{}, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	return s.destinations.Search(ctx, query, limit)
}

// Details assembles the destination page. Weather and attractions are best
// effort and come back empty when the providers fail.
func (s *DestinationService) Details(ctx context.Context, slug string) (*domain.DestinationDetails, error) {
	destination, err := s.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	stats, err := s.ratings.Stats(ctx, destination.ID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListByDestination(ctx, destination.ID, detailsReviewLimit, 0)
	if err != nil {
		return nil, err
	}
	destination.AverageRating = stats.AverageRating
	destination.ReviewCount = stats.TotalReviews

	return &domain.DestinationDetails{
		Destination: *destination,
		Stats:       *stats,
		Reviews:     reviews,
		Weather:     s.weather(ctx, destination),
		Attractions: s.attractions(ctx, destination),
	}, nil
}

func (s *DestinationService) RegionalStats(ctx context.Context) (*domain.RegionalStats, error) {
	if stats, ok := cache.RememberFor(ctx, s.cache, cache.KeyRegionalStats, s.ttl.RegionalStats, s.loadRegionalStats); ok {
		return stats, nil
	}
	return s.loadRegionalStats(ctx)
}

// CountryInfo never fails. Provider errors yield the built-in defaults, which
// are not cached so the next call retries upstream.
func (s *DestinationService) CountryInfo(ctx context.Context) *domain.CountryInfo {
	if s.providers.Country == nil {
		return defaultCountryInfo()
	}
	name := s.providers.CountryName
	info, ok := cache.RememberFor(ctx, s.cache, cache.CountryInfoKey(name), s.ttl.CountryInfo, func(ctx context.Context) (*domain.CountryInfo, error) {
		info, err := s.providers.Country.Lookup(ctx, name)
		if err != nil {
			return nil, err
		}
		if info == nil {
			return nil, errEmptyUpstream
		}
		return info, nil
	})
	if !ok {
		return defaultCountryInfo()
	}
	return info
}

func (s *DestinationService) CulturalInfo(ctx context.Context) *domain.CulturalInfo {
	info, ok := cache.RememberFor(ctx, s.cache, cache.KeyCulturalInfo, s.ttl.CulturalInfo, func(context.Context) (*domain.CulturalInfo, error) {
		return mindanaoCulture(), nil
	})
	if !ok {
		return mindanaoCulture()
	}
	return info
}

func (s *DestinationService) loadRegionalStats(ctx context.Context) (*domain.RegionalStats, error) {
	regions, err := s.destinations.RegionCounts(ctx)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, region := range regions {
		total += region.Count
	}
	return &domain.RegionalStats{
		TotalDestinations: total,
		TotalRegions:      len(regions),
		Regions:           regions,
	}, nil
}

func (s *DestinationService) weather(ctx context.Context, destination *domain.Destination) *domain.Weather {
	if s.providers.Weather == nil || !destination.HasCoordinates() {
		return nil
	}
	lat, lon := *destination.Latitude, *destination.Longitude
	weather, ok := cache.RememberFor(ctx, s.cache, cache.WeatherKey(destination.ID), s.ttl.Weather, func(ctx context.Context) (*domain.Weather, error) {
		weather, err := s.providers.Weather.Current(ctx, lat, lon)
		if err != nil {
			return nil, err
		}
		if weather == nil {
			return nil, errEmptyUpstream
		}
		return weather, nil
	})
	if !ok {
		return nil
	}
	return weather
}

func (s *DestinationService) attractions(ctx context.Context, destination *domain.Destination) []domain.Attraction {
	empty := []domain.Attraction{}
	if s.providers.Places == nil || !destination.HasCoordinates() {
		return empty
	}
	lat, lon := *destination.Latitude, *destination.Longitude
	places, ok := cache.RememberFor(ctx, s.cache, cache.AttractionsKey(destination.ID), s.ttl.Attractions, func(ctx context.Context) ([]domain.Attraction, error) {
		return s.providers.Places.Nearby(ctx, lat, lon)
	})
	if !ok || places == nil {
		return empty
	}
	return places
}

// InvalidateList drops the cached listing, whose entries embed rating summaries.
func (s *DestinationService) InvalidateList(ctx context.Context) {
	s.cache.Forget(ctx, cache.KeyDestinations)
}

func defaultCountryInfo() *domain.CountryInfo {
	info := domain.DefaultCountryInfo()
	return &info
}

func mindanaoCulture() *domain.CulturalInfo {
	return &domain.CulturalInfo{
		Tribes: []domain.Tribe{
			{Name: "Maranao", Region: "Lanao", Description: "Known for intricate weaving and brass work", Population: "1.8 million"},
			{Name: "Maguindanao", Region: "Maguindanao & Sultan Kudarat", Description: "Skilled craftsmen and farmers", Population: "1.5 million"},
			{Name: "Tausug", Region: "Sulu & Tawi-Tawi", Description: "Traditional boat builders and traders", Population: "700,000"},
			{Name: "Sama-Bajau", Region: "Coastal Areas", Description: "Sea nomads known for diving skills", Population: "800,000"},
		},
		Festivals: []domain.Festival{
			{Name: "Sinulog Festival", Location: "Cebu (nearby)", Month: "January", Description: "Colorful procession honoring Santo Niño"},
			{Name: "Mindanao State Fair", Location: "General Santos City", Month: "October", Description: "Celebrates Mindanao's culture and commerce"},
			{Name: "Kadayawan Festival", Location: "Davao City", Month: "August", Description: "Thanksgiving festival celebrating harvest"},
		},
		Cuisines: []domain.Cuisine{
			{Name: "Durian", Region: "Davao City", Description: "King of fruits - sweet, creamy, aromatic"},
			{Name: "Seafood", Region: "Coastal Areas", Description: "Fresh fish and shellfish specialties"},
			{Name: "Bicolano Dishes", Region: "Various", Description: "Pork adobo, sinigang, and local delicacies"},
		},
	}
}
