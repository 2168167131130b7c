package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/cache"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/config"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/external"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/logging"
	miniorepo "github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/minio"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/ports"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/postgres"
	redisrepo "github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/redis"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/service"
	httptransport "github.com/njprem/Mindanao_travel_APP_BackEnd/internal/transport/http"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/util"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger, closer := logging.New(cfg.LogLevel, cfg.LogstashTCPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error().Err(err).Msg("server stopped")
	}
	_ = closer.Close()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	facade := cache.NewFacade(newCacheStore(ctx, cfg, logger), logger)
	storage := newObjectStorage(ctx, cfg, logger)

	users := postgres.NewUserRepo(db)
	sessions := postgres.NewSessionRepo(db)
	destinationRepo := postgres.NewDestinationRepo(db)
	reviewRepo := postgres.NewReviewRepo(db)
	wishlistRepo := postgres.NewWishlistRepo(db)
	diaryRepo := postgres.NewDiaryRepo(db)

	jwt := util.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)
	ratings := service.NewRatingService(reviewRepo)
	reviews := service.NewReviewService(reviewRepo, destinationRepo, ratings)
	destinations := service.NewDestinationService(destinationRepo, reviewRepo, ratings, facade, cfg.CacheTTLs, newProviders(cfg))
	reviews.OnRatingsChanged(destinations.InvalidateList)
	auth := service.NewAuthService(users, sessions, jwt, cfg.GoogleAudience)
	auth.OnAccountDeleted(destinations.InvalidateList)

	services := httptransport.Services{
		Auth:         auth,
		Destinations: destinations,
		Reviews:      reviews,
		Wishlist:     service.NewWishlistService(wishlistRepo, destinationRepo),
		Diaries: service.NewDiaryService(diaryRepo, destinationRepo, storage, logger, service.DiaryServiceConfig{
			Bucket:        cfg.MinIOBucketDiaries,
			MaxPhotos:     cfg.DiaryMaxPhotos,
			MaxPhotoBytes: cfg.DiaryPhotoMaxBytes,
		}),
		Dashboard: service.NewDashboardService(diaryRepo, wishlistRepo, reviewRepo),
	}

	e := httptransport.NewRouter(cfg.AllowOrigins, logger)
	httptransport.RegisterRoutes(e, services)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("starting api server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}

// newCacheStore prefers Redis and falls back to process memory when Redis is
// not configured or unreachable at startup.
func newCacheStore(ctx context.Context, cfg config.Config, logger zerolog.Logger) cache.Store {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		logger.Info().Msg("REDIS_ADDR not set, using in-memory cache")
		return cache.NewMemoryStore()
	}
	store := redisrepo.NewCache(redisrepo.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB), "mindanao:")
	if err := store.Ping(ctx); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, using in-memory cache")
		return cache.NewMemoryStore()
	}
	return store
}

func newObjectStorage(ctx context.Context, cfg config.Config, logger zerolog.Logger) ports.ObjectStorage {
	if strings.TrimSpace(cfg.MinIOEndpoint) == "" {
		logger.Warn().Msg("MINIO_ENDPOINT not set, diary photo uploads are disabled")
		return nil
	}
	client, err := miniorepo.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
	if err != nil {
		logger.Warn().Err(err).Msg("minio client init failed, diary photo uploads are disabled")
		return nil
	}
	storage := miniorepo.NewStorage(client, cfg.MinIOPublicURL, cfg.MinIOUseSSL)
	if err := storage.EnsureBucket(ctx, cfg.MinIOBucketDiaries); err != nil {
		logger.Warn().Err(err).Str("bucket", cfg.MinIOBucketDiaries).Msg("unable to ensure diary bucket")
	}
	return storage
}

func newProviders(cfg config.Config) service.DestinationProviders {
	client := external.NewHTTPClient(cfg.ExternalHTTPTimeout)
	providers := service.DestinationProviders{
		Country:     external.NewCountryClient(client, cfg.RestCountriesBaseURL),
		CountryName: cfg.CountryName,
	}
	if cfg.OpenWeatherAPIKey != "" {
		providers.Weather = external.NewWeatherClient(client, cfg.OpenWeatherBaseURL, cfg.OpenWeatherAPIKey)
	}
	if cfg.OpenTripMapAPIKey != "" {
		providers.Places = external.NewPlacesClient(client, cfg.OpenTripMapBaseURL, cfg.OpenTripMapAPIKey)
	}
	return providers
}
