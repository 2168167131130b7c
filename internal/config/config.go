package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/cache"
)

type Config struct {
	Port            string
	DatabaseURL     string
	JWTSecret       string
	SessionTTL      time.Duration
	GoogleAudience  string
	AllowOrigins    []string
	LogLevel        string
	LogstashTCPAddr string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MinIOEndpoint      string
	MinIOAccessKey     string
	MinIOSecretKey     string
	MinIOUseSSL        bool
	MinIOBucketDiaries string
	MinIOPublicURL     string

	OpenWeatherAPIKey    string
	OpenWeatherBaseURL   string
	OpenTripMapAPIKey    string
	OpenTripMapBaseURL   string
	RestCountriesBaseURL string
	CountryName          string
	ExternalHTTPTimeout  time.Duration

	CacheTTLs cache.TTLs

	DiaryPhotoMaxBytes int64
	DiaryMaxPhotos     int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg(".env file not found")
	}

	return Config{
		Port:            getenv("PORT", "8080"),
		DatabaseURL:     must("DATABASE_URL"),
		JWTSecret:       must("JWT_SECRET"),
		SessionTTL:      getDuration("SESSION_TTL", 24*time.Hour),
		GoogleAudience:  getenv("GOOGLE_AUDIENCE", ""),
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),

		MinIOEndpoint:      getenv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:     getenv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:     getenv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:        getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketDiaries: getenv("MINIO_BUCKET_DIARIES", "mindanao-diaries"),
		MinIOPublicURL:     getenv("MINIO_PUBLIC_URL", ""),

		OpenWeatherAPIKey:    getenv("OPENWEATHER_API_KEY", ""),
		OpenWeatherBaseURL:   getenv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org"),
		OpenTripMapAPIKey:    getenv("OPENTRIPMAP_API_KEY", ""),
		OpenTripMapBaseURL:   getenv("OPENTRIPMAP_BASE_URL", "https://api.opentripmap.com"),
		RestCountriesBaseURL: getenv("RESTCOUNTRIES_BASE_URL", "https://restcountries.com"),
		CountryName:          getenv("COUNTRY_NAME", "Philippines"),
		ExternalHTTPTimeout:  getDuration("EXTERNAL_HTTP_TIMEOUT", 10*time.Second),

		CacheTTLs: loadCacheTTLs(),

		DiaryPhotoMaxBytes: getInt64("DIARY_PHOTO_MAX_BYTES", 5*1024*1024),
		DiaryMaxPhotos:     getInt("DIARY_MAX_PHOTOS", 10),
	}
}

func loadCacheTTLs() cache.TTLs {
	def := cache.DefaultTTLs()
	return cache.TTLs{
		Weather:       getDuration("CACHE_TTL_WEATHER", def.Weather),
		Attractions:   getDuration("CACHE_TTL_ATTRACTIONS", def.Attractions),
		Destinations:  getDuration("CACHE_TTL_DESTINATIONS", def.Destinations),
		CountryInfo:   getDuration("CACHE_TTL_COUNTRY_INFO", def.CountryInfo),
		RegionalStats: getDuration("CACHE_TTL_REGIONAL_STATS", def.RegionalStats),
		CulturalInfo:  getDuration("CACHE_TTL_CULTURAL_INFO", def.CulturalInfo),
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// getDuration falls back to d when the value is missing, malformed or not positive.
func getDuration(k string, d time.Duration) time.Duration {
	v, err := time.ParseDuration(getenv(k, ""))
	if err != nil || v <= 0 {
		return d
	}
	return v
}

func getInt(k string, d int) int {
	v, err := strconv.Atoi(getenv(k, ""))
	if err != nil || v < 0 {
		return d
	}
	return v
}

func getInt64(k string, d int64) int64 {
	v, err := strconv.ParseInt(getenv(k, ""), 10, 64)
	if err != nil || v <= 0 {
		return d
	}
	return v
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
