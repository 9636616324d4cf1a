package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"skysearch/internal/auth"
	"skysearch/internal/cache"
	"skysearch/internal/handler"
	"skysearch/internal/ratelimit"
	"skysearch/internal/skyapi"
	"skysearch/internal/suggest"
)

type Config struct {
	Port            string
	MockData        bool
	SkyAPIKey       string
	SkyAPIHost      string
	CacheEnabled    bool
	RedisHost       string
	RedisPort       string
	RedisTTL        time.Duration
	JWTSecret       string
	SessionTTL      time.Duration
	SuggestDebounce time.Duration
}

func main() {
	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	rateLimiter := ratelimit.NewEndpointLimiterWithDefaults()
	rateLimiter.SetEndpointLimit(skyapi.EndpointSearchFlights, 2, 4)
	rateLimiter.SetEndpointLimit(skyapi.EndpointSearchAirport, 5, 10)

	var client skyapi.Client
	if cfg.MockData {
		mockClient, err := skyapi.NewMockClient()
		if err != nil {
			log.Fatalf("Failed to load mock flight data: %v", err)
		}
		client = mockClient
		log.Println("Flight data client running in mock mode")
	} else {
		client = skyapi.NewHTTPClient(skyapi.HTTPConfig{
			APIKey:  cfg.SkyAPIKey,
			APIHost: cfg.SkyAPIHost,
			Limiter: rateLimiter,
		})
		log.Printf("Flight data client running in live mode (host: %s)", cfg.SkyAPIHost)
	}

	var searchCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		searchCache = redisCache
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		searchCache = cache.NewNoOpCache()
		log.Println("Cache disabled")
	}

	codec := auth.NewTokenCodec([]byte(cfg.JWTSecret), cfg.SessionTTL)
	identity := auth.NewMemoryIdentity(codec)

	searchHandler := handler.NewSearchHandler(client, searchCache)
	airportHandler := handler.NewAirportHandler(client, suggest.NewCoalescer(cfg.SuggestDebounce))
	authHandler := handler.NewAuthHandler(identity)

	api := e.Group("/api/v1")
	api.POST("/auth/signup", authHandler.SignUp)
	api.POST("/auth/signin", authHandler.SignIn)
	api.POST("/auth/signout", authHandler.SignOut)

	session := handler.SessionMiddleware(codec)
	api.POST("/flights/search", searchHandler.Search, session)
	api.POST("/flights/detail", searchHandler.Detail, session)
	api.GET("/airports/search", airportHandler.Search, session)

	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting skysearch server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		MockData:        getEnvBool("MOCK_DATA", true),
		SkyAPIKey:       getEnv("SKY_API_KEY", ""),
		SkyAPIHost:      getEnv("SKY_API_HOST", "sky-scrapper.p.rapidapi.com"),
		CacheEnabled:    getEnvBool("CACHE_ENABLED", true),
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisTTL:        getEnvDuration("REDIS_TTL", 5*time.Minute),
		JWTSecret:       getEnv("JWT_SECRET", "dev-only-secret"),
		SessionTTL:      getEnvDuration("SESSION_TTL", 24*time.Hour),
		SuggestDebounce: getEnvDuration("SUGGEST_DEBOUNCE", 300*time.Millisecond),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
