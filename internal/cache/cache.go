package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"skysearch/internal/models"
)

// Cache holds raw provider itineraries keyed by the search that produced
// them. Raw itineraries rather than transformed flights, so the detail
// view can re-derive per-leg flights without another upstream call.
type Cache interface {
	Get(ctx context.Context, req models.FlightSearchRequest) ([]models.Itinerary, bool)
	Set(ctx context.Context, req models.FlightSearchRequest, itineraries []models.Itinerary) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, req models.FlightSearchRequest) ([]models.Itinerary, bool) {
	key := generateKey(req)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var itineraries []models.Itinerary
	if err := json.Unmarshal(data, &itineraries); err != nil {
		return nil, false
	}

	return itineraries, true
}

func (c *RedisCache) Set(ctx context.Context, req models.FlightSearchRequest, itineraries []models.Itinerary) error {
	key := generateKey(req)

	data, err := json.Marshal(itineraries)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, req models.FlightSearchRequest) ([]models.Itinerary, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, req models.FlightSearchRequest, itineraries []models.Itinerary) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

func generateKey(req models.FlightSearchRequest) string {
	keyData := struct {
		OriginSkyID         string
		DestinationSkyID    string
		OriginEntityID      string
		DestinationEntityID string
		Date                string
		ReturnDate          string
		Adults              int
		CabinClass          string
		Currency            string
	}{
		OriginSkyID:         req.OriginSkyID,
		DestinationSkyID:    req.DestinationSkyID,
		OriginEntityID:      req.OriginEntityID,
		DestinationEntityID: req.DestinationEntityID,
		Date:                req.Date,
		Adults:              req.Adults,
		CabinClass:          req.CabinClass,
		Currency:            req.Currency,
	}

	if req.ReturnDate != nil {
		keyData.ReturnDate = *req.ReturnDate
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "skysearch:" + hex.EncodeToString(hash[:])
}
