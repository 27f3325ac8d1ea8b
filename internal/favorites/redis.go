package favorites

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/randytsao24/decomap/internal/cache"
	"github.com/randytsao24/decomap/internal/config"
	"github.com/randytsao24/decomap/internal/metrics"
)

// toggleScript flips set membership atomically and returns the new state
var toggleScript = redis.NewScript(`
if redis.call("SISMEMBER", KEYS[1], ARGV[1]) == 1 then
	redis.call("SREM", KEYS[1], ARGV[1])
	return 0
end
redis.call("SADD", KEYS[1], ARGV[1])
return 1
`)

// RedisStore keeps favorites in a Redis set shared by every server instance.
// Toggles are announced on a pub/sub channel so other instances can refresh.
type RedisStore struct {
	client   *redis.Client
	key      string
	channel  string
	instance string
	cache    *cache.Cache[bool]
	logger   *slog.Logger
}

// NewRedisStore wraps client. Membership lookups are cached locally for ttl.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client:   client,
		key:      prefix + ":favorites",
		channel:  prefix + ":favorites:changed",
		instance: uuid.NewString(),
		cache:    cache.New[bool](ttl),
		logger:   logger,
	}
}

// NewRedisStoreFromConfig opens a client from the REDIS_* settings
func NewRedisStoreFromConfig(cfg *config.Config, logger *slog.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	logger.Debug("redis favorites store", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
	return NewRedisStore(client, cfg.RedisKeyPrefix, cfg.CacheTTL, logger)
}

// Ping checks connectivity
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// IsFavorite reports membership. Redis errors are logged and read as false.
func (s *RedisStore) IsFavorite(ctx context.Context, buildingID string) bool {
	if fav, ok := s.cache.Get(buildingID); ok {
		metrics.FavoritesCacheHitsTotal.Inc()
		return fav
	}
	metrics.FavoritesCacheMissesTotal.Inc()

	fav, err := s.client.SIsMember(ctx, s.key, buildingID).Result()
	if err != nil {
		s.logger.Warn("redis favorite lookup failed", "building_id", buildingID, "error", err)
		return false
	}
	s.cache.Set(buildingID, fav)
	return fav
}

func (s *RedisStore) ToggleFavorite(ctx context.Context, buildingID string) (bool, error) {
	n, err := toggleScript.Run(ctx, s.client, []string{s.key}, buildingID).Int()
	if err != nil {
		s.cache.Delete(buildingID)
		return false, fmt.Errorf("toggling favorite in redis: %w", err)
	}

	fav := n == 1
	s.cache.Set(buildingID, fav)

	if err := s.client.Publish(ctx, s.channel, s.instance).Err(); err != nil {
		s.logger.Warn("publishing favorites change failed", "error", err)
	}
	return fav, nil
}

// Changes signals whenever another instance toggles a favorite. Bursts are
// coalesced into one pending signal. The channel closes when ctx ends.
func (s *RedisStore) Changes(ctx context.Context) <-chan struct{} {
	sub := s.client.Subscribe(ctx, s.channel)
	out := make(chan struct{}, 1)

	go func() {
		defer close(out)
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				if msg.Payload == s.instance {
					continue
				}
				s.cache.Clear()
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()

	return out
}

func (s *RedisStore) Close() error {
	s.cache.Close()
	return s.client.Close()
}
