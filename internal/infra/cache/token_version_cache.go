// Package cache keeps account token versions in Redis so session checks skip the database.
package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"servicehub/config"
	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyNamespace = "servicehub"
	keyPrefix    = "token_version"
	defaultTTL   = 5 * time.Minute
)

// setIfNewer writes ARGV[1] with a PX ttl of ARGV[2] unless the stored version is larger.
// A reader that loaded a version before a reset committed can then never overwrite the
// version the reset stored.
const setIfNewer = `
local current = redis.call('GET', KEYS[1])
if current and tonumber(current) and tonumber(current) > tonumber(ARGV[1]) then
	return 0
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[2])
return 1
`

// cmdable is the subset of the redis client the cache uses.
type cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisTokenVersionCache struct {
	store cmdable
	ttl   time.Duration
}

// NewRedisTokenVersionCache wraps a redis client. A non-positive ttl uses the default.
func NewRedisTokenVersionCache(store cmdable, ttl time.Duration) service.TokenVersionCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisTokenVersionCache{store: store, ttl: ttl}
}

func tokenVersionKey(role entity.Role, accountID uuid.UUID) string {
	return keyNamespace + ":" + keyPrefix + ":" + role.String() + ":" + accountID.String()
}

func (c *redisTokenVersionCache) Get(ctx context.Context, role entity.Role, accountID uuid.UUID) (int, bool, error) {
	raw, err := c.store.Get(ctx, tokenVersionKey(role, accountID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to read token version")
	}

	version, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, errors.Wrapf(err, "corrupt token version %q", raw)
	}

	return version, true, nil
}

// Set stores version unless a larger one is already cached.
func (c *redisTokenVersionCache) Set(ctx context.Context, role entity.Role, accountID uuid.UUID, version int) error {
	err := c.store.Eval(ctx, setIfNewer, []string{tokenVersionKey(role, accountID)},
		strconv.Itoa(version), c.ttl.Milliseconds()).Err()

	return errors.Wrap(err, "failed to store token version")
}

func (c *redisTokenVersionCache) Invalidate(ctx context.Context, role entity.Role, accountID uuid.UUID) error {
	err := c.store.Del(ctx, tokenVersionKey(role, accountID)).Err()

	return errors.Wrap(err, "failed to invalidate token version")
}

// noopTokenVersionCache always misses, so every check reads the database.
type noopTokenVersionCache struct{}

// NewNoopTokenVersionCache returns a cache that stores nothing.
func NewNoopTokenVersionCache() service.TokenVersionCache {
	return noopTokenVersionCache{}
}

func (noopTokenVersionCache) Get(context.Context, entity.Role, uuid.UUID) (int, bool, error) {
	return 0, false, nil
}

func (noopTokenVersionCache) Set(context.Context, entity.Role, uuid.UUID, int) error {
	return nil
}

func (noopTokenVersionCache) Invalidate(context.Context, entity.Role, uuid.UUID) error {
	return nil
}

// Params defines the dependencies of the token version cache.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to Redis when redis.enabled is set and falls back to the noop cache otherwise.
func New(params Params) (service.TokenVersionCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Token version cache disabled")

		return NewNoopTokenVersionCache(), nil
	}
	if cfg.Address == "" {
		return nil, errors.New("redis.address is required when redis is enabled")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Token version cache connected", slog.String("address", cfg.Address))

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisTokenVersionCache(client, cfg.TTL), nil
}

// Module provides the token version cache.
var Module = fx.Module("cache",
	fx.Provide(New),
)
