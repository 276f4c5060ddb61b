package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCmdable struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeCmdable() *fakeCmdable {
	return &fakeCmdable{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	if v, ok := f.values[key]; ok {
		cmd.SetVal(v)
	} else {
		cmd.SetErr(redis.Nil)
	}

	return cmd
}

// Eval runs the setIfNewer script against the in-memory values.
func (f *fakeCmdable) Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	cmd := redis.NewCmd(ctx, "eval", script)
	if script != setIfNewer {
		cmd.SetErr(errors.New("unexpected script"))

		return cmd
	}

	next, _ := strconv.Atoi(args[0].(string))
	if current, ok := f.values[keys[0]]; ok {
		if stored, err := strconv.Atoi(current); err == nil && stored > next {
			cmd.SetVal(int64(0))

			return cmd
		}
	}
	f.values[keys[0]] = args[0].(string)
	f.ttls[keys[0]] = time.Duration(args[1].(int64)) * time.Millisecond
	cmd.SetVal(int64(1))

	return cmd
}

func (f *fakeCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	cmd := redis.NewIntCmd(ctx, "del")
	cmd.SetVal(n)

	return cmd
}

func TestRedisTokenVersionCache(t *testing.T) {
	ctx := context.Background()
	store := newFakeCmdable()
	cache := NewRedisTokenVersionCache(store, 0)
	id := uuid.New()

	_, found, err := cache.Get(ctx, entity.RoleConsumer, id)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, entity.RoleConsumer, id, 3))
	assert.Equal(t, defaultTTL, store.ttls[tokenVersionKey(entity.RoleConsumer, id)])

	version, found, err := cache.Get(ctx, entity.RoleConsumer, id)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, version)

	// Roles are keyed separately.
	_, found, err = cache.Get(ctx, entity.RoleAdmin, id)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Invalidate(ctx, entity.RoleConsumer, id))
	_, found, err = cache.Get(ctx, entity.RoleConsumer, id)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisTokenVersionCache_SetKeepsNewerVersion(t *testing.T) {
	ctx := context.Background()
	store := newFakeCmdable()
	cache := NewRedisTokenVersionCache(store, time.Minute)
	id := uuid.New()

	// A reset stored version 2 while a slower request still holds version 1 from the database.
	require.NoError(t, cache.Set(ctx, entity.RoleConsumer, id, 2))
	require.NoError(t, cache.Set(ctx, entity.RoleConsumer, id, 1))

	version, found, err := cache.Get(ctx, entity.RoleConsumer, id)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, version)

	require.NoError(t, cache.Set(ctx, entity.RoleConsumer, id, 3))
	version, _, err = cache.Get(ctx, entity.RoleConsumer, id)
	require.NoError(t, err)
	assert.Equal(t, 3, version)
}

func TestRedisTokenVersionCache_CorruptValue(t *testing.T) {
	store := newFakeCmdable()
	id := uuid.New()
	store.values[tokenVersionKey(entity.RoleServiceProvider, id)] = "abc"

	_, _, err := NewRedisTokenVersionCache(store, time.Minute).Get(context.Background(), entity.RoleServiceProvider, id)
	assert.Error(t, err)
}

func TestNoopTokenVersionCache(t *testing.T) {
	cache := NewNoopTokenVersionCache()
	require.NoError(t, cache.Set(context.Background(), entity.RoleAdmin, uuid.Nil, 1))
	_, found, err := cache.Get(context.Background(), entity.RoleAdmin, uuid.Nil)
	require.NoError(t, err)
	assert.False(t, found)
}
