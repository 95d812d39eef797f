package packs

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"github.com/KirkDiggler/overlay-engine/internal/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const indexKey = "packs"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
}

type redisRepo struct {
	client redis.UniversalClient
	uuid   uuid.Generator
	clock  TimeProvider
}

// NewRedisRepository creates a Redis-backed pack repository. Records live under pack:<key>
// and the set "packs" indexes the keys.
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleGenerator()
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = SystemTime()
	}

	return &redisRepo{
		client: cfg.Client,
		uuid:   cfg.UUIDGenerator,
		clock:  cfg.TimeProvider,
	}
}

func (r *redisRepo) key(key string) string {
	return fmt.Sprintf("pack:%s", key)
}

func (r *redisRepo) Create(ctx context.Context, pack *element.Pack) (string, error) {
	key := r.uuid.New()
	if err := validate(key, pack); err != nil {
		return "", err
	}

	data, err := toData(key, pack, r.clock.Now())
	if err != nil {
		return "", err
	}

	created, err := r.client.SetNX(ctx, r.key(key), data, 0).Result()
	if err != nil {
		return "", ovlerr.Unavailable(err, "failed to create pack")
	}
	if !created {
		return "", ovlerr.AlreadyExistsf("pack %q already exists", key).WithMeta("pack_key", key)
	}
	if err := r.client.SAdd(ctx, indexKey, key).Err(); err != nil {
		return "", ovlerr.Unavailable(err, "failed to index pack")
	}
	return key, nil
}

func (r *redisRepo) Get(ctx context.Context, key string) (*Record, error) {
	if key == "" {
		return nil, ovlerr.InvalidArgument("pack key is required")
	}

	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ovlerr.NotFoundf("pack %q not found", key).WithMeta("pack_key", key)
	}
	if err != nil {
		return nil, ovlerr.Unavailable(err, "failed to get pack")
	}
	return fromData(data)
}

func (r *redisRepo) Save(ctx context.Context, key string, pack *element.Pack) error {
	if err := validate(key, pack); err != nil {
		return err
	}

	data, err := toData(key, pack, r.clock.Now())
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(key), data, 0)
	pipe.SAdd(ctx, indexKey, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return ovlerr.Unavailable(err, "failed to save pack")
	}
	return nil
}

func (r *redisRepo) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ovlerr.InvalidArgument("pack key is required")
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, r.key(key))
	pipe.SRem(ctx, indexKey, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return ovlerr.Unavailable(err, "failed to delete pack")
	}
	if del.Val() == 0 {
		return ovlerr.NotFoundf("pack %q not found", key).WithMeta("pack_key", key)
	}
	return nil
}

// List loads every indexed pack concurrently. Index entries whose record is gone are skipped.
func (r *redisRepo) List(ctx context.Context) ([]*Record, error) {
	keys, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, ovlerr.Unavailable(err, "failed to list pack keys")
	}

	records := make([]*Record, len(keys))
	g, ctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			record, err := r.Get(ctx, key)
			if ovlerr.IsNotFound(err) {
				log.Printf("[PACKS] Index entry %s has no record", key)
				return nil
			}
			if err != nil {
				return ovlerr.Wrapf(err, "failed to get pack %s", key)
			}
			records[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*Record, 0, len(records))
	for _, record := range records {
		if record != nil {
			out = append(out, record)
		}
	}
	sortRecords(out)
	return out, nil
}
