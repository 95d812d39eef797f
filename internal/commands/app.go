package commands

import (
	"context"
	"log"
	"time"

	"github.com/KirkDiggler/overlay-engine/internal/config"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"github.com/KirkDiggler/overlay-engine/internal/repositories/packs"
	"github.com/KirkDiggler/overlay-engine/internal/services"
	overlayService "github.com/KirkDiggler/overlay-engine/internal/services/overlay"
	"github.com/KirkDiggler/overlay-engine/internal/uuid"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// app is what a command runs against: configuration, the pack store and the runtime
type app struct {
	cfg      *config.Config
	provider *services.Provider
	closers  []func() error
}

// appOptions picks how the runtime is wired for a command
type appOptions struct {
	// Files replaces the store with an in-memory one holding these pack documents
	Files []string

	Autosave bool
}

func openApp(ctx context.Context, opts appOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, ovlerr.WrapWithCode(err, ovlerr.CodeInvalidArgument, "failed to load config")
	}

	a := &app{cfg: cfg}

	var repo packs.Repository
	if len(opts.Files) > 0 {
		log.Printf("Using %d pack files in memory", len(opts.Files))
		repo = packs.NewInMemoryRepository(uuid.NewGoogleGenerator(), packs.SystemTime())
	} else {
		repo = a.openRepository(ctx)
	}

	a.provider = services.NewProvider(&services.ProviderConfig{
		Runtime:        cfg.Runtime,
		PackRepository: repo,
		Autosave:       opts.Autosave,
	})

	if len(opts.Files) > 0 {
		loaded, err := overlayService.LoadFiles(ctx, opts.Files)
		if err != nil {
			return nil, err
		}
		for _, pack := range loaded {
			if _, err := a.provider.OverlayService.AddPack(ctx, pack); err != nil {
				return nil, err
			}
		}
		return a, nil
	}

	if err := a.provider.OverlayService.Load(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// openRepository connects the configured store, falling back to memory when Redis is unreachable
func (a *app) openRepository(ctx context.Context) packs.Repository {
	switch a.cfg.Store.Kind {
	case config.StoreMemory:
		log.Println("Using in-memory pack store")
		return packs.NewInMemoryRepository(uuid.NewGoogleGenerator(), packs.SystemTime())
	case config.StoreDisk:
		log.Printf("Using disk pack store at %s", a.cfg.Store.Dir)
		return packs.NewDiskRepository(a.cfg.Store.Dir, uuid.NewGoogleGenerator(), packs.SystemTime())
	case config.StoreRedis:
		log.Printf("Connecting to Redis at: %s", a.cfg.Redis.URL)

		opts, err := redis.ParseURL(a.cfg.Redis.URL)
		if err != nil {
			log.Printf("Failed to parse Redis URL: %v", err)
			break
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			_ = client.Close()
			break
		}

		log.Println("Using Redis for persistence")
		a.closers = append(a.closers, client.Close)
		return packs.NewRedisRepository(&packs.RedisRepoConfig{
			Client:        client,
			UUIDGenerator: uuid.NewGoogleGenerator(),
			TimeProvider:  packs.SystemTime(),
		})
	}

	log.Println("Falling back to in-memory pack store")
	return packs.NewInMemoryRepository(uuid.NewGoogleGenerator(), packs.SystemTime())
}

func (a *app) Close() {
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}
	a.closers = nil
}
