package packs

import (
	"context"
	"sync"

	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"github.com/KirkDiggler/overlay-engine/internal/uuid"
)

// InMemoryRepository keeps encoded records in a map. Useful for tests and the simulator.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string][]byte
	uuid    uuid.Generator
	clock   TimeProvider
}

// NewInMemoryRepository creates an empty in-memory repository
func NewInMemoryRepository(generator uuid.Generator, clock TimeProvider) *InMemoryRepository {
	if generator == nil {
		generator = uuid.NewGoogleGenerator()
	}
	if clock == nil {
		clock = SystemTime()
	}
	return &InMemoryRepository{
		records: make(map[string][]byte),
		uuid:    generator,
		clock:   clock,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, pack *element.Pack) (string, error) {
	key := r.uuid.New()
	if err := validate(key, pack); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[key]; exists {
		return "", ovlerr.AlreadyExistsf("pack %q already exists", key).WithMeta("pack_key", key)
	}
	data, err := toData(key, pack, r.clock.Now())
	if err != nil {
		return "", err
	}
	r.records[key] = data
	return key, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, key string) (*Record, error) {
	if key == "" {
		return nil, ovlerr.InvalidArgument("pack key is required")
	}

	r.mu.RLock()
	data, exists := r.records[key]
	r.mu.RUnlock()

	if !exists {
		return nil, ovlerr.NotFoundf("pack %q not found", key).WithMeta("pack_key", key)
	}
	return fromData(data)
}

func (r *InMemoryRepository) Save(ctx context.Context, key string, pack *element.Pack) error {
	if err := validate(key, pack); err != nil {
		return err
	}
	data, err := toData(key, pack, r.clock.Now())
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[key] = data
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ovlerr.InvalidArgument("pack key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[key]; !exists {
		return ovlerr.NotFoundf("pack %q not found", key).WithMeta("pack_key", key)
	}
	delete(r.records, key)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*Record, 0, len(r.records))
	for _, data := range r.records {
		record, err := fromData(data)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	sortRecords(records)
	return records, nil
}
