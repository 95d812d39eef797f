package packs

//go:generate mockgen -destination=mock/mock.go -package=mockpacks -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
)

// Record is a stored pack with its storage key
type Record struct {
	Key       string
	Pack      *element.Pack
	UpdatedAt time.Time
}

// Repository defines the interface for pack persistence. Packs are stored as documents,
// so every Get returns a fresh tree with fresh element ids.
type Repository interface {
	// Create stores a new pack under a generated key and returns the key
	Create(ctx context.Context, pack *element.Pack) (string, error)

	// Get loads the pack stored under key
	Get(ctx context.Context, key string) (*Record, error)

	// Save writes the pack under key, creating it when absent
	Save(ctx context.Context, key string, pack *element.Pack) error

	// Delete removes the pack stored under key
	Delete(ctx context.Context, key string) error

	// List returns every stored pack ordered by layer, then key
	List(ctx context.Context) ([]*Record, error)
}

// TimeProvider supplies UpdatedAt timestamps
type TimeProvider interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now().UTC() }

// SystemTime returns the wall clock in UTC
func SystemTime() TimeProvider { return systemTime{} }
