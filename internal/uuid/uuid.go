// Package uuid generates storage keys for packs. The interface exists so tests can pin keys.
package uuid

//go:generate mockgen -destination=mock/mock.go -package=mockuuid -source=uuid.go

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator hands out unique string keys
type Generator interface {
	New() string
}

// GoogleGenerator produces random v4 UUIDs
type GoogleGenerator struct{}

func NewGoogleGenerator() *GoogleGenerator {
	return &GoogleGenerator{}
}

func (g *GoogleGenerator) New() string {
	return uuid.New().String()
}

// SequenceGenerator produces prefix-1, prefix-2, ... for reproducible output such as the simulator's
type SequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) New() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.next.Add(1))
}
