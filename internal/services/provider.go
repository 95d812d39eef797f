package services

import (
	"github.com/KirkDiggler/overlay-engine/internal/config"
	"github.com/KirkDiggler/overlay-engine/internal/events"
	"github.com/KirkDiggler/overlay-engine/internal/repositories/packs"
	overlayService "github.com/KirkDiggler/overlay-engine/internal/services/overlay"
	"github.com/KirkDiggler/overlay-engine/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	OverlayService overlayService.Service
	PackRepository packs.Repository
	Bus            *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Runtime        config.RuntimeConfig
	PackRepository packs.Repository

	// Autosave persists edits as they are applied
	Autosave bool
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	repo := cfg.PackRepository
	if repo == nil {
		repo = packs.NewInMemoryRepository(uuid.NewGoogleGenerator(), packs.SystemTime())
	}

	bus := events.NewBus()
	svc := overlayService.NewService(&overlayService.ServiceConfig{
		Repository:       repo,
		Bus:              bus,
		UpdateInterval:   cfg.Runtime.UpdateInterval,
		EditDuringCombat: cfg.Runtime.EditDuringCombat,
		Autosave:         cfg.Autosave,
		SaveTimeout:      cfg.Runtime.SaveTimeout,
	})

	return &Provider{
		OverlayService: svc,
		PackRepository: repo,
		Bus:            bus,
	}
}
