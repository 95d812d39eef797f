package overlay

import (
	"context"
	"log"
	"time"

	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"github.com/KirkDiggler/overlay-engine/internal/events"
	"github.com/KirkDiggler/overlay-engine/internal/repositories/packs"
)

const defaultSaveTimeout = 2 * time.Second

// Autosaver persists packs when an edit modifies them
type Autosaver struct {
	repository packs.Repository
	bus        *events.Bus
	timeout    time.Duration
}

// NewAutosaver creates the listener. When bus is set a PackSaved event follows every save.
func NewAutosaver(repository packs.Repository, bus *events.Bus, timeout time.Duration) *Autosaver {
	if timeout <= 0 {
		timeout = defaultSaveTimeout
	}
	return &Autosaver{repository: repository, bus: bus, timeout: timeout}
}

func (a *Autosaver) ID() string    { return "autosave" }
func (a *Autosaver) Priority() int { return events.PriorityPersist }

func (a *Autosaver) HandleEvent(event events.Event) error {
	modified, ok := event.(*events.PackModifiedEvent)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	if err := a.repository.Save(ctx, modified.Key, modified.Pack); err != nil {
		return ovlerr.Wrapf(err, "failed to autosave pack %s", modified.Key)
	}
	log.Printf("[RUNTIME] Saved pack %s", modified.Key)

	if a.bus == nil {
		return nil
	}
	return a.bus.Emit(events.NewPackSaved(modified.Key))
}
