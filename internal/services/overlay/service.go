// Package overlay hosts the loaded packs and drives the per-frame update, render and
// edit passes. It is not safe for concurrent use; one goroutine owns the frame loop.
package overlay

import (
	"context"
	"log"
	"slices"
	"time"

	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/domain/edit"
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"github.com/KirkDiggler/overlay-engine/internal/events"
	"github.com/KirkDiggler/overlay-engine/internal/repositories/packs"
)

// DefaultUpdateInterval is how often everything is recomputed regardless of snapshot changes
const DefaultUpdateInterval = 100 * time.Millisecond

// Service defines the overlay runtime
type Service interface {
	// Load replaces the hosted packs with everything in the repository
	Load(ctx context.Context) error

	// AddPack stores a new pack and starts hosting it
	AddPack(ctx context.Context, pack *element.Pack) (string, error)

	// RemovePack deletes a hosted pack from the repository
	RemovePack(ctx context.Context, key string) error

	// SaveAll writes every hosted pack back to the repository
	SaveAll(ctx context.Context) error

	// Packs returns the hosted packs in draw order
	Packs() []*element.Pack

	// Key returns the storage key of a hosted pack
	Key(pack *element.Pack) (string, bool)

	// Update resolves every pack against the snapshot
	Update(snap *snapshot.Snapshot)

	// Render draws every pack onto the surface
	Render(surface draw.Surface, screen draw.Vec2)

	// EditTree walks every pack's tree through input, then applies the captured edits
	EditTree(input edit.RowInput) edit.Result

	// Session returns the editor session
	Session() *edit.Session

	// SetEditing turns edit mode on or off
	SetEditing(editing bool)
	IsEditing() bool
}

type hostedPack struct {
	key  string
	pack *element.Pack
}

type service struct {
	repository packs.Repository
	bus        *events.Bus
	session    *edit.Session

	interval uint32
	lastTick uint32
	ticked   bool
	now      uint32
	editing  bool
	inCombat bool

	packs []hostedPack
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository       packs.Repository
	Bus              *events.Bus
	UpdateInterval   time.Duration
	EditDuringCombat bool

	// Autosave persists packs as soon as an edit modifies them
	Autosave    bool
	SaveTimeout time.Duration
}

// NewService creates a new overlay runtime
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	bus := cfg.Bus
	if bus == nil {
		bus = events.NewBus()
	}
	interval := cfg.UpdateInterval
	if interval <= 0 {
		interval = DefaultUpdateInterval
	}

	svc := &service{
		repository: cfg.Repository,
		bus:        bus,
		session:    edit.NewSession(cfg.EditDuringCombat),
		interval:   uint32(interval.Milliseconds()),
	}

	if cfg.Autosave {
		bus.Subscribe(events.TypePackModified, NewAutosaver(cfg.Repository, bus, cfg.SaveTimeout))
	}
	return svc
}

func (s *service) Load(ctx context.Context) error {
	records, err := s.repository.List(ctx)
	if err != nil {
		return ovlerr.Wrap(err, "failed to load packs")
	}

	s.packs = s.packs[:0]
	for _, record := range records {
		s.packs = append(s.packs, hostedPack{key: record.Key, pack: record.Pack})
	}
	s.session.State.Clear()
	s.session.CancelDrag()
	s.ticked = false

	log.Printf("[RUNTIME] Loaded %d packs", len(s.packs))
	return nil
}

func (s *service) AddPack(ctx context.Context, pack *element.Pack) (string, error) {
	if pack == nil {
		return "", ovlerr.InvalidArgument("pack cannot be nil")
	}
	key, err := s.repository.Create(ctx, pack)
	if err != nil {
		return "", ovlerr.Wrap(err, "failed to create pack")
	}
	s.packs = append(s.packs, hostedPack{key: key, pack: pack})
	s.ticked = false
	return key, nil
}

func (s *service) RemovePack(ctx context.Context, key string) error {
	index := slices.IndexFunc(s.packs, func(h hostedPack) bool { return h.key == key })
	if index < 0 {
		return ovlerr.NotFoundf("pack %q is not loaded", key)
	}
	if err := s.repository.Delete(ctx, key); err != nil {
		return ovlerr.Wrapf(err, "failed to delete pack %s", key)
	}

	removed := s.packs[index].pack
	if selected := s.session.State.Selected(); removed.ID == selected || removed.Find(selected) != nil {
		s.session.State.Clear()
	}
	s.packs = slices.Delete(s.packs, index, index+1)
	return nil
}

func (s *service) SaveAll(ctx context.Context) error {
	for _, h := range s.packs {
		if err := s.repository.Save(ctx, h.key, h.pack); err != nil {
			return ovlerr.Wrapf(err, "failed to save pack %s", h.key)
		}
	}
	return nil
}

func (s *service) Packs() []*element.Pack {
	out := make([]*element.Pack, len(s.packs))
	for i, h := range s.packs {
		out[i] = h.pack
	}
	element.SortByLayer(out)
	return out
}

func (s *service) Key(pack *element.Pack) (string, bool) {
	for _, h := range s.packs {
		if h.pack == pack {
			return h.key, true
		}
	}
	return "", false
}

func (s *service) Session() *edit.Session {
	return s.session
}

func (s *service) SetEditing(editing bool) {
	if s.editing != editing {
		s.ticked = false
	}
	s.editing = editing
}

func (s *service) IsEditing() bool {
	return s.editing
}

func (s *service) editState() *frame.EditState {
	if !s.editing {
		return nil
	}
	return s.session.State
}

func (s *service) Update(snap *snapshot.Snapshot) {
	state := s.editState()
	state.ResetAllowed()
	if snap != nil {
		state.SetAllowed(snap.Player.InCombat)
		s.now = snap.Now
		s.inCombat = snap.Player.InCombat
	}

	ctx := frame.NewContext(snap, s.updates(snap), state)
	for _, h := range s.packs {
		h.pack.Update(ctx)
	}
}

// updates merges the snapshot's change flags with the periodic tick, which marks everything dirty
func (s *service) updates(snap *snapshot.Snapshot) snapshot.Changes {
	if snap == nil {
		return snapshot.ChangedNone
	}
	if !s.ticked || snap.Now < s.lastTick || snap.Now-s.lastTick >= s.interval {
		s.ticked = true
		s.lastTick = snap.Now
		return snapshot.ChangedAll
	}
	return snap.Changed
}

func (s *service) Render(surface draw.Surface, screen draw.Vec2) {
	rc := element.NewRenderContext(surface, screen, s.now, s.editState())
	for _, pack := range s.Packs() {
		pack.Render(rc)
	}
}

func (s *service) EditTree(input edit.RowInput) edit.Result {
	previous := s.session.State.Selected()
	if s.inCombat && !s.session.State.DuringCombat {
		input = listOnly{input}
	}

	trees := make([]*element.Pack, len(s.packs))
	for i, h := range s.packs {
		s.session.Traverse(h.pack, input)
		trees[i] = h.pack
	}
	result := s.session.Apply(trees)

	if current := s.session.State.Selected(); current != previous {
		s.emit(events.NewSelectionChanged(previous, current))
	}
	if !result.Action.IsNone() {
		s.emit(events.NewActionApplied(result.Action))
	}
	if result.FieldCopy != "" {
		s.emit(events.NewFieldCopied(result.FieldCopy))
	}
	for _, pack := range result.Modified {
		key, ok := s.Key(pack)
		if !ok {
			continue
		}
		s.emit(events.NewPackModified(key, pack))
	}
	if len(result.Modified) > 0 {
		s.ticked = false
	}
	return result
}

// listOnly shows the rows but drops clicks and actions, for frames where the combat policy
// forbids editing
type listOnly struct {
	edit.RowInput
}

func (l listOnly) Row(row edit.Row) edit.RowResult {
	l.RowInput.Row(row)
	return edit.RowResult{}
}

func (s *service) emit(event events.Event) {
	if err := s.bus.Emit(event); err != nil {
		log.Printf("[RUNTIME] Event %s failed: %v", event.GetType(), err)
	}
}
