package events

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/edit"
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	"github.com/KirkDiggler/overlay-engine/internal/domain/id"
)

// Type names an event
type Type string

const (
	TypeActionApplied    Type = "action_applied"
	TypeFieldCopied      Type = "field_copied"
	TypeSelectionChanged Type = "selection_changed"
	TypePackModified     Type = "pack_modified"
	TypePackSaved        Type = "pack_saved"
)

// Priorities for listeners on the same event
const (
	PriorityValidate = 0
	PriorityPersist  = 100
	PriorityNotify   = 200
)

// Event is implemented by every event on the bus
type Event interface {
	GetType() Type
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides the common event fields
type BaseEvent struct {
	Type      Type
	Cancelled bool
}

func (e *BaseEvent) GetType() Type     { return e.Type }
func (e *BaseEvent) IsCancelled() bool { return e.Cancelled }
func (e *BaseEvent) Cancel()           { e.Cancelled = true }

// ActionAppliedEvent follows a structural tree edit
type ActionAppliedEvent struct {
	BaseEvent
	Action edit.ElementAction
}

func NewActionApplied(action edit.ElementAction) *ActionAppliedEvent {
	return &ActionAppliedEvent{BaseEvent: BaseEvent{Type: TypeActionApplied}, Action: action}
}

// FieldCopiedEvent follows a copy of one field to siblings
type FieldCopiedEvent struct {
	BaseEvent
	Field string
}

func NewFieldCopied(field string) *FieldCopiedEvent {
	return &FieldCopiedEvent{BaseEvent: BaseEvent{Type: TypeFieldCopied}, Field: field}
}

// SelectionChangedEvent is emitted when the edited element changes
type SelectionChangedEvent struct {
	BaseEvent
	Previous id.ID
	Current  id.ID
}

func NewSelectionChanged(previous, current id.ID) *SelectionChangedEvent {
	return &SelectionChangedEvent{
		BaseEvent: BaseEvent{Type: TypeSelectionChanged},
		Previous:  previous,
		Current:   current,
	}
}

// PackModifiedEvent carries a pack whose tree changed. Key is its storage key.
type PackModifiedEvent struct {
	BaseEvent
	Key  string
	Pack *element.Pack
}

func NewPackModified(key string, pack *element.Pack) *PackModifiedEvent {
	return &PackModifiedEvent{BaseEvent: BaseEvent{Type: TypePackModified}, Key: key, Pack: pack}
}

// PackSavedEvent follows a successful write to the repository
type PackSavedEvent struct {
	BaseEvent
	Key string
}

func NewPackSaved(key string) *PackSavedEvent {
	return &PackSavedEvent{BaseEvent: BaseEvent{Type: TypePackSaved}, Key: key}
}
