package events_test

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/overlay-engine/internal/domain/edit"
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	"github.com/KirkDiggler/overlay-engine/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recorder(name string, priority int, order *[]string) *events.ListenerFunc {
	return &events.ListenerFunc{
		Name:  name,
		Order: priority,
		Handle: func(events.Event) error {
			*order = append(*order, name)
			return nil
		},
	}
}

func TestBus_Priority(t *testing.T) {
	bus := events.NewBus()
	var order []string

	bus.Subscribe(events.TypeActionApplied, recorder("notify", events.PriorityNotify, &order))
	bus.Subscribe(events.TypeActionApplied, recorder("validate", events.PriorityValidate, &order))
	bus.Subscribe(events.TypeActionApplied, recorder("persist", events.PriorityPersist, &order))
	bus.Subscribe(events.TypeFieldCopied, recorder("other", 0, &order))

	require.NoError(t, bus.Emit(events.NewActionApplied(edit.ElementAction{Kind: edit.ElementDelete})))
	assert.Equal(t, []string{"validate", "persist", "notify"}, order)
}

func TestBus_Cancellation(t *testing.T) {
	bus := events.NewBus()
	var order []string

	bus.Subscribe(events.TypePackModified, &events.ListenerFunc{
		Name: "veto",
		Handle: func(e events.Event) error {
			order = append(order, "veto")
			e.Cancel()
			return nil
		},
	})
	bus.Subscribe(events.TypePackModified, recorder("save", events.PriorityPersist, &order))

	pack := element.NewPack("raid")
	event := events.NewPackModified("raid", &pack)
	require.NoError(t, bus.Emit(event))

	assert.Equal(t, []string{"veto"}, order)
	assert.True(t, event.IsCancelled())
}

func TestBus_ErrorStopsPropagation(t *testing.T) {
	bus := events.NewBus()
	var order []string

	bus.Subscribe(events.TypePackSaved, &events.ListenerFunc{
		Name:   "broken",
		Handle: func(events.Event) error { return errors.New("disk full") },
	})
	bus.Subscribe(events.TypePackSaved, recorder("after", events.PriorityNotify, &order))

	err := bus.Emit(events.NewPackSaved("raid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Empty(t, order)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := events.NewBus()
	var order []string

	bus.Subscribe(events.TypeSelectionChanged, recorder("a", 0, &order))
	bus.Subscribe(events.TypeSelectionChanged, recorder("b", 1, &order))
	bus.Unsubscribe(events.TypeSelectionChanged, "a")
	bus.Unsubscribe(events.TypeSelectionChanged, "missing")

	require.NoError(t, bus.Emit(events.NewSelectionChanged(1, 2)))
	assert.Equal(t, []string{"b"}, order)

	bus.Clear()
	require.NoError(t, bus.Emit(events.NewSelectionChanged(2, 3)))
	assert.Equal(t, []string{"b"}, order)
}
