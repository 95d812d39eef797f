package element

import (
	"encoding/json"

	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
	"github.com/KirkDiggler/overlay-engine/internal/domain/id"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
	"github.com/KirkDiggler/overlay-engine/internal/domain/props"
	"github.com/KirkDiggler/overlay-engine/internal/domain/trigger"
)

// ListIcon is a lightweight leaf of an icon list: no id, no position, just a trigger and an icon
type ListIcon struct {
	Enabled bool                    `json:"enabled"`
	Name    string                  `json:"name"`
	Trigger trigger.ProgressTrigger `json:"trigger"`
	Icon    draw.Icon               `json:"icon"`

	visible bool
}

// NewListIcon creates an enabled list icon that inherits the list's active
func NewListIcon(name string) ListIcon {
	return ListIcon{Enabled: true, Name: name, Trigger: trigger.NewProgressTrigger()}
}

// Clone returns a deep copy
func (l ListIcon) Clone() ListIcon {
	return ListIcon{Enabled: l.Enabled, Name: l.Name, Trigger: l.Trigger.Clone(), Icon: l.Icon}
}

// IsVisible returns the visibility decided by the last update
func (l *ListIcon) IsVisible() bool {
	return l.visible
}

// UnmarshalJSON defaults to enabled with an inherited trigger
func (l *ListIcon) UnmarshalJSON(data []byte) error {
	type plain ListIcon
	out := plain(NewListIcon(""))
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*l = ListIcon(out)
	return nil
}

// IconList lays out its visible icons in a row; hidden icons collapse
type IconList struct {
	Icons        []ListIcon
	Size         draw.Vec2
	Direction    draw.Direction
	Spacing      float32
	ShowDuration bool
	ShowStacks   bool
	Props        props.Props[IconStyle, IconStylePartial]
}

func NewIconList() *IconList {
	return &IconList{
		Size:         draw.Vec2{32, 32},
		Direction:    draw.DirRight,
		Spacing:      2,
		ShowDuration: true,
		ShowStacks:   true,
		Props:        props.New[IconStyle, IconStylePartial](defaultIconStyle()),
	}
}

// list icons preview together with the list that owns them
func (l *IconList) update(ctx *frame.Context, owner id.ID, active *progress.Active) {
	l.Props.Update(ctx, active)
	for i := range l.Icons {
		icon := &l.Icons[i]
		met := icon.Trigger.Update(ctx, owner, active)
		icon.visible = icon.Enabled && met
	}
}

func (l *IconList) render(rc *RenderContext, common *Common) {
	style := l.Props.Current()
	step := l.Direction.Step(l.Size, l.Spacing)
	pos := rc.Origin()

	boundsMin, boundsMax := pos, pos
	drawn := 0
	for i := range l.Icons {
		icon := &l.Icons[i]
		if !icon.visible {
			continue
		}
		min, max := renderIcon(rc, icon.Icon, pos, l.Size, style, icon.Trigger.Active(), l.ShowDuration, l.ShowStacks)
		if drawn == 0 {
			boundsMin, boundsMax = min, max
		} else {
			boundsMin = draw.Vec2{minf(boundsMin[0], min[0]), minf(boundsMin[1], min[1])}
			boundsMax = draw.Vec2{maxf(boundsMax[0], max[0]), maxf(boundsMax[1], max[1])}
		}
		drawn++
		pos = pos.Add(step)
	}
	rc.highlight(common, boundsMin, boundsMax)
}

func (l *IconList) clone() *IconList {
	clone := *l
	if l.Icons != nil {
		clone.Icons = make([]ListIcon, len(l.Icons))
		for i := range l.Icons {
			clone.Icons[i] = l.Icons[i].Clone()
		}
	}
	clone.Props = l.Props.Clone()
	return &clone
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
