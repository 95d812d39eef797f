package element

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/domain/id"
	"github.com/KirkDiggler/overlay-engine/internal/domain/jsonshape"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
	"github.com/KirkDiggler/overlay-engine/internal/domain/trigger"
)

var (
	commonAliases  = jsonshape.Aliases{"offset": "pos", "alpha": "opacity"}
	groupAliases   = jsonshape.Aliases{"children": "members"}
	textAliases    = jsonshape.Aliases{"content": "text"}
	barAliases     = jsonshape.Aliases{"progress": "progress_value"}
	packAliases    = jsonshape.Aliases{"children": "elements"}
	errMissingKind = errors.New("element has no kind")
)

type commonJSON struct {
	Enabled bool                    `json:"enabled"`
	Name    string                  `json:"name"`
	Anchor  draw.Anchor             `json:"anchor"`
	Pos     draw.Vec2               `json:"pos"`
	Opacity float32                 `json:"opacity"`
	Trigger trigger.ProgressTrigger `json:"trigger"`
	Filter  trigger.FilterTrigger   `json:"filter"`
}

func (c Common) MarshalJSON() ([]byte, error) {
	return json.Marshal(commonJSON{
		Enabled: c.Enabled,
		Name:    c.Name,
		Anchor:  c.Anchor,
		Pos:     c.Pos,
		Opacity: c.Opacity,
		Trigger: c.Trigger,
		Filter:  c.Filter,
	})
}

// UnmarshalJSON reads on top of the current values, so absent keys keep their defaults.
// The node always gets a fresh id.
func (c *Common) UnmarshalJSON(data []byte) error {
	data, err := jsonshape.Rename(data, commonAliases)
	if err != nil {
		return err
	}

	raw := commonJSON{
		Enabled: c.Enabled,
		Name:    c.Name,
		Anchor:  c.Anchor,
		Pos:     c.Pos,
		Opacity: c.Opacity,
		Trigger: c.Trigger.Clone(),
		Filter:  c.Filter.Clone(),
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if _, err := draw.ParseAnchor(string(raw.Anchor)); err != nil {
		return err
	}

	*c = Common{
		ID:      id.Next(),
		Enabled: raw.Enabled,
		Name:    raw.Name,
		Anchor:  raw.Anchor,
		Pos:     raw.Pos,
		Opacity: raw.Opacity,
		Trigger: raw.Trigger,
		Filter:  raw.Filter,
	}
	return nil
}

type typeTag struct {
	Type Type `json:"type"`
}

// MarshalJSON flattens common fields, the type tag, kind fields, style and conditions into one object
func (e Element) MarshalJSON() ([]byte, error) {
	if e.Kind == nil {
		return nil, errMissingKind
	}
	return jsonshape.Merge(e.Common, typeTag{Type: e.Kind.Type()}, e.Kind)
}

// UnmarshalJSON reads the flattened shape, accepting legacy type tags and keys
func (e *Element) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	t, err := ParseType(tag.Type)
	if err != nil {
		return err
	}
	kind, err := NewKind(t)
	if err != nil {
		return err
	}

	common := NewCommon("")
	if err := common.UnmarshalJSON(data); err != nil {
		return err
	}
	if err := kind.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%s %q: %w", t, common.Name, err)
	}

	*e = Element{Common: common, Kind: kind}
	return nil
}

// decodeElements decodes a list of elements, skipping and logging the ones that fail
func decodeElements(raws []json.RawMessage) []Element {
	if raws == nil {
		return nil
	}
	elements := make([]Element, 0, len(raws))
	for i, raw := range raws {
		var e Element
		if err := json.Unmarshal(raw, &e); err != nil {
			log.Printf("[ELEMENT] Skipping element %d: %v", i, err)
			continue
		}
		elements = append(elements, e)
	}
	return elements
}

func nonNil(elements []Element) []Element {
	if elements == nil {
		return []Element{}
	}
	return elements
}

func (g *Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Members []Element `json:"members"`
	}{nonNil(g.Members)})
}

func (g *Group) UnmarshalJSON(data []byte) error {
	data, err := jsonshape.Rename(data, groupAliases)
	if err != nil {
		return err
	}
	var raw struct {
		Members []json.RawMessage `json:"members"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.Members = decodeElements(raw.Members)
	return nil
}

type iconJSON struct {
	Icon         draw.Icon `json:"icon"`
	Size         draw.Vec2 `json:"size"`
	ShowDuration bool      `json:"show_duration"`
	ShowStacks   bool      `json:"show_stacks"`
}

func (i *IconElement) MarshalJSON() ([]byte, error) {
	return jsonshape.Merge(iconJSON{
		Icon:         i.Icon,
		Size:         i.Size,
		ShowDuration: i.ShowDuration,
		ShowStacks:   i.ShowStacks,
	}, i.Props)
}

func (i *IconElement) UnmarshalJSON(data []byte) error {
	raw := iconJSON{Icon: i.Icon, Size: i.Size, ShowDuration: i.ShowDuration, ShowStacks: i.ShowStacks}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := i.Props.UnmarshalJSON(data); err != nil {
		return err
	}
	i.Icon, i.Size, i.ShowDuration, i.ShowStacks = raw.Icon, raw.Size, raw.ShowDuration, raw.ShowStacks
	return nil
}

type iconListJSON struct {
	Icons        []ListIcon     `json:"icons"`
	Size         draw.Vec2      `json:"size"`
	Direction    draw.Direction `json:"direction"`
	Spacing      float32        `json:"spacing"`
	ShowDuration bool           `json:"show_duration"`
	ShowStacks   bool           `json:"show_stacks"`
}

func (l *IconList) MarshalJSON() ([]byte, error) {
	icons := l.Icons
	if icons == nil {
		icons = []ListIcon{}
	}
	return jsonshape.Merge(iconListJSON{
		Icons:        icons,
		Size:         l.Size,
		Direction:    l.Direction,
		Spacing:      l.Spacing,
		ShowDuration: l.ShowDuration,
		ShowStacks:   l.ShowStacks,
	}, l.Props)
}

func (l *IconList) UnmarshalJSON(data []byte) error {
	raw := iconListJSON{
		Size:         l.Size,
		Direction:    l.Direction,
		Spacing:      l.Spacing,
		ShowDuration: l.ShowDuration,
		ShowStacks:   l.ShowStacks,
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := l.Props.UnmarshalJSON(data); err != nil {
		return err
	}
	l.Icons = raw.Icons
	l.Size, l.Direction, l.Spacing = raw.Size, raw.Direction, raw.Spacing
	l.ShowDuration, l.ShowStacks = raw.ShowDuration, raw.ShowStacks
	return nil
}

type textJSON struct {
	Text   string     `json:"text"`
	Align  draw.Align `json:"align"`
	Shadow bool       `json:"shadow"`
}

func (t *Text) MarshalJSON() ([]byte, error) {
	return jsonshape.Merge(textJSON{Text: t.Text, Align: t.Align, Shadow: t.Shadow}, t.Props)
}

func (t *Text) UnmarshalJSON(data []byte) error {
	data, err := jsonshape.Rename(data, textAliases)
	if err != nil {
		return err
	}
	raw := textJSON{Text: t.Text, Align: t.Align, Shadow: t.Shadow}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := t.Props.UnmarshalJSON(data); err != nil {
		return err
	}
	t.Text, t.Align, t.Shadow = raw.Text, raw.Align, raw.Shadow
	return nil
}

type barJSON struct {
	ProgressValue progress.Value `json:"progress_value"`
	LowerBound    float32        `json:"lower_bound"`
	UpperBound    float32        `json:"upper_bound"`
	Size          draw.Vec2      `json:"size"`
	Align         draw.Align     `json:"align"`
	Direction     draw.Direction `json:"direction"`
	Ticks         []float32      `json:"ticks,omitempty"`
}

func (b *Bar) MarshalJSON() ([]byte, error) {
	return jsonshape.Merge(barJSON{
		ProgressValue: b.ProgressValue,
		LowerBound:    b.LowerBound,
		UpperBound:    b.UpperBound,
		Size:          b.Size,
		Align:         b.Align,
		Direction:     b.Direction,
		Ticks:         b.Ticks,
	}, b.Props)
}

func (b *Bar) UnmarshalJSON(data []byte) error {
	data, err := jsonshape.Rename(data, barAliases)
	if err != nil {
		return err
	}
	raw := barJSON{
		ProgressValue: b.ProgressValue,
		LowerBound:    b.LowerBound,
		UpperBound:    b.UpperBound,
		Size:          b.Size,
		Align:         b.Align,
		Direction:     b.Direction,
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !raw.ProgressValue.Valid() {
		return fmt.Errorf("unknown progress value %q", raw.ProgressValue)
	}
	if err := b.Props.UnmarshalJSON(data); err != nil {
		return err
	}
	b.ProgressValue, b.LowerBound, b.UpperBound = raw.ProgressValue, raw.LowerBound, raw.UpperBound
	b.Size, b.Align, b.Direction, b.Ticks = raw.Size, raw.Align, raw.Direction, raw.Ticks
	return nil
}

type packJSON struct {
	Layer    int       `json:"layer"`
	Elements []Element `json:"elements"`
}

// MarshalJSON flattens the pack's common fields with its layer and elements
func (p Pack) MarshalJSON() ([]byte, error) {
	return jsonshape.Merge(p.Common, packJSON{Layer: p.Layer, Elements: nonNil(p.Elements)})
}

// UnmarshalJSON reads a pack, skipping elements that fail to decode
func (p *Pack) UnmarshalJSON(data []byte) error {
	data, err := jsonshape.Rename(data, packAliases)
	if err != nil {
		return err
	}

	pack := NewPack("")
	if err := pack.Common.UnmarshalJSON(data); err != nil {
		return err
	}
	var raw struct {
		Layer    int               `json:"layer"`
		Elements []json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	pack.Layer = raw.Layer
	pack.Elements = decodeElements(raw.Elements)

	*p = pack
	return nil
}
