package element

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
	"github.com/KirkDiggler/overlay-engine/internal/domain/props"
)

// Text draws a format string filled in from the active.
//
// Format codes:
//
//	%n  element name
//	%i  intensity (stacks, level or ammo)
//	%c  current amount, short form
//	%C  current amount, full precision
//	%m  max amount, short form
//	%M  max amount, full precision
//	%p  fill percent
//	%%  literal percent sign
type Text struct {
	Text   string
	Align  draw.Align
	Shadow bool
	Props  props.Props[TextStyle, TextStylePartial]
}

func NewText() *Text {
	return &Text{
		Text:   "%i",
		Align:  draw.AlignCenter,
		Shadow: true,
		Props:  props.New[TextStyle, TextStylePartial](defaultTextStyle()),
	}
}

func (t *Text) update(ctx *frame.Context, active *progress.Active) {
	t.Props.Update(ctx, active)
}

func (t *Text) render(rc *RenderContext, common *Common, active *progress.Active) {
	style := t.Props.Current()
	text := FormatText(t.Text, common.Name, active, rc.Now, rc.Pretty)
	size := rc.Surface.TextSize(text, style.Scale)
	pos := t.Align.Offset(rc.Origin(), size)
	rc.Surface.Text(text, pos, style.Scale, rc.color(style.Color), t.Shadow)
	rc.highlight(common, pos, pos.Add(size))
}

func (t *Text) clone() *Text {
	clone := *t
	clone.Props = t.Props.Clone()
	return &clone
}

// FormatText expands format codes. Codes that need an active expand to nothing without one;
// unknown codes are kept as written.
func FormatText(format, name string, active *progress.Active, now uint32, pretty bool) string {
	if !strings.ContainsRune(format, '%') {
		return format
	}

	var b strings.Builder
	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '%' || i+1 >= len(runes) {
			b.WriteRune(r)
			continue
		}
		i++
		code := runes[i]
		switch code {
		case '%':
			b.WriteRune('%')
		case 'n':
			b.WriteString(name)
		case 'i', 'c', 'C', 'm', 'M', 'p':
			if active != nil {
				b.WriteString(formatCode(code, active, now, pretty))
			}
		default:
			b.WriteRune('%')
			b.WriteRune(code)
		}
	}
	return b.String()
}

func formatCode(code rune, active *progress.Active, now uint32, pretty bool) string {
	switch code {
	case 'i':
		return progress.FormatInt(active.Intensity())
	case 'c':
		return active.CurrentText(progress.ValuePrimary, now, pretty)
	case 'C':
		return active.CurrentText(progress.ValuePrimary, now, false)
	case 'm':
		return active.MaxText(progress.ValuePrimary, now, pretty)
	case 'M':
		return active.MaxText(progress.ValuePrimary, now, false)
	case 'p':
		fill, ok := active.Fill(progress.ValuePrimary, now)
		if !ok {
			return ""
		}
		return fmt.Sprintf("%.0f", fill*100)
	}
	return ""
}
