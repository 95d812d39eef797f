package document

import "github.com/KirkDiggler/overlay-engine/internal/domain/element"

// Stats summarizes a pack for listings
type Stats struct {
	Elements   int
	Depth      int
	Conditions int
	ByType     map[element.Type]int
}

// Summarize counts the elements of a pack by type
func Summarize(pack *element.Pack) Stats {
	stats := Stats{ByType: make(map[element.Type]int)}
	element.Walk(pack.Elements, func(e *element.Element, depth int) bool {
		stats.Elements++
		stats.ByType[e.Type()]++
		stats.Depth = max(stats.Depth, depth+1)
		stats.Conditions += conditionCount(e.Kind)
		return true
	})
	return stats
}

func conditionCount(kind element.Kind) int {
	switch k := kind.(type) {
	case *element.IconElement:
		return len(k.Props.Conditions)
	case *element.IconList:
		return len(k.Props.Conditions)
	case *element.Text:
		return len(k.Props.Conditions)
	case *element.Bar:
		return len(k.Props.Conditions)
	case *element.Group:
		return 0
	}
	return 0
}
