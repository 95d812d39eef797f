package progress

import (
	"fmt"
	"strconv"
)

// FormatDuration renders milliseconds as m:ss above a minute, whole seconds above ten seconds
// and seconds with one decimal below that.
func FormatDuration(ms uint32) string {
	switch {
	case ms >= 60_000:
		secs := ms / 1000
		return fmt.Sprintf("%d:%02d", secs/60, secs%60)
	case ms >= 10_000:
		return strconv.FormatUint(uint64(ms/1000), 10)
	default:
		return fmt.Sprintf("%d.%d", ms/1000, (ms%1000)/100)
	}
}

// FormatSeconds renders milliseconds as seconds with one decimal
func FormatSeconds(ms uint32) string {
	return fmt.Sprintf("%.1f", float64(ms)/1000)
}

// FormatAmount shortens large numbers with k/m suffixes
func FormatAmount(amount uint32) string {
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("%.1fm", float64(amount)/1_000_000)
	case amount >= 10_000:
		return fmt.Sprintf("%.1fk", float64(amount)/1_000)
	default:
		return FormatInt(amount)
	}
}

// FormatInt renders the amount in full
func FormatInt(amount uint32) string {
	return strconv.FormatUint(uint64(amount), 10)
}
