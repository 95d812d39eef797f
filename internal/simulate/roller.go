package simulate

import (
	"math/rand/v2"
	"sync"
)

// Roller picks the random phase offsets of a scenario.
// Inject a ScriptedRoller in tests to pin them.
type Roller interface {
	// IntN returns a value in [0, n). n is always positive.
	IntN(n int) int
}

type seededRoller struct {
	rng *rand.Rand
}

// NewSeededRoller returns a roller that yields the same sequence for the same seed
func NewSeededRoller(seed uint64) Roller {
	return &seededRoller{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *seededRoller) IntN(n int) int {
	return r.rng.IntN(n)
}

// ScriptedRoller returns predetermined values in order, wrapped into range, then zeros
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
	index  int
}

// NewScriptedRoller creates a roller that plays back values
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values}
}

func (r *ScriptedRoller) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index >= len(r.values) {
		return 0
	}
	v := r.values[r.index]
	r.index++
	return ((v % n) + n) % n
}
