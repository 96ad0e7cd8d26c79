// Package probe implements the random-access lookup workload: a map is
// pre-populated with random keys, then probed point by point along a
// shuffled copy of those keys.
package probe

import (
	"slices"

	"github.com/xgzlucario/mapbench/internal/dataset"
	"github.com/xgzlucario/mapbench/internal/iface"
)

// Prober owns one populated map and a circular cursor over a shuffled
// lookup sequence. Every lookup key was inserted during setup, so each
// probe hits unless a key is removed out of band.
type Prober struct {
	m       iface.MapI
	lookups []int64
	cursor  int
}

// New draws n keys from [0, 2n], inserts each as its own value into a
// map pre-sized to n, and shuffles an independent copy of the keys as
// the lookup sequence. Duplicate keys collapse in the map but stay in
// the lookup sequence, so the map may hold fewer than n entries.
func New(newMap func(capacity int) iface.MapI, n int) *Prober {
	keys := dataset.RandomBounded[int64](n, 2*n)

	m := newMap(n)
	for _, k := range keys {
		m.Set(k, k)
	}

	lookups := slices.Clone(keys)
	dataset.Shuffle(lookups)

	return &Prober{m: m, lookups: lookups}
}

// Next looks up the key under the cursor and advances it, wrapping to
// the start after the last element. It returns the stored value and
// whether the key was found.
func (p *Prober) Next() (int64, bool) {
	v, ok := p.m.Get(p.lookups[p.cursor])
	p.cursor++
	if p.cursor == len(p.lookups) {
		p.cursor = 0
	}
	return v, ok
}

// Len is the lookup sequence length, one full cursor cycle.
func (p *Prober) Len() int {
	return len(p.lookups)
}

// Map exposes the populated map for inspection and out-of-band edits.
func (p *Prober) Map() iface.MapI {
	return p.m
}
