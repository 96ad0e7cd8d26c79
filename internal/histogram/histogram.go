// Package histogram implements frequency-counting sort on top of a
// hashmap: keys are tallied into the map, then the input slice is
// rebuilt in the map's scan order.
package histogram

import (
	"github.com/xgzlucario/mapbench/internal/iface"
)

// Sort counts every key of data into m, then overwrites data in place
// by walking m and emitting each key count times. Equal keys come out
// adjacent; run order follows m's scan order, so the result is a
// grouping of the input, not an ordering by key.
// m must be empty on entry and holds the final counts on return.
func Sort(data []int64, m iface.MapI) []int64 {
	for _, k := range data {
		m.Incr(k)
	}

	i := 0
	m.Scan(func(key, count int64) {
		for ; count > 0; count-- {
			data[i] = key
			i++
		}
	})
	return data
}
