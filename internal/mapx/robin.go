package mapx

import (
	"github.com/tidwall/hashmap"

	"github.com/xgzlucario/mapbench/internal/iface"
)

var _ iface.MapI = (*RobinMap)(nil)

// RobinMap wraps tidwall's robin-hood open-addressing hashmap. The
// backend sizes itself, so the capacity hint is unused.
type RobinMap struct {
	m *hashmap.Map[int64, int64]
}

func NewRobin(int) iface.MapI {
	return &RobinMap{m: &hashmap.Map[int64, int64]{}}
}

func (m *RobinMap) Set(key, val int64) {
	m.m.Set(key, val)
}

func (m *RobinMap) Get(key int64) (int64, bool) {
	return m.m.Get(key)
}

func (m *RobinMap) Incr(key int64) int64 {
	v, _ := m.m.Get(key)
	v++
	m.m.Set(key, v)
	return v
}

func (m *RobinMap) Remove(key int64) bool {
	_, ok := m.m.Delete(key)
	return ok
}

func (m *RobinMap) Len() int { return m.m.Len() }

func (m *RobinMap) Scan(fn func(key, val int64)) {
	m.m.Scan(func(key, val int64) bool {
		fn(key, val)
		return true
	})
}
