package mapx

import (
	"github.com/xgzlucario/mapbench/internal/iface"
)

var _ iface.MapI = (*StdMap)(nil)

// StdMap wraps the builtin runtime map, the baseline every flat backend
// is compared against.
type StdMap struct {
	m map[int64]int64
}

func NewStd(capacity int) iface.MapI {
	return &StdMap{m: make(map[int64]int64, capacity)}
}

func (m *StdMap) Set(key, val int64) {
	m.m[key] = val
}

func (m *StdMap) Get(key int64) (int64, bool) {
	v, ok := m.m[key]
	return v, ok
}

func (m *StdMap) Incr(key int64) int64 {
	v := m.m[key] + 1
	m.m[key] = v
	return v
}

func (m *StdMap) Remove(key int64) bool {
	_, ok := m.m[key]
	delete(m.m, key)
	return ok
}

func (m *StdMap) Len() int { return len(m.m) }

func (m *StdMap) Scan(fn func(key, val int64)) {
	for k, v := range m.m {
		fn(k, v)
	}
}
