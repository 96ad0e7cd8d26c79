package mapx

import (
	"github.com/zyedidia/generic"
	"github.com/zyedidia/generic/hashmap"

	"github.com/xgzlucario/mapbench/internal/iface"
)

var _ iface.MapI = (*OpenMap)(nil)

func hashInt64(k int64) uint64 {
	return generic.HashUint64(uint64(k))
}

// OpenMap wraps zyedidia's linear-probing open-addressing hashmap.
type OpenMap struct {
	m *hashmap.Map[int64, int64]
}

func NewOpen(capacity int) iface.MapI {
	if capacity == 0 {
		capacity = 8
	}
	return &OpenMap{
		m: hashmap.New[int64, int64](uint64(capacity), generic.Equals[int64], hashInt64),
	}
}

func (m *OpenMap) Set(key, val int64) {
	m.m.Put(key, val)
}

func (m *OpenMap) Get(key int64) (int64, bool) {
	return m.m.Get(key)
}

func (m *OpenMap) Incr(key int64) int64 {
	v, _ := m.m.Get(key)
	v++
	m.m.Put(key, v)
	return v
}

func (m *OpenMap) Remove(key int64) bool {
	_, ok := m.m.Get(key)
	m.m.Remove(key)
	return ok
}

func (m *OpenMap) Len() int { return m.m.Size() }

func (m *OpenMap) Scan(fn func(key, val int64)) {
	m.m.Each(func(key, val int64) {
		fn(key, val)
	})
}
