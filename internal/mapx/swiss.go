package mapx

import (
	"github.com/cockroachdb/swiss"

	"github.com/xgzlucario/mapbench/internal/iface"
)

var _ iface.MapI = (*SwissMap)(nil)

// SwissMap wraps cockroachdb's swiss table, a group-probing
// open-addressing map in the abseil mold.
type SwissMap struct {
	m *swiss.Map[int64, int64]
}

func NewSwiss(capacity int) iface.MapI {
	return &SwissMap{m: swiss.New[int64, int64](capacity)}
}

func (m *SwissMap) Set(key, val int64) {
	m.m.Put(key, val)
}

func (m *SwissMap) Get(key int64) (int64, bool) {
	return m.m.Get(key)
}

// Incr pays one probe for the read and one for the write; swiss has no
// find-or-insert hook.
func (m *SwissMap) Incr(key int64) int64 {
	v, _ := m.m.Get(key)
	v++
	m.m.Put(key, v)
	return v
}

func (m *SwissMap) Remove(key int64) bool {
	_, ok := m.m.Get(key)
	m.m.Delete(key)
	return ok
}

func (m *SwissMap) Len() int { return m.m.Len() }

func (m *SwissMap) Scan(fn func(key, val int64)) {
	m.m.All(func(key, val int64) bool {
		fn(key, val)
		return true
	})
}
