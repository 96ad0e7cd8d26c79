package mapx

import (
	"testing"

	"github.com/xgzlucario/mapbench/internal/iface"
)

const benchN = 512

var (
	sinkVal int64
	sinkOK  bool
)

func genMap(m iface.MapI, n int) iface.MapI {
	for i := 0; i < n; i++ {
		m.Set(int64(i), int64(i))
	}
	return m
}

func BenchmarkMap(b *testing.B) {
	for _, f := range Factories() {
		benchMapI(f.Name, f.New, b)
	}
}

func benchMapI(name string, newf func(int) iface.MapI, b *testing.B) {
	b.Run(name+"/set", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			genMap(newf(0), benchN)
		}
	})
	b.Run(name+"/get", func(b *testing.B) {
		m := genMap(newf(0), benchN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sinkVal, sinkOK = m.Get(int64(i % benchN))
		}
	})
	b.Run(name+"/incr", func(b *testing.B) {
		m := newf(0)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sinkVal = m.Incr(int64(i % benchN))
		}
	})
	b.Run(name+"/scan", func(b *testing.B) {
		m := genMap(newf(0), benchN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m.Scan(func(int64, int64) {})
		}
	})
}
