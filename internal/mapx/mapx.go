package mapx

import (
	"github.com/xgzlucario/mapbench/internal/iface"
)

// Factory builds an empty backend with an optional capacity hint.
// A hint of 0 means the backend's default sizing.
type Factory struct {
	Name string
	New  func(capacity int) iface.MapI
}

// Factories returns every backend in registration order: the builtin
// runtime map first as the baseline, then the three open-addressing maps.
func Factories() []Factory {
	return []Factory{
		{Name: "std", New: NewStd},
		{Name: "swiss", New: NewSwiss},
		{Name: "robin", New: NewRobin},
		{Name: "open", New: NewOpen},
	}
}

// Lookup resolves a backend factory by name.
func Lookup(name string) (Factory, bool) {
	for _, f := range Factories() {
		if f.Name == name {
			return f, true
		}
	}
	return Factory{}, false
}
