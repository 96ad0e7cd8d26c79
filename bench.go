package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/dustin/go-humanize"

	"github.com/xgzlucario/mapbench/internal/dataset"
	"github.com/xgzlucario/mapbench/internal/histogram"
	"github.com/xgzlucario/mapbench/internal/iface"
	"github.com/xgzlucario/mapbench/internal/mapx"
	"github.com/xgzlucario/mapbench/internal/pkg"
	"github.com/xgzlucario/mapbench/internal/probe"
)

var previousPause time.Duration

func gcPause() time.Duration {
	runtime.GC()
	var stats debug.GCStats
	debug.ReadGCStats(&stats)
	pause := stats.PauseTotal - previousPause
	previousPause = stats.PauseTotal
	return pause
}

// runHistogram sweeps the counting workload. Every round sorts a fresh
// copy of the same sequence; copying stays outside the timed window.
func runHistogram(factories []mapx.Factory) {
	rounds := configGetRounds()
	sizes := pkg.SizeRange(configGetHistogramMin(), configGetHistogramMax(), 8)

	log.Info().Msgf("run histogram sort: sizes=%v rounds=%d", sizes, rounds)

	for _, f := range factories {
		for _, n := range sizes {
			data := dataset.Random[int64](n)
			buf := make([]int64, n)

			q := pkg.NewQuantile(rounds)
			var timed time.Duration

			for i := 0; i < rounds; i++ {
				copy(buf, data)
				m := f.New(0)

				start := time.Now()
				histogram.Sort(buf, m)
				cost := time.Since(start)

				timed += cost
				q.Add(float64(cost))

				if i == 0 && configGetVerify() {
					verifyHistogram(data, buf, m)
				}
			}

			keysPerSec := float64(n*rounds) / timed.Seconds()
			log.Info().Msgf("%s/%d: avg=%v, %s keys/s",
				f.Name, n, timed/time.Duration(rounds), humanize.Comma(int64(keysPerSec)))
			if debugMode {
				q.Print()
			}
		}
	}
	memReport()
}

// runAccess sweeps the lookup workload. Setup is untimed; the loop
// body is one probe per iteration.
func runAccess(factories []mapx.Factory) {
	lookups := configGetAccessLookups()
	sizes := pkg.SizeRange(configGetAccessMin(), configGetAccessMax(), 8)

	log.Info().Msgf("run random access: sizes=%v lookups=%d", sizes, lookups)

	for _, f := range factories {
		for _, n := range sizes {
			p := probe.New(f.New, n)

			q := pkg.NewQuantile(lookups)
			hits := 0

			start := time.Now()
			for i := 0; i < lookups; i++ {
				t0 := time.Now()
				_, ok := p.Next()
				q.Add(float64(time.Since(t0)))
				if ok {
					hits++
				}
			}
			cost := time.Since(start)

			if configGetVerify() && hits != lookups {
				log.Fatal().Msgf("%s/%d: %d lookups missed", f.Name, n, lookups-hits)
			}

			lookupsPerSec := float64(lookups) / cost.Seconds()
			log.Info().Msgf("%s/%d: avg=%v, %s lookups/s, entries=%d",
				f.Name, n, cost/time.Duration(lookups), humanize.Comma(int64(lookupsPerSec)), p.Map().Len())
			if debugMode {
				q.Print()
			}
		}
	}
	memReport()
}

// verifyHistogram cross-checks one rebuilt sequence: distinct keys
// match the source, counts sum to the source length.
func verifyHistogram(src, out []int64, m iface.MapI) {
	want := mapset.NewThreadUnsafeSetWithSize[int64](len(src))
	for _, k := range src {
		want.Add(k)
	}
	got := mapset.NewThreadUnsafeSetWithSize[int64](len(out))
	for _, k := range out {
		got.Add(k)
	}

	var total int64
	m.Scan(func(_, count int64) { total += count })

	if !want.Equal(got) || total != int64(len(src)) || m.Len() != want.Cardinality() {
		log.Fatal().Msgf("verify failed: distinct=%d want=%d, total=%d want=%d",
			got.Cardinality(), want.Cardinality(), total, len(src))
	}
	log.Debug().Msgf("verify ok: distinct=%d, total=%d", m.Len(), total)
}

func memReport() {
	var mem runtime.MemStats
	var stat debug.GCStats

	runtime.ReadMemStats(&mem)
	debug.ReadGCStats(&stat)

	fmt.Println("heap inuse:", humanize.IBytes(mem.HeapInuse))
	fmt.Println("heap object:", mem.HeapObjects/1024, "k")
	fmt.Println("gc:", stat.NumGC)
	fmt.Println("pause:", gcPause())
}
