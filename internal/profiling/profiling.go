package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Per-stage wall time totals for one CLI run.

// Stage aggregates every Track call made under one name.
type Stage struct {
	Total time.Duration
	Calls int
}

var (
	mu     sync.Mutex
	stages = make(map[string]Stage)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("palette.Chain")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		s := stages[name]
		s.Total += d
		s.Calls++
		stages[name] = s
		mu.Unlock()
	}
}

// Reset clears all recorded stages.
func Reset() {
	mu.Lock()
	clear(stages)
	mu.Unlock()
}

// Snapshot returns a copy of the recorded stages.
func Snapshot() map[string]Stage {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Stage, len(stages))
	for k, v := range stages {
		out[k] = v
	}
	return out
}

// SumWithPrefix totals every stage whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	var total time.Duration
	for name, s := range Snapshot() {
		if strings.HasPrefix(name, prefix) {
			total += s.Total
		}
	}
	return total
}

// TopN formats the n slowest stages.
// Example: "terrain.Derive:0.4ms(1), scene.Build:0.1ms(1)"
func TopN(n int) string {
	type pair struct {
		name string
		Stage
	}
	snap := Snapshot()
	list := make([]pair, 0, len(snap))
	for k, v := range snap {
		list = append(list, pair{name: k, Stage: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Total == list[j].Total {
			return list[i].name < list[j].name
		}
		return list[i].Total > list[j].Total
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		ms := float64(p.Total.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms(%d)", p.name, ms, p.Calls))
	}
	return strings.Join(parts, ", ")
}
