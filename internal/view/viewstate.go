package view

import "sync"

// generations tracks a monotonically increasing counter per view name.
// Each refresh bumps the counter before fetching; once the fetch returns
// the handler compares its number against the current one and discards
// the result if a newer refresh has started in the meantime. This keeps
// a slow earlier response from overwriting a faster later one.
type generations struct {
	mu       sync.Mutex
	counters map[string]uint64
}

func newGenerations() *generations {
	return &generations{counters: make(map[string]uint64)}
}

// next bumps and returns the generation for view.
func (g *generations) next(view string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counters[view]++
	return g.counters[view]
}

// current returns the latest generation issued for view.
func (g *generations) current(view string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counters[view]
}

// stale reports whether gen has been superseded for view.
func (g *generations) stale(view string, gen uint64) bool {
	return g.current(view) != gen
}
