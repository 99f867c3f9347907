package host

import (
	"sync"
	"time"
)

// DefaultDebounce is how long a document must stay quiet before it is organized
const DefaultDebounce = 100 * time.Millisecond

// Gate coalesces bursts of triggers per key into a single call of fn, made once
// the key has been quiet for the configured delay. Calls for the same key never overlap.
type Gate struct {
	delay time.Duration
	fn    func(key string)

	mu      sync.Mutex
	seq     uint64
	timers  map[string]*time.Timer
	gens    map[string]uint64 // latest trigger per key, dropped once that trigger has run
	locks   map[string]*sync.Mutex
	stopped bool
	running sync.WaitGroup
}

// NewGate creates a gate calling fn; a non-positive delay uses DefaultDebounce
func NewGate(delay time.Duration, fn func(key string)) *Gate {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Gate{
		delay:  delay,
		fn:     fn,
		timers: make(map[string]*time.Timer),
		gens:   make(map[string]uint64),
		locks:  make(map[string]*sync.Mutex),
	}
}

// Trigger (re)starts the quiet period of key
func (g *Gate) Trigger(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stopped {
		return
	}

	if t, ok := g.timers[key]; ok {
		t.Stop()
	}
	g.seq++
	gen := g.seq
	g.gens[key] = gen
	g.timers[key] = time.AfterFunc(g.delay, func() { g.fire(key, gen) })
}

func (g *Gate) fire(key string, gen uint64) {
	g.mu.Lock()
	// a newer trigger superseded this timer after it had already fired
	if g.stopped || g.gens[key] != gen {
		g.mu.Unlock()
		return
	}
	delete(g.timers, key)
	lock, ok := g.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		g.locks[key] = lock
	}
	g.running.Add(1)
	g.mu.Unlock()

	defer g.running.Done()
	lock.Lock()
	defer lock.Unlock()
	g.fn(key)
	g.release(key, gen)
}

// release forgets key unless it was triggered again while fn was running
func (g *Gate) release(key string, gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gens[key] == gen {
		delete(g.gens, key)
		delete(g.locks, key)
	}
}

// Pending returns the number of keys waiting for their quiet period to end
func (g *Gate) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.timers)
}

// Stop cancels pending triggers and waits for running calls to finish
func (g *Gate) Stop() {
	g.mu.Lock()
	g.stopped = true
	for key, t := range g.timers {
		t.Stop()
		delete(g.timers, key)
	}
	g.mu.Unlock()

	g.running.Wait()
}
