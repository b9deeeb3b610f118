// Package walk moves independent entities forward along a sequence of
// samples, one sample per step.
//
// Every entity has its own cursor. The first [Walker.Step] of an entity
// registers it and returns the first sample. Each following step advances
// the cursor by one and returns the sample there, until the last sample has
// been returned; from then on, steps report exhaustion and the cursor stays
// put.
//
// Walkers are safe for concurrent use. Cursors are spread over shards
// selected by a hash of the entity ID, each protected by its own mutex, so
// entities in different shards never contend.
package walk

import (
	"sync"

	"go.uber.org/zap"
)

// DefaultShards is the number of cursor shards used when none is configured.
const DefaultShards = 16

type config struct {
	log    *zap.Logger
	shards int
}

// Option configures a [Walker].
type Option func(*config)

// WithLogger sets the logger that receives debug records about entities
// registering and exhausting. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithShards sets the number of cursor shards. Values below 1 select
// [DefaultShards].
func WithShards(n int) Option {
	return func(c *config) {
		c.shards = n
	}
}

type shard struct {
	mu      sync.Mutex
	cursors map[EntityID]Cursor
}

// Walker tracks entity cursors over an immutable sequence of samples.
type Walker[T any] struct {
	samples []T
	shards  []shard
	log     *zap.Logger
}

// New returns a walker over samples. The walker keeps a reference to the
// slice; it must not be modified afterwards.
func New[T any](samples []T, opts ...Option) *Walker[T] {
	cfg := config{
		log:    zap.NewNop(),
		shards: DefaultShards,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.shards < 1 {
		cfg.shards = DefaultShards
	}
	w := &Walker[T]{
		samples: samples,
		shards:  make([]shard, cfg.shards),
		log:     cfg.log,
	}
	for i := range w.shards {
		w.shards[i].cursors = make(map[EntityID]Cursor)
	}
	return w
}

func (w *Walker[T]) shard(id EntityID) *shard {
	return &w.shards[id.hash()%uint64(len(w.shards))]
}

// Samples returns the number of samples.
func (w *Walker[T]) Samples() int {
	return len(w.samples)
}

// Step moves the entity one sample forward and returns that sample.
//
// An unregistered entity is registered at the first sample, which is
// returned without advancing. Once the entity's cursor is at the last
// sample, Step returns false and leaves the cursor where it is; every later
// call returns false as well. With no samples at all, entities are exhausted
// from their first step.
func (w *Walker[T]) Step(id EntityID) (T, bool) {
	var zero T
	sh := w.shard(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	c, ok := sh.cursors[id]
	if !ok {
		if len(w.samples) == 0 {
			sh.cursors[id] = Cursor{Exhausted: true}
			w.log.Debug("entity exhausted", zap.Stringer("entity", id), zap.Int("index", 0))
			return zero, false
		}
		sh.cursors[id] = Cursor{}
		w.log.Debug("entity registered", zap.Stringer("entity", id))
		return w.samples[0], true
	}
	if c.Exhausted {
		return zero, false
	}
	if c.Index >= len(w.samples)-1 {
		c.Exhausted = true
		sh.cursors[id] = c
		w.log.Debug("entity exhausted", zap.Stringer("entity", id), zap.Int("index", c.Index))
		return zero, false
	}
	c.Index++
	sh.cursors[id] = c
	return w.samples[c.Index], true
}

// State returns the life cycle state of the entity.
func (w *Walker[T]) State(id EntityID) State {
	c, ok := w.Cursor(id)
	if !ok {
		return Unregistered
	}
	return c.State()
}

// Cursor returns the entity's cursor and whether the entity is registered.
func (w *Walker[T]) Cursor(id EntityID) (Cursor, bool) {
	sh := w.shard(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	c, ok := sh.cursors[id]
	return c, ok
}

// Position returns the index of the sample the entity is at.
func (w *Walker[T]) Position(id EntityID) (int, bool) {
	c, ok := w.Cursor(id)
	return c.Index, ok
}

// Reset forgets the entity's cursor. Its next step registers it anew.
func (w *Walker[T]) Reset(id EntityID) {
	sh := w.shard(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	delete(sh.cursors, id)
}

// Entities returns the number of registered entities.
func (w *Walker[T]) Entities() int {
	var n int
	for i := range w.shards {
		sh := &w.shards[i]
		sh.mu.Lock()
		n += len(sh.cursors)
		sh.mu.Unlock()
	}
	return n
}

// Cursors returns a snapshot of all cursors. Shards are locked one at a
// time, so steps that happen concurrently may or may not be reflected.
func (w *Walker[T]) Cursors() map[EntityID]Cursor {
	out := make(map[EntityID]Cursor)
	for i := range w.shards {
		sh := &w.shards[i]
		sh.mu.Lock()
		for id, c := range sh.cursors {
			out[id] = c
		}
		sh.mu.Unlock()
	}
	return out
}
