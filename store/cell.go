package store

import "sync"

// Cell binds one named slot in the store to an in-memory value with
// subscriber notification. Handlers run on concurrent goroutines, so the
// read-modify-write in Update holds the cell mutex; within one process a
// mutation is atomic. Two processes sharing a data directory only see each
// other's writes at load time.
type Cell[T any] struct {
	store *Store
	key   string

	mu   sync.Mutex
	val  T
	subs map[int]func(T)
	next int
}

// NewCell loads the initial value from the store; a missing or shape-invalid
// stored value is replaced by def.
func NewCell[T any](s *Store, key string, def T) *Cell[T] {
	c := &Cell[T]{store: s, key: key, val: def, subs: map[int]func(T){}}
	var loaded T
	if s.Read(key, &loaded) {
		c.val = loaded
	}
	return c
}

func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.val
}

func (c *Cell[T]) Set(v T) {
	c.Update(func(T) T { return v })
}

// Update applies fn to the current value, persists the result and notifies
// subscribers synchronously before returning.
func (c *Cell[T]) Update(fn func(T) T) {
	c.mu.Lock()
	c.val = fn(c.val)
	v := c.val
	subs := make([]func(T), 0, len(c.subs))
	for _, sub := range c.subs {
		subs = append(subs, sub)
	}
	c.mu.Unlock()

	c.store.Write(c.key, v)
	for _, sub := range subs {
		sub(v)
	}
}

// Subscribe registers fn for change notification and returns an unsubscribe
// function.
func (c *Cell[T]) Subscribe(fn func(T)) func() {
	c.mu.Lock()
	id := c.next
	c.next++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Reset puts the cell back to v and removes the persisted slot entirely.
func (c *Cell[T]) Reset(v T) {
	c.mu.Lock()
	c.val = v
	subs := make([]func(T), 0, len(c.subs))
	for _, sub := range c.subs {
		subs = append(subs, sub)
	}
	c.mu.Unlock()

	c.store.Delete(c.key)
	for _, sub := range subs {
		sub(v)
	}
}
