package gormstore

import "sync"

// rowBatch accumulates rows between writer flushes. Handlers push from the
// feed goroutines while the writer drains on its own tick.
type rowBatch[T any] struct {
	mu   sync.Mutex
	rows []T
}

func (b *rowBatch[T]) Push(row T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rows = append(b.rows, row)
}

// Drain returns the accumulated rows and resets the batch.
func (b *rowBatch[T]) Drain() []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	rows := b.rows
	b.rows = make([]T, 0, cap(rows))
	return rows
}

func (b *rowBatch[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.rows)
}
