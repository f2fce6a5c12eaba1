package slots

import (
	"container/heap"
	"iter"
)

type slot[T any] struct {
	value T
	used  bool
}

// Pool is a tombstoned slot container.
//
// Pool is not safe for concurrent use.
type Pool[T any] struct {
	slots []slot[T]
	free  indexHeap
	live  int
}

// New creates an empty pool with room for capHint entries.
func New[T any](capHint int) *Pool[T] {
	if capHint < 0 {
		capHint = 0
	}
	return &Pool[T]{slots: make([]slot[T], 0, capHint)}
}

// Insert stores v in the earliest tombstone, or appends a new slot.
// It returns the slot index.
func (p *Pool[T]) Insert(v T) int {
	p.live++
	if p.free.Len() > 0 {
		i := heap.Pop(&p.free).(int)
		p.slots[i] = slot[T]{value: v, used: true}
		return i
	}
	p.slots = append(p.slots, slot[T]{value: v, used: true})
	return len(p.slots) - 1
}

// Remove turns slot i into a tombstone. It reports whether i held a live
// entry.
func (p *Pool[T]) Remove(i int) bool {
	if i < 0 || i >= len(p.slots) || !p.slots[i].used {
		return false
	}
	var zero T
	p.slots[i] = slot[T]{value: zero}
	heap.Push(&p.free, i)
	p.live--
	return true
}

// Get returns a pointer to the live entry in slot i.
func (p *Pool[T]) Get(i int) (*T, bool) {
	if i < 0 || i >= len(p.slots) || !p.slots[i].used {
		return nil, false
	}
	return &p.slots[i].value, true
}

// All yields live entries in slot order. The pointers are valid until the
// next Insert.
func (p *Pool[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range p.slots {
			if !p.slots[i].used {
				continue
			}
			if !yield(i, &p.slots[i].value) {
				return
			}
		}
	}
}

// Cap returns the number of slots, live or tombstoned.
func (p *Pool[T]) Cap() int { return len(p.slots) }

// Live returns the number of live entries.
func (p *Pool[T]) Live() int { return p.live }

// Free returns the number of tombstones.
func (p *Pool[T]) Free() int { return p.free.Len() }

// Reset tombstones every slot. Capacity is kept.
func (p *Pool[T]) Reset() {
	var zero T
	p.free = p.free[:0]
	for i := range p.slots {
		p.slots[i] = slot[T]{value: zero}
		// Ascending order is already a valid min-heap.
		p.free = append(p.free, i)
	}
	p.live = 0
}

// indexHeap is a min-heap of slot indices for container/heap.
type indexHeap []int

func (h indexHeap) Len() int           { return len(h) }
func (h indexHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *indexHeap) Push(x any) { *h = append(*h, x.(int)) }

func (h *indexHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
