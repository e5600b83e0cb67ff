// Package livelist provides a filtered and sorted projection over a mutable
// backing sequence. The projection is maintained incrementally on Add and
// Remove and rebuilt when the predicate or comparator is replaced.
package livelist

import (
	"sort"
	"sync"
)

// Change describes one mutation of the projection.
type Change[T comparable] struct {
	Added   []T
	Removed []T
	Reset   bool // predicate, comparator or backing sequence replaced
}

// List is safe for concurrent use. Observers are called after the list's lock
// is released, in registration order.
type List[T comparable] struct {
	mu        sync.RWMutex
	backing   []T
	view      []T
	predicate func(T) bool
	less      func(a, b T) bool

	obsMu     sync.Mutex
	observers map[int]func(Change[T])
	nextObs   int
}

// New creates an empty list that accepts every item in insertion order.
func New[T comparable]() *List[T] {
	return &List[T]{observers: make(map[int]func(Change[T]))}
}

// SetAll replaces the backing sequence.
func (l *List[T]) SetAll(items []T) {
	l.mu.Lock()
	l.backing = append([]T(nil), items...)
	l.rebuild()
	l.mu.Unlock()
	l.notify(Change[T]{Reset: true})
}

// Add appends items to the backing sequence. Items already present are
// ignored, so a change that overlaps a SetAll snapshot is applied once.
func (l *List[T]) Add(items ...T) {
	if len(items) == 0 {
		return
	}
	var added []T
	l.mu.Lock()
	for _, it := range items {
		if indexOf(l.backing, it) >= 0 {
			continue
		}
		l.backing = append(l.backing, it)
		if l.accepts(it) {
			l.insertSorted(it)
			added = append(added, it)
		}
	}
	l.mu.Unlock()
	if len(added) > 0 {
		l.notify(Change[T]{Added: added})
	}
}

// Remove drops items from the backing sequence. Unknown items are ignored.
func (l *List[T]) Remove(items ...T) {
	if len(items) == 0 {
		return
	}
	var removed []T
	l.mu.Lock()
	for _, it := range items {
		if idx := indexOf(l.backing, it); idx >= 0 {
			l.backing = append(l.backing[:idx], l.backing[idx+1:]...)
		}
		if idx := indexOf(l.view, it); idx >= 0 {
			l.view = append(l.view[:idx], l.view[idx+1:]...)
			removed = append(removed, it)
		}
	}
	l.mu.Unlock()
	if len(removed) > 0 {
		l.notify(Change[T]{Removed: removed})
	}
}

// SetPredicate replaces the filter and re-evaluates it over the whole backing
// sequence. A nil predicate accepts everything.
func (l *List[T]) SetPredicate(p func(T) bool) {
	l.mu.Lock()
	l.predicate = p
	l.rebuild()
	l.mu.Unlock()
	l.notify(Change[T]{Reset: true})
}

// SetComparator replaces the ordering. A nil comparator keeps backing order.
func (l *List[T]) SetComparator(less func(a, b T) bool) {
	l.mu.Lock()
	l.less = less
	l.rebuild()
	l.mu.Unlock()
	l.notify(Change[T]{Reset: true})
}

// Items returns a copy of the projection.
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]T(nil), l.view...)
}

// Len is the projection size.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.view)
}

// BackingLen is the size of the unfiltered sequence.
func (l *List[T]) BackingLen() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.backing)
}

// Observe registers fn for change notices. The returned func removes it.
func (l *List[T]) Observe(fn func(Change[T])) func() {
	l.obsMu.Lock()
	id := l.nextObs
	l.nextObs++
	l.observers[id] = fn
	l.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.obsMu.Lock()
			delete(l.observers, id)
			l.obsMu.Unlock()
		})
	}
}

func (l *List[T]) notify(c Change[T]) {
	l.obsMu.Lock()
	ids := make([]int, 0, len(l.observers))
	for id := range l.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Change[T]), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, l.observers[id])
	}
	l.obsMu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}

// rebuild must be called with mu held.
func (l *List[T]) rebuild() {
	view := make([]T, 0, len(l.backing))
	for _, it := range l.backing {
		if l.accepts(it) {
			view = append(view, it)
		}
	}
	if l.less != nil {
		sort.SliceStable(view, func(i, j int) bool { return l.less(view[i], view[j]) })
	}
	l.view = view
}

func (l *List[T]) accepts(it T) bool {
	return l.predicate == nil || l.predicate(it)
}

// insertSorted places it after every element not greater than it, so equal
// elements keep their backing order.
func (l *List[T]) insertSorted(it T) {
	if l.less == nil {
		l.view = append(l.view, it)
		return
	}
	idx := sort.Search(len(l.view), func(i int) bool { return l.less(it, l.view[i]) })
	var zero T
	l.view = append(l.view, zero)
	copy(l.view[idx+1:], l.view[idx:])
	l.view[idx] = it
}

func indexOf[T comparable](s []T, it T) int {
	for i, v := range s {
		if v == it {
			return i
		}
	}
	return -1
}
