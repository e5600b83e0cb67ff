package memory

import (
	"sort"
	"sync"

	"p2p-offerbook/internal/core/ports"
)

// listeners is a registry notified in subscription order. Callers must not
// hold their own locks while calling notify.
type listeners[E any] struct {
	mu   sync.Mutex
	fns  map[int]func(E)
	next int
}

func (l *listeners[E]) subscribe(fn func(E)) ports.Subscription {
	l.mu.Lock()
	if l.fns == nil {
		l.fns = make(map[int]func(E))
	}
	id := l.next
	l.next++
	l.fns[id] = fn
	l.mu.Unlock()

	var once sync.Once
	return ports.SubscriptionFunc(func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	})
}

func (l *listeners[E]) notify(e E) {
	l.mu.Lock()
	ids := make([]int, 0, len(l.fns))
	for id := range l.fns {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(E), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, l.fns[id])
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}

func (l *listeners[E]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}
