// Package feed is a transport-agnostic change feed for record tables.
// Mutations publish an event after they commit; subscribers (the aggregate
// cache, most importantly) react by invalidating whatever the event makes
// stale. The abstraction mirrors a database change channel without binding
// to any specific transport.
package feed

import (
	"sync"

	"github.com/google/uuid"
)

type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

type Event struct {
	Table    string
	Op       Op
	RecordID uuid.UUID
}

type Feed struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(Event)
}

func New() *Feed {
	return &Feed{subs: map[int]func(Event){}}
}

// Subscribe registers a callback for every subsequent event and returns an
// unsubscribe function. Callbacks run synchronously on the publisher's
// goroutine; subscribers must not block.
func (f *Feed) Subscribe(fn func(Event)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.subs[id] = fn

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs, id)
	}
}

func (f *Feed) Publish(e Event) {
	f.mu.RLock()
	fns := make([]func(Event), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}
