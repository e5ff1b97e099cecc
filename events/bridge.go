// Package events decouples popup-originated engagement actions from the
// spot repository. The original surface broadcast untyped DOM events; here
// the signal set is closed and payloads are typed.
package events

import "sync"

// Kind is one of the three engagement signal kinds.
type Kind string

const (
	KindLike    Kind = "spot-like"
	KindDislike Kind = "spot-dislike"
	KindComment Kind = "spot-comment"
)

// Signal carries a spot id and, for comments, the text content.
type Signal struct {
	Kind    Kind
	SpotID  string
	Content string
}

// Handler receives a published signal. Handlers must not block.
type Handler func(Signal)

// Bridge dispatches signals synchronously to subscribers in subscription
// order. Publishing is fire-and-forget; there is no queue.
type Bridge struct {
	mu       sync.RWMutex
	handlers map[Kind][]Handler
}

func NewBridge() *Bridge {
	return &Bridge{handlers: make(map[Kind][]Handler)}
}

// Subscribe registers a handler for one signal kind.
func (b *Bridge) Subscribe(kind Kind, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[kind] = append(b.handlers[kind], h)
}

// Publish runs every handler subscribed to the signal's kind, in order,
// before returning. Signals with no subscribers are dropped.
func (b *Bridge) Publish(s Signal) {
	b.mu.RLock()
	handlers := b.handlers[s.Kind]
	b.mu.RUnlock()

	for _, h := range handlers {
		h(s)
	}
}
