package cache

import (
	"container/list"
	"sync"

	"github.com/rohmanhakim/recipebox/internal/metadata"
)

// Limits bounds a namespace. A zero limit is unlimited.
type Limits struct {
	CountLimit int
	CostLimit  int
}

// Bounded is an in-memory LRU cache for one namespace.
// Entries are evicted least recently used first whenever the entry count or
// the summed cost goes over its limit. All operations hold a single mutex.
type Bounded[V any] struct {
	mu        sync.Mutex
	namespace string
	limits    Limits
	costFn    func(V) int
	order     *list.List // front is most recently used
	items     map[string]*list.Element
	totalCost int
	sink      metadata.MetadataSink
}

type entry[V any] struct {
	key   string
	value V
	cost  int
}

// NewBounded creates an empty namespace. costFn may be nil, in which case
// every entry costs 1.
func NewBounded[V any](namespace string, limits Limits, costFn func(V) int) *Bounded[V] {
	return &Bounded[V]{
		namespace: namespace,
		limits:    limits,
		costFn:    costFn,
		order:     list.New(),
		items:     make(map[string]*list.Element),
	}
}

// SetMetadataSink routes every lookup to sink as a cache event.
func (b *Bounded[V]) SetMetadataSink(sink metadata.MetadataSink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sink = sink
}

func (b *Bounded[V]) Namespace() string {
	return b.namespace
}

func (b *Bounded[V]) Limits() Limits {
	return b.limits
}

func (b *Bounded[V]) Get(key string) (V, bool) {
	b.mu.Lock()
	var value V
	el, hit := b.items[key]
	if hit {
		b.order.MoveToFront(el)
		value = el.Value.(*entry[V]).value
	}
	sink := b.sink
	b.mu.Unlock()

	if hit {
		cacheHits.WithLabelValues(b.namespace).Inc()
	} else {
		cacheMisses.WithLabelValues(b.namespace).Inc()
	}
	if sink != nil {
		sink.RecordCacheLookup(b.namespace, key, hit)
	}
	return value, hit
}

// Put stores value under key and evicts from the back until both limits hold.
// A value whose own cost exceeds the cost limit is not stored, and any older
// value under the same key is dropped with it.
func (b *Bounded[V]) Put(key string, value V) {
	cost := b.entryCost(value)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.limits.CostLimit > 0 && cost > b.limits.CostLimit {
		if el, ok := b.items[key]; ok {
			b.remove(el)
		}
		return
	}

	if el, ok := b.items[key]; ok {
		e := el.Value.(*entry[V])
		b.totalCost += cost - e.cost
		e.value = value
		e.cost = cost
		b.order.MoveToFront(el)
	} else {
		b.items[key] = b.order.PushFront(&entry[V]{key: key, value: value, cost: cost})
		b.totalCost += cost
	}

	evicted := 0
	for b.overLimit() {
		back := b.order.Back()
		if back == nil {
			break
		}
		b.remove(back)
		evicted++
	}
	if evicted > 0 {
		cacheEvictions.WithLabelValues(b.namespace).Add(float64(evicted))
	}
}

func (b *Bounded[V]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.order.Init()
	b.items = make(map[string]*list.Element)
	b.totalCost = 0
}

func (b *Bounded[V]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.order.Len()
}

// Cost is the summed cost of the stored entries.
func (b *Bounded[V]) Cost() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalCost
}

func (b *Bounded[V]) entryCost(value V) int {
	if b.costFn == nil {
		return 1
	}
	return max(1, b.costFn(value))
}

// caller holds mu
func (b *Bounded[V]) overLimit() bool {
	if b.limits.CountLimit > 0 && b.order.Len() > b.limits.CountLimit {
		return true
	}
	return b.limits.CostLimit > 0 && b.totalCost > b.limits.CostLimit
}

// caller holds mu
func (b *Bounded[V]) remove(el *list.Element) {
	e := b.order.Remove(el).(*entry[V])
	delete(b.items, e.key)
	b.totalCost -= e.cost
}
