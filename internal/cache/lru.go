// internal/cache/lru.go
//
// Tiny LRU cache used by the settings store to keep hot values in memory.
// No external deps; good for a few thousand entries.
package cache

import "container/list"

// LRU is a least-recently-used cache of setting values keyed by setting
// name.  A cached value may legitimately be nil (a setting stored as NULL),
// so presence is reported separately from the value.  Not safe for
// concurrent use; the store serialises access.
type LRU struct {
	cap  int
	ll   *list.List
	dict map[string]*list.Element
}

type pair struct {
	key string
	val *string
}

// New returns an LRU with the given capacity.  Panics on cap < 1.
func New(capacity int) *LRU {
	if capacity < 1 {
		panic("cache: capacity must be ≥1")
	}
	return &LRU{
		cap:  capacity,
		ll:   list.New(),
		dict: make(map[string]*list.Element, capacity),
	}
}

// Get retrieves a cached value and marks it MRU.
func (c *LRU) Get(key string) (val *string, ok bool) {
	if ele, hit := c.dict[key]; hit {
		c.ll.MoveToFront(ele)
		return ele.Value.(pair).val, true
	}
	return nil, false
}

// Add inserts or updates a value, evicting the LRU entry on overflow.
func (c *LRU) Add(key string, val *string) {
	if ele, hit := c.dict[key]; hit {
		ele.Value = pair{key, val}
		c.ll.MoveToFront(ele)
		return
	}
	ele := c.ll.PushFront(pair{key, val})
	c.dict[key] = ele
	if c.ll.Len() > c.cap {
		last := c.ll.Back()
		c.ll.Remove(last)
		delete(c.dict, last.Value.(pair).key)
	}
}

// Remove drops an entry if present.
func (c *LRU) Remove(key string) {
	if ele, hit := c.dict[key]; hit {
		c.ll.Remove(ele)
		delete(c.dict, key)
	}
}

// Len reports current size.
func (c *LRU) Len() int { return c.ll.Len() }
