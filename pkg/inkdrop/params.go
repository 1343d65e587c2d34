package inkdrop

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Params holds query parameters for a request. Keys keep the order in which
// they were first set, and that order is the order they appear on the wire.
//
// Values follow these rules when the URL is built:
//   - nil (including nil pointers, slices and maps) omits the key
//   - slices and arrays add one repeated key per element
//   - anything else sets the key to the value's textual form
type Params struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{m: orderedmap.New[string, any]()}
}

// Set stores value under key and returns p so calls can be chained. Setting
// an existing key replaces its value but keeps its position.
func (p *Params) Set(key string, value any) *Params {
	if p.m == nil {
		p.m = orderedmap.New[string, any]()
	}
	p.m.Set(key, value)
	return p
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (any, bool) {
	if p == nil || p.m == nil {
		return nil, false
	}
	return p.m.Get(key)
}

// Delete removes key.
func (p *Params) Delete(key string) {
	if p == nil || p.m == nil {
		return
	}
	p.m.Delete(key)
}

// Len returns the number of keys.
func (p *Params) Len() int {
	if p == nil || p.m == nil {
		return 0
	}
	return p.m.Len()
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	keys := make([]string, 0, p.Len())
	p.each(func(key string, _ any) {
		keys = append(keys, key)
	})
	return keys
}

func (p *Params) each(fn func(key string, value any)) {
	if p == nil || p.m == nil {
		return
	}
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}
