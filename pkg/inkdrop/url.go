package inkdrop

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// BuildURL resolves path against baseURL using standard reference resolution
// and applies params to the query string. A nil params returns the resolved
// URL untouched.
func BuildURL(baseURL, path string, params *Params) (*url.URL, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}

	u := base.ResolveReference(ref)
	if params == nil {
		return u, nil
	}

	q := parseQuery(u.RawQuery)
	changed := false
	params.each(func(key string, value any) {
		value, ok := deref(value)
		if !ok {
			return
		}
		if elems, ok := sliceElements(value); ok {
			for _, elem := range elems {
				q.add(key, stringify(elem))
			}
			changed = changed || len(elems) > 0
			return
		}
		q.set(key, stringify(value))
		changed = true
	})
	if changed {
		u.RawQuery = q.encode()
	}

	return u, nil
}

type queryPair struct {
	key   string
	value string
}

// query is an ordered multi-valued query string. url.Values sorts keys on
// Encode, which loses the caller's ordering.
type query []queryPair

func parseQuery(raw string) query {
	var q query
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		if k, err := url.QueryUnescape(key); err == nil {
			key = k
		}
		if v, err := url.QueryUnescape(value); err == nil {
			value = v
		}
		q = append(q, queryPair{key: key, value: value})
	}
	return q
}

func (q *query) add(key, value string) {
	*q = append(*q, queryPair{key: key, value: value})
}

// set replaces the first pair for key and drops any later ones, or appends
// when key is not present.
func (q *query) set(key, value string) {
	out := (*q)[:0]
	found := false
	for _, p := range *q {
		if p.key != key {
			out = append(out, p)
			continue
		}
		if !found {
			out = append(out, queryPair{key: key, value: value})
			found = true
		}
	}
	if !found {
		out = append(out, queryPair{key: key, value: value})
	}
	*q = out
}

func (q query) encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}

// deref unwraps pointers and reports false for nil values.
func deref(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return nil, false
		}
	}
	return rv.Interface(), true
}

func sliceElements(v any) ([]any, bool) {
	if _, ok := v.([]byte); ok {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, true
}

// stringify renders a query value the way it would print as text: numbers
// without exponent or trailing zeros, booleans as true/false.
func stringify(v any) string {
	v, ok := deref(v)
	if !ok {
		return "null"
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
