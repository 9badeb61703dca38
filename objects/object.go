package objects

import (
	"encoding/json"
	"math"
	"sort"
)

// Object is a read-only view of a JSON mapping. Nested mappings are
// *Object values and sequences are []any of converted elements.
type Object struct {
	fields map[string]any
}

// Get returns the value stored under name. Sequences are returned as copies.
func (o *Object) Get(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.fields[name]
	if s, isSlice := v.([]any); isSlice {
		return append([]any(nil), s...), ok
	}
	return v, ok
}

func (o *Object) Has(name string) bool {
	_, ok := o.Get(name)
	return ok
}

// Keys returns the attribute names in sorted order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, 0, len(o.fields))
	for k := range o.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.fields)
}

func (o *Object) String(name string) (string, bool) {
	v, _ := o.Get(name)
	s, ok := v.(string)
	return s, ok
}

func (o *Object) Bool(name string) (bool, bool) {
	v, _ := o.Get(name)
	b, ok := v.(bool)
	return b, ok
}

func (o *Object) Float(name string) (float64, bool) {
	v, _ := o.Get(name)
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// Int returns a numeric attribute that holds a whole number.
func (o *Object) Int(name string) (int64, bool) {
	f, ok := o.Float(name)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func (o *Object) Object(name string) (*Object, bool) {
	v, _ := o.Get(name)
	child, ok := v.(*Object)
	return child, ok
}

func (o *Object) Slice(name string) ([]any, bool) {
	v, _ := o.Get(name)
	s, ok := v.([]any)
	return s, ok
}

// Lookup follows a path of attribute names through nested objects.
func (o *Object) Lookup(path ...string) (any, bool) {
	var v any = o
	for _, name := range path {
		obj, ok := v.(*Object)
		if !ok {
			return nil, false
		}
		if v, ok = obj.Get(name); !ok {
			return nil, false
		}
	}
	return v, true
}

// Map converts the object back into plain maps and slices.
func (o *Object) Map() map[string]any {
	if o == nil {
		return nil
	}
	out := make(map[string]any, len(o.fields))
	for k, v := range o.fields {
		out[k] = plain(v)
	}
	return out
}

func (o *Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Map())
}

// MarshalYAML lets gopkg.in/yaml.v3 encode the object as a plain mapping.
func (o *Object) MarshalYAML() (any, error) {
	return o.Map(), nil
}

func plain(v any) any {
	switch v := v.(type) {
	case *Object:
		return v.Map()
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = plain(item)
		}
		return out
	}
	return v
}
