// Package yaml provides value materialization, typed decoding, encoding and
// canonical stringification on top of internal/parser's node tree.
package yaml

import "fmt"

// Kind discriminates the tagged sum a Value holds (spec §3's Value type).
type Kind int

const (
	KindEmpty Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is the materialized, host-independent result of parsing or encoding
// YAML: a tagged sum of empty, int, float, bool, string, list and map.
type Value struct {
	kind Kind

	i   int64
	f   float64
	b   bool
	s   string
	l   []Value
	m   *OrderedMap
}

// Empty is the zero Value: the `empty` variant.
var Empty = Value{kind: KindEmpty}

func Int(i int64) Value      { return Value{kind: KindInt, i: i} }
func Float(f float64) Value  { return Value{kind: KindFloat, f: f} }
func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }
func String(s string) Value  { return Value{kind: KindString, s: s} }
func List(l []Value) Value   { return Value{kind: KindList, l: l} }
func Map(m *OrderedMap) Value { return Value{kind: KindMap, m: m} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) Int() int64        { return v.i }
func (v Value) Float() float64    { return v.f }
func (v Value) Bool() bool        { return v.b }
func (v Value) String() string    { return v.s }
func (v Value) List() []Value     { return v.l }
func (v Value) Map() *OrderedMap  { return v.m }

// IsCompound reports whether v is a list or map — the distinction the
// stringifier uses to decide between inline and block rendering (spec
// §4.6's table).
func (v Value) IsCompound() bool {
	return v.kind == KindList || v.kind == KindMap
}

// kv is one insertion-ordered entry of an OrderedMap.
type kv struct {
	key   string
	value Value
}

// OrderedMap preserves insertion order, as spec §3 requires of `map`.
type OrderedMap struct {
	entries []kv
	index   map[string]int
}

// NewOrderedMap creates an empty ordered map.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{index: make(map[string]int)}
}

// Set inserts or overwrites a key, preserving the key's original insertion
// position on overwrite.
func (m *OrderedMap) Set(key string, value Value) {
	if i, ok := m.index[key]; ok {
		m.entries[i].value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, kv{key: key, value: value})
}

// Get looks up a key.
func (m *OrderedMap) Get(key string) (Value, bool) {
	i, ok := m.index[key]
	if !ok {
		return Empty, false
	}
	return m.entries[i].value, true
}

// Has reports whether key is present.
func (m *OrderedMap) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// Range visits every entry in insertion order.
func (m *OrderedMap) Range(f func(key string, value Value)) {
	for _, e := range m.entries {
		f(e.key, e.value)
	}
}

func (v Value) GoString() string {
	return fmt.Sprintf("yaml.Value{kind: %s}", v.kind)
}
