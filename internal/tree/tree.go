// Package tree implements the parser's output representation: a flat,
// column-oriented node arena with side tables for variable-length payloads
// and interned string bytes (spec §3). There are no pointers between
// nodes — only integer indices — so the whole tree is one contiguous,
// cache-friendly, trivially freed allocation.
package tree

import "github.com/shapestone/yaml-core/internal/token"

// Tag identifies the shape of a node's Data payload.
type Tag int

const (
	// Doc is a document with no leading directive; Data[0] is the optional
	// index of the document's single value node.
	Doc Tag = iota
	// DocWithDirective is a document whose explicit header carried a `!tag`
	// literal; Data[0] is the optional value node index, Data[1] is the
	// token index of the directive literal.
	DocWithDirective
	// MapSingle is a mapping with exactly one entry; Data[0] is the key
	// token index, Data[1] is the optional value node index.
	MapSingle
	// MapMany is a mapping with two or more entries, or an empty flow
	// mapping (`{}`, zero entries); Data[0] is an offset
	// into the extras pool where {len, (keyTok, optValueNode)*} is stored.
	MapMany
	// ListEmpty is `[]`; Data is unused.
	ListEmpty
	// ListOne is a one-element sequence; Data[0] is the element node index.
	ListOne
	// ListTwo is a two-element sequence; Data[0] and Data[1] are the
	// element node indices.
	ListTwo
	// ListMany is a sequence of three or more elements; Data[0] is an
	// offset into the extras pool where {len, (node)*} is stored.
	ListMany
	// Value is an unquoted literal leaf; its text is the source slice
	// spanned by the node's Scope. Data is unused.
	Value
	// StringValue is a quoted leaf whose contents were interned (and
	// possibly unescaped); Data[0] is an offset and Data[1] a length into
	// the tree's string bytes pool.
	StringValue
)

func (t Tag) String() string {
	switch t {
	case Doc:
		return "Doc"
	case DocWithDirective:
		return "DocWithDirective"
	case MapSingle:
		return "MapSingle"
	case MapMany:
		return "MapMany"
	case ListEmpty:
		return "ListEmpty"
	case ListOne:
		return "ListOne"
	case ListTwo:
		return "ListTwo"
	case ListMany:
		return "ListMany"
	case Value:
		return "Value"
	case StringValue:
		return "StringValue"
	default:
		return "Unknown"
	}
}

// NodeIndex addresses a node within a Tree's columnar arrays.
type NodeIndex uint32

// NoNode is the sentinel used wherever a node reference is optional.
const NoNode NodeIndex = ^NodeIndex(0)

// Scope is the token index range [Start, End] a node covers; both ends are
// inclusive and index valid tokens.
type Scope struct {
	StartTok uint32
	EndTok   uint32
}

// Data is the node's fixed-size payload; its meaning is discriminated by
// Tag (see the Tag constants' doc comments for the per-tag schema).
type Data [2]uint32

// Tree is the immutable, owned result of a successful parse. It borrows
// Source from the caller and owns every other slice.
type Tree struct {
	Source []byte

	Tokens    []token.Token
	Positions []token.Pos

	// Docs holds one root node index per parsed document, in source order.
	Docs []NodeIndex

	tags   []Tag
	scopes []Scope
	data   []Data

	extras  []uint32
	strings []byte
}

// NodeCount returns the number of allocated node slots.
func (t *Tree) NodeCount() int {
	return len(t.tags)
}

// Tag returns the tag of node i.
func (t *Tree) Tag(i NodeIndex) Tag {
	return t.tags[i]
}

// ScopeOf returns the token scope of node i.
func (t *Tree) ScopeOf(i NodeIndex) Scope {
	return t.scopes[i]
}

// DataOf returns the raw payload of node i.
func (t *Tree) DataOf(i NodeIndex) Data {
	return t.data[i]
}

// Extras returns the raw extras pool (exposed read-only for decoders that
// walk a record directly).
func (t *Tree) Extras() []uint32 {
	return t.extras
}

// StringBytes returns the slice of the interned string pool at
// [offset, offset+length).
func (t *Tree) StringBytes(offset, length uint32) []byte {
	return t.strings[offset : offset+length]
}

// ScopeText returns the source slice spanned by a node's scope, from the
// start of the first token to the end of the last.
func (t *Tree) ScopeText(s Scope) []byte {
	return t.Source[t.Tokens[s.StartTok].Start:t.Tokens[s.EndTok].End]
}

// MapEntry is one decoded (key token, optional value node) pair from a
// MapMany extras record.
type MapEntry struct {
	KeyTok uint32
	Value  NodeIndex // NoNode if the entry had no value
}

// MapEntries decodes a MapMany node's extras record.
func (t *Tree) MapEntries(extrasOffset uint32) []MapEntry {
	n := t.extras[extrasOffset]
	entries := make([]MapEntry, n)
	base := extrasOffset + 1
	for i := uint32(0); i < n; i++ {
		entries[i] = MapEntry{
			KeyTok: t.extras[base+2*i],
			Value:  NodeIndex(t.extras[base+2*i+1]),
		}
	}
	return entries
}

// ListElements decodes a ListMany node's extras record.
func (t *Tree) ListElements(extrasOffset uint32) []NodeIndex {
	n := t.extras[extrasOffset]
	elems := make([]NodeIndex, n)
	base := extrasOffset + 1
	for i := uint32(0); i < n; i++ {
		elems[i] = NodeIndex(t.extras[base+i])
	}
	return elems
}
