package tree

import "github.com/shapestone/yaml-core/internal/token"

// Builder accumulates node columns, the extras pool, and the string bytes
// pool during a single parse. It is scratch state: Finalize hands the
// accumulated slices to an immutable Tree and the Builder is discarded.
type Builder struct {
	tags   []Tag
	scopes []Scope
	data   []Data

	extras  []uint32
	strings []byte
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// TagOf returns the tag already assigned to node i. Used by the parser to
// decide, after the fact, whether a just-parsed value is a leaf or a
// compound node (spec §4.3.3's indentation invariants).
func (b *Builder) TagOf(i NodeIndex) Tag {
	return b.tags[i]
}

// AddNode appends a node and returns its index.
func (b *Builder) AddNode(tag Tag, scope Scope, data Data) NodeIndex {
	i := NodeIndex(len(b.tags))
	b.tags = append(b.tags, tag)
	b.scopes = append(b.scopes, scope)
	b.data = append(b.data, data)
	return i
}

// AddMapExtras appends a MapMany payload record ({len, (keyTok,
// optValueNode)*}) and returns its offset.
func (b *Builder) AddMapExtras(entries []MapEntry) uint32 {
	offset := uint32(len(b.extras))
	b.extras = append(b.extras, uint32(len(entries)))
	for _, e := range entries {
		b.extras = append(b.extras, e.KeyTok, uint32(e.Value))
	}
	return offset
}

// AddListExtras appends a ListMany payload record ({len, (node)*}) and
// returns its offset.
func (b *Builder) AddListExtras(elems []NodeIndex) uint32 {
	offset := uint32(len(b.extras))
	b.extras = append(b.extras, uint32(len(elems)))
	for _, e := range elems {
		b.extras = append(b.extras, uint32(e))
	}
	return offset
}

// InternString copies s into the string bytes pool and returns its
// (offset, length).
func (b *Builder) InternString(s []byte) (offset, length uint32) {
	offset = uint32(len(b.strings))
	b.strings = append(b.strings, s...)
	length = uint32(len(s))
	return offset, length
}

// Finalize produces the immutable Tree. source is borrowed; tokens and
// positions are taken by reference (the caller must not mutate them
// afterward). docs lists the root node index of each parsed document.
func (b *Builder) Finalize(source []byte, tokens []token.Token, positions []token.Pos, docs []NodeIndex) *Tree {
	return &Tree{
		Source:    source,
		Tokens:    tokens,
		Positions: positions,
		Docs:      docs,
		tags:      b.tags,
		scopes:    b.scopes,
		data:      b.data,
		extras:    b.extras,
		strings:   b.strings,
	}
}
