package yaml

import (
	"github.com/shapestone/yaml-core/internal/parser"
	"github.com/shapestone/yaml-core/internal/tree"
)

// Unmarshaler is implemented by types that want to take over their own
// decoding from a materialized Value.
type Unmarshaler interface {
	UnmarshalYAML(Value) error
}

// Marshaler is implemented by types that want to take over producing their
// own Value.
type Marshaler interface {
	MarshalYAML() (Value, error)
}

// Unmarshal parses data and decodes it into v. A single document decodes
// directly into v; a source with zero or multiple documents follows the
// multi-document rule in spec §4.5 (v must be an array/slice of the right
// shape, or nothing at all for zero documents).
func Unmarshal(data []byte, v interface{}) error {
	docs, _, err := ParseValues(data)
	if err != nil {
		return err
	}
	return DecodeDocuments(docs, v)
}

// Marshal encodes v and renders it as a single canonical YAML document
// (without document markers; use MarshalDocuments for a full stream).
func Marshal(v interface{}) ([]byte, error) {
	val, err := Encode(v)
	if err != nil {
		return nil, err
	}
	return Stringify(val), nil
}

// MarshalDocuments encodes each element of vs as its own document and
// renders the full `---`/`...`-delimited stream.
func MarshalDocuments(vs []interface{}) ([]byte, error) {
	docs := make([]Value, len(vs))
	for i, v := range vs {
		val, err := Encode(v)
		if err != nil {
			return nil, err
		}
		docs[i] = val
	}
	return StringifyDocuments(docs, nil), nil
}

// Parse tokenizes and parses source into a node Tree plus any diagnostics
// recorded for a ParseFailure. It is the thin, core-facing entry point;
// most callers want Unmarshal or ParseValues instead.
func Parse(source []byte) (*tree.Tree, *parser.Diagnostics, error) {
	return parser.Parse(source)
}

// ParseValues parses source and materializes every document into a Value,
// in source order, alongside any ParseFailure diagnostics.
func ParseValues(source []byte) ([]Value, *parser.Diagnostics, error) {
	t, diags, err := parser.Parse(source)
	if err != nil {
		return nil, diags, err
	}

	docs := make([]Value, len(t.Docs))
	for i, root := range t.Docs {
		v, err := FromNode(t, root)
		if err != nil {
			return nil, nil, err
		}
		docs[i] = v
	}
	return docs, nil, nil
}
