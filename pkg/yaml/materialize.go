package yaml

import (
	"strconv"
	"strings"

	"github.com/shapestone/yaml-core/internal/perror"
	"github.com/shapestone/yaml-core/internal/tree"
)

// FromNode recursively materializes a tree.Tree node into a Value (spec
// §4.4). An optional node index (tree.NoNode) materializes to Empty.
func FromNode(t *tree.Tree, n tree.NodeIndex) (Value, error) {
	if n == tree.NoNode {
		return Empty, nil
	}

	switch t.Tag(n) {
	case tree.Doc:
		inner := tree.NodeIndex(t.DataOf(n)[0])
		return FromNode(t, inner)

	case tree.DocWithDirective:
		inner := tree.NodeIndex(t.DataOf(n)[0])
		return FromNode(t, inner)

	case tree.MapSingle:
		d := t.DataOf(n)
		m := NewOrderedMap()
		if err := addMapEntry(t, m, d[0], tree.NodeIndex(d[1])); err != nil {
			return Empty, err
		}
		return Map(m), nil

	case tree.MapMany:
		off := t.DataOf(n)[0]
		m := NewOrderedMap()
		for _, e := range t.MapEntries(off) {
			if err := addMapEntry(t, m, e.KeyTok, e.Value); err != nil {
				return Empty, err
			}
		}
		return Map(m), nil

	case tree.ListEmpty:
		return List(nil), nil

	case tree.ListOne:
		d := t.DataOf(n)
		v, err := FromNode(t, tree.NodeIndex(d[0]))
		if err != nil {
			return Empty, err
		}
		return List([]Value{v}), nil

	case tree.ListTwo:
		d := t.DataOf(n)
		v0, err := FromNode(t, tree.NodeIndex(d[0]))
		if err != nil {
			return Empty, err
		}
		v1, err := FromNode(t, tree.NodeIndex(d[1]))
		if err != nil {
			return Empty, err
		}
		return List([]Value{v0, v1}), nil

	case tree.ListMany:
		off := t.DataOf(n)[0]
		elems := t.ListElements(off)
		vals := make([]Value, len(elems))
		for i, e := range elems {
			v, err := FromNode(t, e)
			if err != nil {
				return Empty, err
			}
			vals[i] = v
		}
		return List(vals), nil

	case tree.Value:
		raw := t.ScopeText(t.ScopeOf(n))
		return classifyLeaf(raw), nil

	case tree.StringValue:
		d := t.DataOf(n)
		raw := t.StringBytes(d[0], d[1])
		return classifyLeaf(raw), nil

	default:
		return Empty, perror.New(perror.MalformedYaml, "unrecognized node tag %s", t.Tag(n))
	}
}

// addMapEntry materializes the key and value of one mapping entry and
// inserts it into m, rejecting a second occurrence of an equal key.
func addMapEntry(t *tree.Tree, m *OrderedMap, keyTok uint32, valNode tree.NodeIndex) error {
	key := string(t.Tokens[keyTok].Text(t.Source))
	if m.Has(key) {
		return perror.New(perror.DuplicateMapKey, "duplicate mapping key %q", key)
	}
	val, err := FromNode(t, valNode)
	if err != nil {
		return err
	}
	m.Set(key, val)
	return nil
}

// longestBoolLiteral is len("false"), the longest member of the truthy/falsy
// sets; raw text longer than this can never classify as bool (spec §4.4.3).
const longestBoolLiteral = len("false")

var truthy = map[string]bool{"y": true, "yes": true, "on": true, "true": true}
var falsy = map[string]bool{"n": true, "no": true, "off": true, "false": true}

// classifyLeaf applies spec §4.4's strict classification order to a raw
// leaf's text: int, then float, then bool, else string.
func classifyLeaf(raw []byte) Value {
	s := string(raw)

	if i, ok := parseYAMLInt(s); ok {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	if len(s) > 0 && len(s) <= longestBoolLiteral {
		lower := strings.ToLower(s)
		if truthy[lower] {
			return Bool(true)
		}
		if falsy[lower] {
			return Bool(false)
		}
	}
	return String(s)
}

// parseYAMLInt parses a decimal, 0x/0X hex or 0o/0O octal integer, with an
// optional leading '-'. Other bases (e.g. 0b binary, sexagesimal) are
// rejected (spec §9, resolved Open Question).
func parseYAMLInt(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}

	neg := false
	body := s
	if body[0] == '-' {
		neg = true
		body = body[1:]
	}
	if body == "" {
		return 0, false
	}

	base := 10
	switch {
	case strings.HasPrefix(body, "0x"), strings.HasPrefix(body, "0X"):
		base = 16
		body = body[2:]
	case strings.HasPrefix(body, "0o"), strings.HasPrefix(body, "0O"):
		base = 8
		body = body[2:]
	}
	if body == "" {
		return 0, false
	}

	u, err := strconv.ParseUint(body, base, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > 1<<63-1 {
		return 0, false
	}
	return int64(u), true
}
