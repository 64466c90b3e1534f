package yaml

import (
	"bytes"
	"strconv"
	"strings"
	"sync"
)

// bufferPool pools the scratch buffers Stringify writes into, the same
// pattern the teacher's Marshal uses to cut GC pressure on repeated calls.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= 64*1024 {
		bufferPool.Put(buf)
	}
}

// Stringify renders a Value using the canonicalization in spec §4.6: empty
// values produce no text, flat lists render inline as `[ e1, e2, ... ]`,
// lists of compound values render as block sequences, and maps render
// `key: value` with inline values when simple and indented block children
// otherwise.
func Stringify(v Value) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	writeValue(buf, v, 0)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// StringifyDocuments renders a full document stream: every document is
// prefixed with `---`, optionally followed by `!<directive>`, and the
// stream is terminated with `...` (spec §4.6).
func StringifyDocuments(docs []Value, directives []string) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	for i, doc := range docs {
		buf.WriteString("---")
		if i < len(directives) && directives[i] != "" {
			buf.WriteString(" !")
			buf.WriteString(directives[i])
		}
		buf.WriteString("\n")
		writeValue(buf, doc, 0)
		buf.WriteString("\n")
	}
	buf.WriteString("...\n")

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

func writeValue(buf *bytes.Buffer, v Value, indent int) {
	switch v.Kind() {
	case KindEmpty:
		return
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case KindFloat:
		buf.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.Bool()))
	case KindString:
		buf.WriteString(v.String())
	case KindList:
		writeList(buf, v.List(), indent)
	case KindMap:
		writeMap(buf, v.Map(), indent)
	}
}

// anyCompound reports whether any element of elems is itself a list or map,
// the condition spec §4.6 uses to choose block over inline rendering.
func anyCompound(elems []Value) bool {
	for _, e := range elems {
		if e.IsCompound() {
			return true
		}
	}
	return false
}

func writeList(buf *bytes.Buffer, elems []Value, indent int) {
	if !anyCompound(elems) {
		buf.WriteString("[ ")
		for i, e := range elems {
			if i > 0 {
				buf.WriteString(", ")
			}
			writeValue(buf, e, indent)
		}
		buf.WriteString(" ]")
		return
	}

	for i, e := range elems {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(strings.Repeat(" ", indent))
		buf.WriteString("- ")
		writeValue(buf, e, indent+2)
	}
}

func writeMap(buf *bytes.Buffer, m *OrderedMap, indent int) {
	first := true
	m.Range(func(key string, val Value) {
		if !first {
			buf.WriteString("\n")
		}
		first = false

		buf.WriteString(strings.Repeat(" ", indent))
		buf.WriteString(key)
		buf.WriteString(":")

		if val.IsCompound() && nonEmptyCompound(val) {
			buf.WriteString("\n")
			writeValue(buf, val, indent+4)
		} else {
			buf.WriteString(" ")
			writeValue(buf, val, indent)
		}
	})
}

// nonEmptyCompound reports whether val renders as an indented block under
// its key: a map with at least one entry, or a list with at least one
// compound element. Lists of scalars (including empty lists) and empty maps
// render inline after the key.
func nonEmptyCompound(val Value) bool {
	switch val.Kind() {
	case KindList:
		return anyCompound(val.List()) && len(val.List()) > 0
	case KindMap:
		return val.Map().Len() > 0
	default:
		return false
	}
}
