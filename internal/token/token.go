// Package token defines the flat token vocabulary produced by internal/lexer
// and consumed by internal/parser.
package token

// Kind identifies what a Token represents. The set is deliberately small and
// mirrors the pragmatic YAML subset the parser understands: block and flow
// structure, quoting, and the handful of punctuation marks that carry
// meaning on their own.
type Kind int

const (
	// EOF marks the end of the source. It is always the final token and its
	// Start/End both equal len(source).
	EOF Kind = iota
	NewLine
	DocStart // ---
	DocEnd   // ...
	SeqItemInd
	MapValueInd
	FlowMapStart
	FlowMapEnd
	FlowSeqStart
	FlowSeqEnd
	Comma
	Space
	Tab
	Comment
	Alias
	Anchor
	Tag
	SingleQuoted
	DoubleQuoted
	EscapeSeq
	Literal
)

var kindNames = [...]string{
	EOF:          "EOF",
	NewLine:      "NewLine",
	DocStart:     "DocStart",
	DocEnd:       "DocEnd",
	SeqItemInd:   "SeqItemInd",
	MapValueInd:  "MapValueInd",
	FlowMapStart: "FlowMapStart",
	FlowMapEnd:   "FlowMapEnd",
	FlowSeqStart: "FlowSeqStart",
	FlowSeqEnd:   "FlowSeqEnd",
	Comma:        "Comma",
	Space:        "Space",
	Tab:          "Tab",
	Comment:      "Comment",
	Alias:        "Alias",
	Anchor:       "Anchor",
	Tag:          "Tag",
	SingleQuoted: "SingleQuoted",
	DoubleQuoted: "DoubleQuoted",
	EscapeSeq:    "EscapeSeq",
	Literal:      "Literal",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) || kindNames[k] == "" {
		return "Unknown"
	}
	return kindNames[k]
}

// Token is a byte-offset span tagged with a Kind. Start and End are byte
// offsets into the source buffer the tokenizer scanned; End is exclusive.
type Token struct {
	Kind  Kind
	Start int
	End   int
}

// Text returns the token's source slice.
func (t Token) Text(source []byte) []byte {
	return source[t.Start:t.End]
}

// Pos is a zero-indexed (line, column) pair. Column is measured from the
// byte immediately after the previous newline.
type Pos struct {
	Line int
	Col  int
}
