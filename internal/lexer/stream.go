package lexer

import "github.com/shapestone/yaml-core/internal/token"

// Tokenize drives a Lexer to completion, returning the full token slice
// (always terminated by a single EOF token) and a parallel (line, col)
// table. Lines are 0-indexed; col is measured from the byte following the
// last newline.
func Tokenize(source []byte) ([]token.Token, []token.Pos) {
	l := New(source)
	var toks []token.Token
	var positions []token.Pos

	line := 0
	lineStart := 0

	for {
		tok := l.Next()
		positions = append(positions, token.Pos{Line: line, Col: tok.Start - lineStart})
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.NewLine {
			line++
			lineStart = tok.End
		}
	}

	return toks, positions
}

// Cursor is a read cursor over a token slice, used by the parser to drive
// lookahead without re-tokenizing.
type Cursor struct {
	toks []token.Token
	pos  int
}

// NewCursor wraps a token slice (as produced by Tokenize) for sequential
// access.
func NewCursor(toks []token.Token) *Cursor {
	return &Cursor{toks: toks}
}

// Peek returns the token at the cursor without advancing. Peeking past the
// end of the slice returns the final (EOF) token.
func (c *Cursor) Peek() token.Token {
	return c.PeekAt(0)
}

// PeekAt returns the token n positions ahead of the cursor (n may be
// negative) without moving it. Out-of-range indices clamp to the nearest
// valid token.
func (c *Cursor) PeekAt(n int) token.Token {
	i := c.pos + n
	if i < 0 {
		i = 0
	}
	if i >= len(c.toks) {
		i = len(c.toks) - 1
	}
	return c.toks[i]
}

// Next returns the current token and advances the cursor by one, unless
// already at the last (EOF) token.
func (c *Cursor) Next() token.Token {
	tok := c.Peek()
	if c.pos < len(c.toks)-1 {
		c.pos++
	}
	return tok
}

// Index returns the cursor's current token index.
func (c *Cursor) Index() int {
	return c.pos
}

// SeekTo moves the cursor to an absolute token index, clamped to range.
func (c *Cursor) SeekTo(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(c.toks) {
		i = len(c.toks) - 1
	}
	c.pos = i
}

// SeekBy moves the cursor by a relative offset (positive or negative),
// clamped to range.
func (c *Cursor) SeekBy(delta int) {
	c.SeekTo(c.pos + delta)
}
