// Package lexer implements the context-sensitive byte scanner that turns a
// UTF-8 source buffer into a flat token.Token stream. It is single-pass,
// single-threaded, and never fails: structural validity is the parser's job,
// the lexer only classifies bytes.
//
// Scanning style is grounded on the teacher's internal/fastparser.Parser: a
// plain pos/line/column cursor over a []byte, advanced one byte at a time,
// dispatched by a byte switch rather than a matcher-function pipeline.
package lexer

import "github.com/shapestone/yaml-core/internal/token"

// stringMode tracks which quoting context the scanner is inside. It is the
// single piece of state that makes classification of ', ", \ and literal
// runs context-sensitive.
type stringMode int

const (
	unquoted stringMode = iota
	singleQuoted
	doubleQuoted
)

// Lexer scans a source buffer into tokens on demand via Next.
type Lexer struct {
	src  []byte
	pos  int
	mode stringMode
}

// New creates a Lexer over source. The buffer is borrowed, not copied.
func New(source []byte) *Lexer {
	return &Lexer{src: source}
}

func (l *Lexer) byteAt(i int) (byte, bool) {
	if i < 0 || i >= len(l.src) {
		return 0, false
	}
	return l.src[i], true
}

// Next scans and returns the next token, advancing the cursor past it.
// Once the cursor reaches the end of source, Next always returns an EOF
// token whose Start and End equal len(source).
func (l *Lexer) Next() token.Token {
	start := l.pos
	if start >= len(l.src) {
		return token.Token{Kind: token.EOF, Start: start, End: start}
	}

	b := l.src[start]

	switch b {
	case '\n':
		l.pos++
		return l.tok(token.NewLine, start)
	case '\r':
		l.pos++
		if nb, ok := l.byteAt(l.pos); ok && nb == '\n' {
			l.pos++
		}
		return l.tok(token.NewLine, start)
	case ',':
		l.pos++
		return l.tok(token.Comma, start)
	case '[':
		l.pos++
		return l.tok(token.FlowSeqStart, start)
	case ']':
		l.pos++
		return l.tok(token.FlowSeqEnd, start)
	case '{':
		l.pos++
		return l.tok(token.FlowMapStart, start)
	case '}':
		l.pos++
		return l.tok(token.FlowMapEnd, start)
	case ':':
		l.pos++
		return l.tok(token.MapValueInd, start)
	case '&':
		l.pos++
		return l.tok(token.Anchor, start)
	case '*':
		l.pos++
		return l.tok(token.Alias, start)
	case '!':
		l.pos++
		return l.tok(token.Tag, start)
	case '#':
		return l.scanComment(start)
	case ' ':
		return l.scanRun(token.Space, start, ' ')
	case '\t':
		return l.scanRun(token.Tab, start, '\t')
	case '\'':
		return l.scanSingleQuote(start)
	case '"':
		return l.scanDoubleQuote(start)
	case '\\':
		if l.mode == doubleQuoted {
			return l.scanEscape(start)
		}
		return l.scanLiteral(start)
	case '-':
		if tok, ok := l.tryThreeRun(start, '-', token.DocStart); ok {
			return tok
		}
		if nb, ok := l.byteAt(start + 1); !ok || isSeqItemTerminator(nb) {
			l.pos++
			return l.tok(token.SeqItemInd, start)
		}
		return l.scanLiteral(start)
	case '.':
		if tok, ok := l.tryThreeRun(start, '.', token.DocEnd); ok {
			return tok
		}
		return l.scanLiteral(start)
	default:
		return l.scanLiteral(start)
	}
}

func (l *Lexer) tok(k token.Kind, start int) token.Token {
	return token.Token{Kind: k, Start: start, End: l.pos}
}

// tryThreeRun matches exactly three consecutive occurrences of c starting at
// start, provided a fourth does not immediately follow (so "----" falls
// through to literal scanning rather than being swallowed as a doc marker).
func (l *Lexer) tryThreeRun(start int, c byte, kind token.Kind) (token.Token, bool) {
	if b1, ok := l.byteAt(start + 1); !ok || b1 != c {
		return token.Token{}, false
	}
	if b2, ok := l.byteAt(start + 2); !ok || b2 != c {
		return token.Token{}, false
	}
	if b3, ok := l.byteAt(start + 3); ok && b3 == c {
		return token.Token{}, false
	}
	l.pos = start + 3
	return l.tok(kind, start), true
}

func isSeqItemTerminator(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// scanRun consumes a contiguous run of the single byte c and emits it as one
// token of kind.
func (l *Lexer) scanRun(kind token.Kind, start int, c byte) token.Token {
	l.pos = start
	for {
		b, ok := l.byteAt(l.pos)
		if !ok || b != c {
			break
		}
		l.pos++
	}
	return l.tok(kind, start)
}

// scanComment consumes from '#' through (but excluding) the next \r or \n,
// or end of source.
func (l *Lexer) scanComment(start int) token.Token {
	l.pos = start + 1
	for {
		b, ok := l.byteAt(l.pos)
		if !ok || b == '\r' || b == '\n' {
			break
		}
		l.pos++
	}
	return l.tok(token.Comment, start)
}

// scanEscape consumes a backslash and exactly one following byte. Only
// reachable while mode == doubleQuoted.
func (l *Lexer) scanEscape(start int) token.Token {
	l.pos = start + 1
	if _, ok := l.byteAt(l.pos); ok {
		l.pos++
	}
	return l.tok(token.EscapeSeq, start)
}

// scanSingleQuote handles every occurrence of ' regardless of mode. In
// unquoted mode it opens single-quoted mode; in single-quoted mode, a
// doubled '' is an escape_seq (mode unchanged), a lone ' closes the string;
// in double-quoted mode it is ordinary punctuation and never changes mode.
func (l *Lexer) scanSingleQuote(start int) token.Token {
	if l.mode == singleQuoted {
		if nb, ok := l.byteAt(start + 1); ok && nb == '\'' {
			l.pos = start + 2
			return l.tok(token.EscapeSeq, start)
		}
		l.mode = unquoted
		l.pos = start + 1
		return l.tok(token.SingleQuoted, start)
	}
	if l.mode == unquoted {
		l.mode = singleQuoted
	}
	l.pos = start + 1
	return l.tok(token.SingleQuoted, start)
}

// scanDoubleQuote handles every occurrence of ". It toggles between
// unquoted and doubleQuoted mode; encountered while singleQuoted, it is
// ordinary punctuation and leaves mode untouched (the single-quoted-mode
// counterpart to the rule above).
func (l *Lexer) scanDoubleQuote(start int) token.Token {
	switch l.mode {
	case doubleQuoted:
		l.mode = unquoted
	case unquoted:
		l.mode = doubleQuoted
	}
	l.pos = start + 1
	return l.tok(token.DoubleQuoted, start)
}

// scanLiteral consumes a contiguous run of ordinary content bytes, stopping
// before \r, \n, space, ', ", ',', ':', ']', '}', and (only in
// double-quoted mode) before a backslash. { and [ are not terminators: they
// are swallowed into the literal like any other content byte.
func (l *Lexer) scanLiteral(start int) token.Token {
	l.pos = start
	for {
		b, ok := l.byteAt(l.pos)
		if !ok {
			break
		}
		if isLiteralTerminator(b) {
			break
		}
		if b == '\\' && l.mode == doubleQuoted {
			break
		}
		l.pos++
	}
	if l.pos == start {
		// Never emit an empty token; a terminator byte reached here means
		// the dispatch in Next should have already handled it, but guard
		// against infinite loops on any byte this switch doesn't expect.
		l.pos++
	}
	return l.tok(token.Literal, start)
}

func isLiteralTerminator(b byte) bool {
	switch b {
	case '\r', '\n', ' ', '\'', '"', ',', ':', ']', '}':
		return true
	}
	return false
}
