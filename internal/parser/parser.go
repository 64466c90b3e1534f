// Package parser implements the recursive-descent parser that turns a
// token.Token stream into a tree.Tree (spec §4.3). The overall shape — a
// Parser struct holding a token cursor and dispatching on the lookahead
// kind — follows the teacher's internal/parser.Parser; the grammar itself
// is spec.md's pragmatic YAML subset rather than the teacher's fuller one.
package parser

import (
	"github.com/shapestone/yaml-core/internal/lexer"
	"github.com/shapestone/yaml-core/internal/perror"
	"github.com/shapestone/yaml-core/internal/token"
	"github.com/shapestone/yaml-core/internal/tree"
)

// Parser drives a single parse of one source buffer into a tree.Tree.
type Parser struct {
	source    []byte
	toks      []token.Token
	positions []token.Pos
	cur       *lexer.Cursor
	b         *tree.Builder
	diags     *Diagnostics
}

// Parse tokenizes and parses source into a Tree. On a ParseFailure, the
// returned Diagnostics is non-nil and carries at least one rendered entry;
// for every other error kind, diagnostics is nil and the caller should
// inspect the error itself.
func Parse(source []byte) (*tree.Tree, *Diagnostics, error) {
	toks, positions := lexer.Tokenize(source)
	p := &Parser{
		source:    source,
		toks:      toks,
		positions: positions,
		cur:       lexer.NewCursor(toks),
		b:         tree.NewBuilder(),
	}

	docs, err := p.parseDocuments()
	if err != nil {
		return nil, p.diags, err
	}

	t := p.b.Finalize(source, toks, positions, docs)
	return t, nil, nil
}

func (p *Parser) peek() token.Token {
	return p.cur.Peek()
}

func (p *Parser) peekAt(n int) token.Token {
	return p.cur.PeekAt(n)
}

func (p *Parser) curPos() token.Pos {
	return p.positions[p.cur.Index()]
}

func (p *Parser) posAt(tokIdx int) token.Pos {
	return p.positions[tokIdx]
}

// isWhitespaceKind reports whether k is one of the four token kinds the
// parser treats as insignificant filler, unless it appears in keep.
func isWhitespaceKind(k token.Kind, keep map[token.Kind]bool) bool {
	switch k {
	case token.Comment, token.Space, token.Tab, token.NewLine:
		return !keep[k]
	}
	return false
}

// skipWS implements eat_comments_and_space(exclusions): it consumes
// comment, space, tab and new_line tokens, except any kind present (true)
// in keep.
func (p *Parser) skipWS(keep map[token.Kind]bool) {
	for isWhitespaceKind(p.peek().Kind, keep) {
		p.cur.Next()
	}
}

// skipHoriz consumes only space and tab, leaving comments and newlines
// untouched. Used for the narrow "same logical line" lookaheads.
func (p *Parser) skipHoriz() {
	for {
		k := p.peek().Kind
		if k == token.Space || k == token.Tab {
			p.cur.Next()
			continue
		}
		return
	}
}

// skipSpaceTabNewline consumes space, tab and new_line but leaves comment
// tokens in place, so callers that must reject comments (flow collections)
// can detect them.
func (p *Parser) skipSpaceTabNewline() {
	for {
		k := p.peek().Kind
		if k == token.Space || k == token.Tab || k == token.NewLine {
			p.cur.Next()
			continue
		}
		return
	}
}

// parseValue dispatches on the next non-whitespace token (spec §4.3.2).
// inFlow reports whether this value is being parsed inside an enclosing
// flow sequence or flow mapping, where a comma is a structural separator rather
// than content an unquoted leaf may absorb.
func (p *Parser) parseValue(inFlow bool) (tree.NodeIndex, error) {
	p.skipWS(nil)
	switch p.peek().Kind {
	case token.Literal:
		if p.looksLikeMapKey() {
			return p.parseBlockMapping(inFlow)
		}
		return p.parseLeaf(inFlow)
	case token.SingleQuoted, token.DoubleQuoted:
		return p.parseLeaf(inFlow)
	case token.SeqItemInd:
		return p.parseBlockSequence(inFlow)
	case token.FlowSeqStart:
		return p.parseFlowSequence()
	case token.FlowMapStart:
		return p.parseFlowMapping()
	default:
		return tree.NoNode, nil
	}
}

// looksLikeMapKey reports whether the literal currently under the cursor is
// followed, after skipping intervening space/tab on the same line, by
// map_value_ind.
func (p *Parser) looksLikeMapKey() bool {
	n := 1
	for {
		t := p.peekAt(n)
		if t.Kind == token.Space || t.Kind == token.Tab {
			n++
			continue
		}
		return t.Kind == token.MapValueInd
	}
}

// parseLeaf parses either a quoted or an unquoted leaf value (spec §4.3.6).
func (p *Parser) parseLeaf(inFlow bool) (tree.NodeIndex, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.SingleQuoted, token.DoubleQuoted:
		return p.parseQuotedLeaf(tok.Kind)
	default:
		return p.parseUnquotedLeaf(inFlow), nil
	}
}

// parseUnquotedLeaf consumes contiguous literal tokens and embedded single
// space tokens while the token after a space is still a literal. Outside
// flow context, a comma is ordinary scalar content rather than a separator
// (spec §6 scenario 3: "no quotes, comma" is the string `no quotes, comma`),
// so a bare comma (and whatever literal/space run follows it) is absorbed
// too; inFlow suppresses that so a flow sequence's own comma separators
// still terminate the leaf.
func (p *Parser) parseUnquotedLeaf(inFlow bool) tree.NodeIndex {
	startTok := uint32(p.cur.Index())
	p.cur.Next() // consume the first literal
	lastConsumed := startTok

	for {
		k := p.peek().Kind
		if k == token.Space && p.peekAt(1).Kind == token.Literal {
			p.cur.Next() // space
			lastConsumed = uint32(p.cur.Index())
			p.cur.Next() // literal
			continue
		}
		if !inFlow && (k == token.Comma || k == token.Literal) {
			lastConsumed = uint32(p.cur.Index())
			p.cur.Next()
			continue
		}
		break
	}

	scope := tree.Scope{StartTok: startTok, EndTok: lastConsumed}
	return p.b.AddNode(tree.Value, scope, tree.Data{})
}

// parseQuotedLeaf consumes a quoted leaf and unescapes its body (§4.3.7).
func (p *Parser) parseQuotedLeaf(openKind token.Kind) (tree.NodeIndex, error) {
	startTok := uint32(p.cur.Index())
	p.cur.Next() // opening quote

	var buf []byte
	for {
		tok := p.peek()
		switch tok.Kind {
		case openKind:
			endTok := uint32(p.cur.Index())
			p.cur.Next()
			off, length := p.b.InternString(buf)
			scope := tree.Scope{StartTok: startTok, EndTok: endTok}
			return p.b.AddNode(tree.StringValue, scope, tree.Data{off, length}), nil
		case token.EOF:
			return tree.NoNode, perror.New(perror.UnexpectedEof, "unterminated quoted string")
		case token.EscapeSeq:
			unescaped, err := p.unescape(openKind, tok.Text(p.source))
			if err != nil {
				return tree.NoNode, err
			}
			buf = append(buf, unescaped...)
			p.cur.Next()
		default:
			buf = append(buf, tok.Text(p.source)...)
			p.cur.Next()
		}
	}
}

// unescape interprets one escape_seq token's raw bytes per the quoting
// style in effect (spec §4.3.7).
func (p *Parser) unescape(openKind token.Kind, raw []byte) ([]byte, error) {
	if openKind == token.SingleQuoted {
		if string(raw) == "''" {
			return []byte{'\''}, nil
		}
		return nil, perror.New(perror.InvalidEscapeSequence, "invalid escape sequence %q in single-quoted string", raw)
	}

	if len(raw) != 2 || raw[0] != '\\' {
		return nil, perror.New(perror.InvalidEscapeSequence, "invalid escape sequence %q", raw)
	}
	switch raw[1] {
	case 'n':
		return []byte{'\n'}, nil
	case 't':
		return []byte{'\t'}, nil
	case '"':
		return []byte{'"'}, nil
	default:
		return nil, perror.New(perror.InvalidEscapeSequence, "invalid escape sequence %q in double-quoted string", raw)
	}
}

// parseBlockMapping parses a block mapping established at the column of
// its first key (spec §4.3.3). inFlow is forwarded to each entry's value so
// a block mapping nested inside a flow sequence still treats comma as a
// structural separator.
func (p *Parser) parseBlockMapping(inFlow bool) (tree.NodeIndex, error) {
	startTok := uint32(p.cur.Index())
	mapCol := p.curPos().Col

	var entries []tree.MapEntry
	for {
		p.skipWS(nil)
		tok := p.peek()
		if tok.Kind == token.EOF || tok.Kind == token.DocStart || tok.Kind == token.DocEnd || tok.Kind == token.FlowMapEnd {
			break
		}
		if p.curPos().Col < mapCol {
			break
		}
		if tok.Kind != token.Literal {
			return tree.NoNode, perror.New(perror.UnexpectedToken, "expected mapping key, got %s", tok.Kind)
		}

		keyTokIdx := uint32(p.cur.Index())
		keyLine := p.curPos().Line
		p.cur.Next() // key

		p.skipWS(nil)
		if p.peek().Kind != token.MapValueInd {
			return tree.NoNode, perror.New(perror.UnexpectedToken, "expected ':' after mapping key")
		}
		p.cur.Next() // ':'

		p.skipWS(nil)
		valPos := p.curPos()
		valueNode, err := p.parseValue(inFlow)
		if err != nil {
			return tree.NoNode, err
		}

		if valueNode != tree.NoNode {
			if p.b.TagOf(valueNode) == tree.Value {
				if valPos.Line != keyLine && valPos.Col <= mapCol {
					return tree.NoNode, perror.New(perror.MalformedYaml, "value in map should have more indentation than the key")
				}
			} else if valPos.Col < mapCol {
				return tree.NoNode, perror.New(perror.MalformedYaml, "value in map should have more indentation than the key")
			}
		}

		entries = append(entries, tree.MapEntry{KeyTok: keyTokIdx, Value: valueNode})
	}

	endTok := lastTokenIndex(p.cur.Index())
	scope := tree.Scope{StartTok: startTok, EndTok: endTok}

	if len(entries) == 1 {
		e := entries[0]
		return p.b.AddNode(tree.MapSingle, scope, tree.Data{e.KeyTok, uint32(e.Value)}), nil
	}
	off := p.b.AddMapExtras(entries)
	return p.b.AddNode(tree.MapMany, scope, tree.Data{off, 0}), nil
}

// parseBlockSequence parses a block sequence established at the column of
// its first seq_item_ind (spec §4.3.4). inFlow is forwarded to each item's
// value for the same reason as in parseBlockMapping.
func (p *Parser) parseBlockSequence(inFlow bool) (tree.NodeIndex, error) {
	startTok := uint32(p.cur.Index())
	listCol := p.curPos().Col

	var elems []tree.NodeIndex
	for {
		p.skipWS(nil)
		if p.peek().Kind != token.SeqItemInd {
			break
		}
		if p.curPos().Col < listCol {
			break
		}
		p.cur.Next() // '-'
		p.skipHoriz()

		val, err := p.parseValue(inFlow)
		if err != nil {
			return tree.NoNode, err
		}
		if val == tree.NoNode {
			return tree.NoNode, perror.New(perror.MalformedYaml, "sequence item missing a value")
		}
		elems = append(elems, val)
	}

	endTok := lastTokenIndex(p.cur.Index())
	scope := tree.Scope{StartTok: startTok, EndTok: endTok}
	return p.b.AddNode(listTagFor(len(elems)), scope, listData(p.b, elems)), nil
}

// parseFlowSequence parses a bracketed flow sequence (spec §4.3.5).
// Comments are forbidden between '[' and ']' (spec §9, Open Question 2:
// resolved in favor of the stricter top-level behavior).
func (p *Parser) parseFlowSequence() (tree.NodeIndex, error) {
	startTok := uint32(p.cur.Index())
	p.cur.Next() // '['

	var elems []tree.NodeIndex
	var endTok uint32
	expectElement := true

	for {
		p.skipSpaceTabNewline()
		tok := p.peek()

		switch {
		case tok.Kind == token.Comment:
			return tree.NoNode, perror.New(perror.MalformedYaml, "comments are not allowed inside a flow sequence")
		case tok.Kind == token.EOF:
			return tree.NoNode, perror.New(perror.UnexpectedEof, "unterminated flow sequence")
		case tok.Kind == token.FlowSeqEnd:
			endTok = uint32(p.cur.Index())
			p.cur.Next()
			return p.b.AddNode(listTagFor(len(elems)), tree.Scope{StartTok: startTok, EndTok: endTok}, listData(p.b, elems)), nil
		case tok.Kind == token.Comma:
			if expectElement {
				return tree.NoNode, p.parseFailure(p.cur.Index(), "empty element in flow sequence")
			}
			p.cur.Next()
			expectElement = true
		default:
			val, err := p.parseValue(true)
			if err != nil {
				return tree.NoNode, err
			}
			if val == tree.NoNode {
				return tree.NoNode, perror.New(perror.MalformedYaml, "expected value in flow sequence")
			}
			elems = append(elems, val)
			expectElement = false
		}
	}
}

// parseFlowMapping parses a bracketed flow mapping (`{}`, `{k: v, ...}`).
// Unlike flow sequences, this grammar is deliberately narrow: keys are bare
// literals followed (after optional space, tab or newline) by ':', values are parsed with inFlow=true
// so a value-side comma or '}' terminates them rather than being absorbed,
// and entries are comma-separated with an optional trailing comma. This
// covers the §8 boundary property for `a: {}` / simple flow mappings without
// taking on the full block-mapping indentation machinery, which flow syntax
// has no use for.
func (p *Parser) parseFlowMapping() (tree.NodeIndex, error) {
	startTok := uint32(p.cur.Index())
	p.cur.Next() // '{'

	var entries []tree.MapEntry
	expectEntry := true

	for {
		p.skipSpaceTabNewline()
		tok := p.peek()

		switch {
		case tok.Kind == token.Comment:
			return tree.NoNode, perror.New(perror.MalformedYaml, "comments are not allowed inside a flow mapping")
		case tok.Kind == token.EOF:
			return tree.NoNode, perror.New(perror.UnexpectedEof, "unterminated flow mapping")
		case tok.Kind == token.FlowMapEnd:
			endTok := uint32(p.cur.Index())
			p.cur.Next()
			scope := tree.Scope{StartTok: startTok, EndTok: endTok}
			if len(entries) == 1 {
				e := entries[0]
				return p.b.AddNode(tree.MapSingle, scope, tree.Data{e.KeyTok, uint32(e.Value)}), nil
			}
			off := p.b.AddMapExtras(entries)
			return p.b.AddNode(tree.MapMany, scope, tree.Data{off, 0}), nil
		case tok.Kind == token.Comma:
			if expectEntry {
				return tree.NoNode, p.parseFailure(p.cur.Index(), "empty entry in flow mapping")
			}
			p.cur.Next()
			expectEntry = true
		default:
			if tok.Kind != token.Literal {
				return tree.NoNode, perror.New(perror.UnexpectedToken, "expected mapping key, got %s", tok.Kind)
			}
			keyTokIdx := uint32(p.cur.Index())
			p.cur.Next() // key

			p.skipSpaceTabNewline()
			if p.peek().Kind != token.MapValueInd {
				return tree.NoNode, perror.New(perror.UnexpectedToken, "expected ':' after mapping key")
			}
			p.cur.Next() // ':'

			p.skipSpaceTabNewline()
			valueNode, err := p.parseValue(true)
			if err != nil {
				return tree.NoNode, err
			}
			entries = append(entries, tree.MapEntry{KeyTok: keyTokIdx, Value: valueNode})
			expectEntry = false
		}
	}
}

func listTagFor(n int) tree.Tag {
	switch n {
	case 0:
		return tree.ListEmpty
	case 1:
		return tree.ListOne
	case 2:
		return tree.ListTwo
	default:
		return tree.ListMany
	}
}

func listData(b *tree.Builder, elems []tree.NodeIndex) tree.Data {
	switch len(elems) {
	case 0:
		return tree.Data{}
	case 1:
		return tree.Data{uint32(elems[0])}
	case 2:
		return tree.Data{uint32(elems[0]), uint32(elems[1])}
	default:
		off := b.AddListExtras(elems)
		return tree.Data{off}
	}
}

// lastTokenIndex converts a cursor index sitting just past the last
// consumed token back into that token's own index, clamping at 0.
func lastTokenIndex(cursorIndex int) uint32 {
	if cursorIndex > 0 {
		return uint32(cursorIndex - 1)
	}
	return 0
}
