package parser

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shapestone/yaml-core/internal/perror"
	"github.com/shapestone/yaml-core/internal/token"
	"github.com/shapestone/yaml-core/internal/tree"
)

// Diagnostic is one rendered, source-located parse failure (spec §4.3.8).
// SpanStart/SpanMain/SpanEnd are byte offsets within LineText, used to draw
// the three-part caret underneath the offending line.
type Diagnostic struct {
	Path     string
	Line     int
	Col      int
	LineText string

	SpanStart int
	SpanMain  int
	SpanEnd   int

	Message string
}

// String renders the diagnostic in the fixture format:
//
//	(memory):2:1: error: expected end of document
//	key2: value2
//	^~~~~~~~~~~~
func (d Diagnostic) String() string {
	width := d.SpanEnd - d.SpanStart
	if width < 1 {
		width = 1
	}
	caret := strings.Repeat(" ", d.SpanStart) + "^" + strings.Repeat("~", width-1)
	return fmt.Sprintf("%s:%d:%d: error: %s\n%s\n%s", d.Path, d.Line+1, d.Col+1, d.Message, d.LineText, caret)
}

// Diagnostics bundles every ParseFailure rendered during one parse. BundleID
// is generated lazily, once, the first time a diagnostic is recorded.
type Diagnostics struct {
	BundleID uuid.UUID
	Items    []Diagnostic
}

func (p *Parser) ensureDiagnostics() *Diagnostics {
	if p.diags == nil {
		p.diags = &Diagnostics{BundleID: uuid.New()}
	}
	return p.diags
}

// buildDiagnostic locates the line containing tokIdx and derives the
// three-part caret span: leading whitespace, the token's own column, and
// the trimmed end of the line.
func (p *Parser) buildDiagnostic(tokIdx int, message string) Diagnostic {
	tok := p.toks[tokIdx]
	pos := p.positions[tokIdx]

	lineStart := tok.Start - pos.Col
	lineEnd := lineStart
	for lineEnd < len(p.source) && p.source[lineEnd] != '\n' && p.source[lineEnd] != '\r' {
		lineEnd++
	}
	lineText := string(p.source[lineStart:lineEnd])

	leadingWS := 0
	for leadingWS < len(lineText) && (lineText[leadingWS] == ' ' || lineText[leadingWS] == '\t') {
		leadingWS++
	}
	trimmedEnd := len(lineText)
	for trimmedEnd > 0 && (lineText[trimmedEnd-1] == ' ' || lineText[trimmedEnd-1] == '\t') {
		trimmedEnd--
	}

	return Diagnostic{
		Path:      "(memory)",
		Line:      pos.Line,
		Col:       pos.Col,
		LineText:  lineText,
		SpanStart: leadingWS,
		SpanMain:  pos.Col,
		SpanEnd:   trimmedEnd,
		Message:   message,
	}
}

// parseFailure records a rendered diagnostic and returns the corresponding
// perror.ParseFailure error. Only three cases call this: a malformed
// document footer, an empty element between two commas in a flow sequence,
// and an empty entry between two commas in a flow mapping; every other error kind is
// constructed directly via perror.New without touching the diagnostic
// buffer.
func (p *Parser) parseFailure(tokIdx int, message string) error {
	d := p.buildDiagnostic(tokIdx, message)
	diags := p.ensureDiagnostics()
	diags.Items = append(diags.Items, d)
	return perror.New(perror.ParseFailure, "%s", message)
}

// parseDocuments parses every document in the source, in order.
func (p *Parser) parseDocuments() ([]tree.NodeIndex, error) {
	p.skipWS(nil)

	var docs []tree.NodeIndex
	for p.peek().Kind != token.EOF {
		doc, err := p.parseDocument()
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		p.skipWS(nil)
	}
	return docs, nil
}

// parseDocument parses one `---`-headed (or implicit) document, its
// optional `!tag` directive, its value, and its footer (spec §4.3.1).
func (p *Parser) parseDocument() (tree.NodeIndex, error) {
	startTok := uint32(p.cur.Index())

	var directiveTok uint32
	hasDirective := false

	if p.peek().Kind == token.DocStart {
		if p.curPos().Col != 0 {
			return tree.NoNode, perror.New(perror.MalformedYaml, "document header must begin at column 0")
		}
		p.cur.Next() // '---'
		p.skipHoriz()

		if p.peek().Kind == token.Tag {
			p.cur.Next() // '!'
			if p.peek().Kind != token.Literal {
				return tree.NoNode, perror.New(perror.UnexpectedToken, "expected directive name after '!'")
			}
			directiveTok = uint32(p.cur.Index())
			hasDirective = true
			p.cur.Next()
		}
	}

	p.skipWS(nil)
	valueNode, err := p.parseValue(false)
	if err != nil {
		return tree.NoNode, err
	}

	if err := p.parseDocumentFooter(); err != nil {
		return tree.NoNode, err
	}

	if hasDirective {
		return p.b.AddNode(tree.DocWithDirective, tree.Scope{StartTok: startTok, EndTok: directiveTok}, tree.Data{uint32(valueNode), directiveTok}), nil
	}
	endTok := lastTokenIndex(p.cur.Index())
	return p.b.AddNode(tree.Doc, tree.Scope{StartTok: startTok, EndTok: endTok}, tree.Data{uint32(valueNode), 0}), nil
}

// parseDocumentFooter validates what follows a document's value: EOF is
// fine, a column-0 '...' is consumed, a column-0 '---' is left for the next
// parseDocument call, and anything else is a ParseFailure.
func (p *Parser) parseDocumentFooter() error {
	p.skipWS(nil)

	tok := p.peek()
	switch tok.Kind {
	case token.EOF:
		return nil
	case token.DocEnd:
		if p.curPos().Col == 0 {
			p.cur.Next()
			return nil
		}
	case token.DocStart:
		if p.curPos().Col == 0 {
			return nil
		}
	}

	return p.parseFailure(p.cur.Index(), "expected end of document")
}
