package lexer

import (
	"testing"

	"github.com/shapestone/yaml-core/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func assertKinds(t *testing.T, src string, want []token.Kind) {
	t.Helper()
	toks, _ := Tokenize([]byte(src))
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) kinds = %v, want %v", src, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tokenize(%q)[%d] = %s, want %s", src, i, got[i], want[i])
		}
	}
}

func TestTokenize_DocMarkers(t *testing.T) {
	assertKinds(t, "---", []token.Kind{token.DocStart, token.EOF})
	assertKinds(t, "...", []token.Kind{token.DocEnd, token.EOF})
	assertKinds(t, "----", []token.Kind{token.Literal, token.EOF})
}

func TestTokenize_SeqItemIndVsLiteral(t *testing.T) {
	assertKinds(t, "- a", []token.Kind{token.SeqItemInd, token.Space, token.Literal, token.EOF})
	assertKinds(t, "-a", []token.Kind{token.Literal, token.EOF})
}

func TestTokenize_SingleQuoteModeToggle(t *testing.T) {
	toks, _ := Tokenize([]byte(`'it''s'`))
	got := kinds(toks)
	want := []token.Kind{token.SingleQuoted, token.Literal, token.EscapeSeq, token.Literal, token.SingleQuoted, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenize_QuoteCharCrossMode(t *testing.T) {
	// A ' inside a double-quoted string is ordinary content punctuation,
	// not a mode change.
	toks, _ := Tokenize([]byte(`"it's"`))
	got := kinds(toks)
	want := []token.Kind{token.DoubleQuoted, token.Literal, token.SingleQuoted, token.Literal, token.DoubleQuoted, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenize_EscapeOnlyInDoubleQuoted(t *testing.T) {
	toks, _ := Tokenize([]byte(`"a\nb"`))
	got := kinds(toks)
	want := []token.Kind{token.DoubleQuoted, token.Literal, token.EscapeSeq, token.Literal, token.DoubleQuoted, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenize_PositionsTrackLinesAndColumns(t *testing.T) {
	_, positions := Tokenize([]byte("ab\ncd"))
	if positions[0].Line != 0 || positions[0].Col != 0 {
		t.Errorf("tok0 pos = %+v, want line 0 col 0", positions[0])
	}
	// positions[1] is the newline token itself (col 2 on line 0)
	if positions[1].Line != 0 || positions[1].Col != 2 {
		t.Errorf("newline pos = %+v, want line 0 col 2", positions[1])
	}
	if positions[2].Line != 1 || positions[2].Col != 0 {
		t.Errorf("tok2 pos = %+v, want line 1 col 0", positions[2])
	}
}

func TestTokenize_LoneCarriageReturnTolerated(t *testing.T) {
	toks, _ := Tokenize([]byte("a\rb"))
	got := kinds(toks)
	want := []token.Kind{token.Literal, token.NewLine, token.Literal, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCursor_PeekAtClampsRange(t *testing.T) {
	toks, _ := Tokenize([]byte("a"))
	c := NewCursor(toks)
	if c.PeekAt(-5).Kind != toks[0].Kind {
		t.Errorf("PeekAt(-5) should clamp to first token")
	}
	if c.PeekAt(100).Kind != token.EOF {
		t.Errorf("PeekAt(100) should clamp to EOF")
	}
}

func TestCursor_NextStopsAtEOF(t *testing.T) {
	toks, _ := Tokenize([]byte(""))
	c := NewCursor(toks)
	first := c.Next()
	if first.Kind != token.EOF {
		t.Fatalf("first token of empty source = %s, want EOF", first.Kind)
	}
	second := c.Next()
	if second.Kind != token.EOF {
		t.Errorf("Next() past EOF = %s, want EOF", second.Kind)
	}
}
