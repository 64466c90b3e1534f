package token

import "testing"

func TestKind_String(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{EOF, "EOF"},
		{Literal, "Literal"},
		{DocStart, "DocStart"},
		{Kind(999), "Unknown"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.k, got, c.want)
		}
	}
}

func TestToken_Text(t *testing.T) {
	src := []byte("hello world")
	tok := Token{Kind: Literal, Start: 0, End: 5}
	if got := string(tok.Text(src)); got != "hello" {
		t.Errorf("Text() = %q, want %q", got, "hello")
	}
}
