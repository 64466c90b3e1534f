package perror

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew_FormatsMessage(t *testing.T) {
	err := New(TypeMismatch, "expected %s, got %s", "int", "string")
	want := "yaml: TypeMismatch: expected int, got string"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(ParseFailure, cause, "while parsing")
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}

func TestIs_MatchesDirectKind(t *testing.T) {
	err := New(DuplicateMapKey, "key %q repeated", "a")
	if !Is(err, DuplicateMapKey) {
		t.Errorf("Is(err, DuplicateMapKey) = false, want true")
	}
	if Is(err, Overflow) {
		t.Errorf("Is(err, Overflow) = true, want false")
	}
}

func TestIs_UnwrapsWrappedStdlibError(t *testing.T) {
	inner := New(Overflow, "too big")
	wrapped := fmt.Errorf("context: %w", inner)
	if !Is(wrapped, Overflow) {
		t.Errorf("Is should match a *Error wrapped with fmt.Errorf %%w")
	}
	outer := errors.New("context: " + inner.Error())
	if Is(outer, Overflow) {
		t.Errorf("Is should not match a plain errors.New without Unwrap")
	}
}

func TestIs_NilError(t *testing.T) {
	if Is(nil, Overflow) {
		t.Errorf("Is(nil, ...) should be false")
	}
}
