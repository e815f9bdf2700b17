package strsearch

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/strsearch/dfa/kmp"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{InvalidPattern, "InvalidPattern"},
		{InvalidBounds, "InvalidBounds"},
		{UnknownStrategy, "UnknownStrategy"},
		{ErrorKind(99), "UnknownErrorKind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorUnwrapsBuilderCause(t *testing.T) {
	_, err := NewDFA(nil)
	if err == nil {
		t.Fatal("NewDFA(nil) returned nil error")
	}
	if !errors.Is(err, kmp.ErrEmptyPattern) {
		t.Errorf("error %v does not wrap kmp.ErrEmptyPattern", err)
	}
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("error %v does not match ErrInvalidPattern", err)
	}
	if errors.Is(err, ErrInvalidBounds) {
		t.Errorf("error %v unexpectedly matches ErrInvalidBounds", err)
	}

	var se *Error
	if !errors.As(err, &se) || se.Kind != InvalidPattern {
		t.Fatalf("errors.As(%v) did not yield an InvalidPattern *Error", err)
	}
	if !strings.HasPrefix(err.Error(), "strsearch: ") {
		t.Errorf("Error() = %q, want strsearch prefix", err.Error())
	}
}
