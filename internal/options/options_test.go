package options

import (
	"context"
	"errors"
	"testing"
)

func TestParseSubtype(t *testing.T) {
	cases := map[string]Subtype{
		"":      SubtypeWLM,
		"efs":   SubtypeEFS,
		" WLM ": SubtypeWLM,
		"Rg":    SubtypeRG,
	}
	for in, want := range cases {
		got, err := ParseSubtype(in)
		if err != nil {
			t.Fatalf("ParseSubtype(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseSubtype(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseSubtype("PIR"); !errors.Is(err, ErrUnknownSubtype) {
		t.Fatalf("expected ErrUnknownSubtype, got %v", err)
	}
}

func TestAnalogSubtypeContext(t *testing.T) {
	ctx := context.Background()
	if got := AnalogSubtype(ctx); got != DefaultSubtype {
		t.Fatalf("default mismatch: %s", got)
	}
	if got := AnalogSubtype(WithAnalogSubtype(ctx, "")); got != DefaultSubtype {
		t.Fatalf("empty subtype must keep default, got %s", got)
	}
	if got := AnalogSubtype(WithAnalogSubtype(ctx, SubtypeRG)); got != SubtypeRG {
		t.Fatalf("subtype not stored: %s", got)
	}
}
