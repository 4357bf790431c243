package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		literal string
		want    Type
	}{
		{"shughuli", SHUGHULI},
		{"kweli", KWELI},
		{"uwongo", UWONGO},
		{"tupu", TUPU},
		{"kama", KAMA},
		{"vinginevyo", VINGINEVYO},
		{"kwa", KWA},
		{"mpaka", MPAKA},
		{"hatua", HATUA},
		{"wakati", WAKATI},
		{"rudisha", RUDISHA},
		{"jina", IDENT},
		{"x", IDENT},
	}
	for _, tc := range tests {
		if got := LookupIdent(tc.literal); got != tc.want {
			t.Errorf("LookupIdent(%q) = %v, want %v", tc.literal, got, tc.want)
		}
	}
}

func TestPositionString(t *testing.T) {
	p := Position{File: "main.lugha", Line: 3, Column: 5, Offset: 20}
	if got, want := p.String(), "main.lugha:3:5"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}

	anon := Position{Line: 1, Column: 1}
	if got, want := anon.String(), "1:1"; got != want {
		t.Errorf("anonymous Position.String() = %q, want %q", got, want)
	}
}

func TestTypeString(t *testing.T) {
	if got, want := PLUS.String(), "PLUS"; got != want {
		t.Errorf("PLUS.String() = %q, want %q", got, want)
	}
}
