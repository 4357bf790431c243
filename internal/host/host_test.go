package host

import (
	"strings"
	"testing"
)

func TestStdWriteLine(t *testing.T) {
	var out strings.Builder
	s := NewStd(&out, strings.NewReader(""), nil)
	s.WriteLine("habari")
	if got, want := out.String(), "habari\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStdReadLineEOFReturnsEmpty(t *testing.T) {
	var out strings.Builder
	s := NewStd(&out, strings.NewReader(""), nil)
	if got := s.ReadLine("jina? "); got != "" {
		t.Errorf("ReadLine on EOF = %q, want empty", got)
	}
}

func TestStdReadLineTrimsNewline(t *testing.T) {
	var out strings.Builder
	s := NewStd(&out, strings.NewReader("Asha\n"), nil)
	if got, want := s.ReadLine(""), "Asha"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFakeRecordsOutputAndReplaysInput(t *testing.T) {
	f := NewFake("42")
	f.WriteLine("swali")
	if got := f.ReadLine("? "); got != "42" {
		t.Errorf("ReadLine = %q, want 42", got)
	}
	if got := f.ReadLine(""); got != "" {
		t.Errorf("ReadLine past end = %q, want empty (EOF)", got)
	}
	if !strings.Contains(f.Output.String(), "swali") {
		t.Error("Output missing earlier WriteLine call")
	}
}
