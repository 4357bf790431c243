package host

import "strings"

// Fake is a recording/scripted IO implementation for tests: WriteLine/Write
// calls accumulate into Output, and ReadLine pops from a pre-loaded queue
// of Lines (returning "" once exhausted, modeling EOF).
type Fake struct {
	Output       strings.Builder
	Lines        []string
	readIdx      int
	ClearedCount int
}

// NewFake builds a Fake pre-loaded with the given input lines.
func NewFake(lines ...string) *Fake {
	return &Fake{Lines: lines}
}

func (f *Fake) WriteLine(s string) { f.Output.WriteString(s); f.Output.WriteString("\n") }
func (f *Fake) Write(s string)     { f.Output.WriteString(s) }

func (f *Fake) ReadLine(prompt string) string {
	f.Output.WriteString(prompt)
	if f.readIdx >= len(f.Lines) {
		return ""
	}
	line := f.Lines[f.readIdx]
	f.readIdx++
	return line
}

func (f *Fake) ClearScreen() { f.ClearedCount++ }
