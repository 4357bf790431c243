package cmd

import (
	"fmt"
	"io"
	"os"
)

// readSource resolves a command's source text: the -e/--eval flag if set,
// otherwise the named file argument, otherwise stdin. Mirrors how the
// teacher's run/lex/parse subcommands each resolve their input.
func readSource(evalExpr string, args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	data, readErr := io.ReadAll(os.Stdin)
	if readErr != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", readErr)
	}
	return string(data), "<stdin>", nil
}
