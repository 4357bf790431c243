package cmd

import (
	"fmt"
	"os"

	"github.com/otieno-dev/lugha/internal/lexer"
	"github.com/otieno-dev/lugha/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexEval    string
	showPos    bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a lugha file or expression",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens")
}

func runLex(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(lexEval, args)
	if err != nil {
		return err
	}

	l := lexer.New(filename, input)
	errorCount := 0
	for {
		tok := l.NextToken()
		if !onlyErrors || tok.Type == token.ILLEGAL {
			printToken(tok)
		}
		if tok.Type == token.ILLEGAL {
			errorCount++
		}
		if tok.Type == token.EOF {
			break
		}
	}

	if errorCount > 0 {
		return exitWithError("found %d illegal token(s)", errorCount)
	}
	return nil
}

func printToken(tok token.Token) {
	output := fmt.Sprintf("[%-10s]", tok.Type)
	if tok.Type == token.EOF {
		output += " EOF"
	} else {
		output += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Fprintln(os.Stdout, output)
}
