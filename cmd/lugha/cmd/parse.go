package cmd

import (
	"fmt"
	"os"

	"github.com/otieno-dev/lugha/internal/lexer"
	"github.com/otieno-dev/lugha/internal/parser"
	"github.com/spf13/cobra"
)

var parseEval string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse lugha source and print its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(parseEval, args)
	if err != nil {
		return err
	}

	l := lexer.New(filename, input)
	p := parser.New(l)
	program := p.Parse()

	if errs := p.Errors(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "Parser errors:")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		return exitWithError("parsing failed with %d error(s)", len(errs))
	}

	fmt.Println(program.String())
	return nil
}
