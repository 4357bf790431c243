package cmd

import (
	"fmt"
	"os"

	"github.com/otieno-dev/lugha/internal/builtins"
	"github.com/otieno-dev/lugha/internal/evaluator"
	"github.com/otieno-dev/lugha/internal/host"
	"github.com/otieno-dev/lugha/internal/lexer"
	"github.com/otieno-dev/lugha/internal/parser"
	"github.com/otieno-dev/lugha/internal/runtime"
	"github.com/spf13/cobra"
)

var (
	runEval           string
	dumpAST           bool
	maxIterations     int
	maxRecursionDepth int
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a lugha program",
	Long: `Execute a lugha program from a file, an inline expression, or stdin.

Examples:
  lugha run mpango.lugha
  lugha run -e "andika(\"habari\")"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runEval, "eval", "e", "", "run inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before running")
	runCmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "override the loop safety bound (0 = default 10000)")
	runCmd.Flags().IntVar(&maxRecursionDepth, "max-recursion-depth", 0, "override the call recursion bound (0 = default 1024)")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(runEval, args)
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

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	cfg := evaluator.DefaultConfig()
	if maxIterations > 0 {
		cfg.MaxIterations = maxIterations
	}
	if maxRecursionDepth > 0 {
		cfg.MaxRecursionDepth = maxRecursionDepth
	}

	io := host.NewStd(os.Stdout, os.Stdin, nil)
	table := runtime.NewSymbolTable()
	builtins.RegisterAll(table, io)
	ctx := runtime.NewGlobalContext(filename, table)

	interp := evaluator.New(cfg)
	result := interp.Visit(program, ctx)
	if result.IsError() {
		fmt.Fprintln(os.Stderr, result.Err.Traceback())
		return exitWithError("execution failed")
	}

	return nil
}
