// Command rv32c compiles a source program into RV32IM assembly text,
// the way its-hmny's hack_assembler and vm_translator commands drive
// their own parse/lower/generate pipelines from a teris-io/cli action.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/teris-io/cli"

	"github.com/skx/rv32-compiler/codegen"
	"github.com/skx/rv32-compiler/config"
	"github.com/skx/rv32-compiler/lexer"
	"github.com/skx/rv32-compiler/parser"
)

var description = strings.ReplaceAll(`
rv32c compiles a small imperative language - integer variables,
arithmetic, comparisons, if/while and exit/write - into RV32IM
assembly text. It lexes the input, parses it into a syntax tree, and
walks the tree to emit assembly, reporting the first lexical,
syntactic, or code-generation error it hits.
`, "\n", " ")

var app = cli.New(description).
	WithArg(cli.NewArg("input", "The source file to compile")).
	WithArg(cli.NewArg("output", "The assembly file to write")).
	WithOption(cli.NewOption("debug", "Annotate the generated assembly with source-line comments").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("config", "Path to a TOML config file (defaults to the platform config path)").
		WithType(cli.TypeString)).
	WithAction(run)

func run(args []string, options map[string]string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "ERROR: both an input and output file are required")
		return 1
	}

	cfg, err := loadConfig(options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return 1
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: unable to read input file: %s\n", err)
		return 1
	}

	l := lexer.New(source)
	tokens, err := l.Tokens()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	if len(l.Warnings) > 0 && cfg.Diagnostics.WarningsFatal {
		return 1
	}

	prog, err := parser.New(tokens).Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}

	_, debugFlag := options["debug"]
	gen := codegen.New(cfg.Codegen.FrameSize)
	gen.Debug = cfg.Codegen.Debug || debugFlag

	asm, err := gen.Generate(prog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}

	if err := os.WriteFile(args[1], []byte(asm), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: unable to write output file: %s\n", err)
		return 1
	}

	return 0
}

// loadConfig loads the explicit --config path if one is given, and the
// platform default path otherwise. A missing file yields DefaultConfig;
// a malformed one yields an error.
func loadConfig(options map[string]string) (*config.Config, error) {
	if path, ok := options["config"]; ok {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func main() { os.Exit(app.Run(os.Args, os.Stdout)) }
