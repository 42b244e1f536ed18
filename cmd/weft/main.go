package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/weft-lang/weft/internal/ast"
	"github.com/weft-lang/weft/internal/diag"
	"github.com/weft-lang/weft/internal/lexer"
	"github.com/weft-lang/weft/internal/parser"
)

func main() {
	root := &cobra.Command{
		Use:           "weft",
		Short:         "Front end for the weft text-macro language",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var noColor bool
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	}

	root.AddCommand(parseCmd(), checkCmd(), tokensCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "weft: %v\n", err)
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a weft source file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, p, err := parseFile(args[0])
			if err != nil {
				return err
			}
			if root == ast.None {
				return errors.Errorf("%s: parse failed", args[0])
			}

			fmt.Println(ast.Sprint(p.Tree(), root))
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse weft source files and report syntax errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, name := range args {
				root, _, err := parseFile(name)
				if err != nil {
					return err
				}
				if root == ast.None {
					failed++
					continue
				}
				fmt.Printf("%s: ok\n", name)
			}
			if failed > 0 {
				return errors.Errorf("%d file(s) failed to parse", failed)
			}
			return nil
		},
	}
}

func tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream of a weft source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}

			// Grammar tokens only: string bodies re-tokenize under the
			// grammar rules, which is what this debugging view is for.
			lx := lexer.New(string(data))
			for {
				tok := lx.Advance(lexer.ModeNormal)
				if tok.Type == lexer.EOF {
					return nil
				}
				fmt.Printf("%d:%d\t%s\t%q\n", tok.Span.Line, tok.Span.Column, tok.Type, tok.Raw)
			}
		},
	}
}

// parseFile parses one file. Syntax errors are rendered to stderr through
// the diagnostic formatter and signalled by an ast.None root; I/O errors are
// returned.
func parseFile(name string) (ast.NodeID, *parser.Parser, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return ast.None, nil, errors.Wrapf(err, "reading %s", name)
	}
	src := string(data)

	p := parser.New(src, parser.WithFilename(name))
	root, err := p.ParseDocument()
	if err != nil {
		f := diag.NewFormatter(os.Stderr)
		var perr *parser.Error
		if errors.As(err, &perr) {
			f.Format(perr.ToDiagnostic(), src)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		}
		return ast.None, p, nil
	}

	return root, p, nil
}
