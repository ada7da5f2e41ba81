// Package main implements the paxc command-line interface.
//
// paxc is a standalone front-end for the Pax template language: it lexes
// and parses a .pax file and either reports the parse was successful (or
// prints the resulting AST with --ast), or renders the single diagnostic
// that explains why it wasn't.
//
// Examples:
//
//	paxc button.pax              # parse and report success or failure
//	paxc button.pax --ast        # parse and print the AST
//	paxc button.pax --no-color   # force-disable colored diagnostics
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samuelselleck/pax-parser/pkg/diag"
	"github.com/samuelselleck/pax-parser/pkg/parser"
)

var (
	printAST bool
	noColor  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the root command: one positional argument, a .pax
// file to parse, plus --ast and --no-color.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paxc [file.pax]",
		Short: "Parse a Pax template file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runParse,
	}

	cmd.Flags().BoolVar(&printAST, "ast", false, "print the parsed AST instead of a success message")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")

	return cmd
}

// runParse reads the named file, parses it, and either prints the AST (or
// a success message) to stdout or renders the failing Diagnostic to
// stderr and returns an error so main exits non-zero.
func runParse(cmd *cobra.Command, args []string) error {
	fileName := "test_file.pax"
	if len(args) == 1 {
		fileName = args[0]
	}

	src, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("reading %s: %w", fileName, err)
	}

	tree, parseErr := parser.New(string(src)).Parse()
	if parseErr != nil {
		diag.Render(os.Stderr, fileName, string(src), parseErr, noColor)

		return fmt.Errorf("%s: parse failed", fileName)
	}

	if printAST {
		printTree(cmd.OutOrStdout(), string(src), tree)

		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: parsed ok (%d template entries, %d settings entries)\n",
		fileName, len(tree.Templates), len(tree.Settings))

	return nil
}
