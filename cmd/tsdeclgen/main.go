// Command tsdeclgen generates ambient TypeScript declaration text from a Go
// package. Exported functions become function declarations, structs become
// interfaces, consts and vars become variable declarations, and Go doc
// comments are carried over as line comments.
package main

import (
	"log"
	"os"

	"github.com/bjaus/tsdecl"
	"github.com/spf13/cobra"
)

const defaultPattern = "."

var (
	moduleName string
	outputPath string
	indentUnit string
	dumpTree   bool
)

var rootCmd = &cobra.Command{
	Use:   "tsdeclgen [package]",
	Short: "generate TypeScript declaration text from a Go package",
	Long: "tsdeclgen loads a Go package and emits ambient TypeScript declaration " +
		"text describing its exported surface. The package argument accepts any " +
		"go/packages pattern and defaults to the package in the current directory.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := defaultPattern
		if len(args) == 1 {
			pattern = args[0]
		}
		return run(pattern)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&moduleName, "module", "m", "", "declared module name (default: the Go package name)")
	rootCmd.Flags().StringVarP(&outputPath, "out", "o", "", "output file (default: stdout)")
	rootCmd.Flags().StringVar(&indentUnit, "indent", tsdecl.DefaultIndent, "indent unit")
	rootCmd.Flags().BoolVar(&dumpTree, "dump", false, "write the node tree as YAML instead of declaration text")
}

func run(pattern string) error {
	pkg, err := loadPackage(pattern)
	if err != nil {
		return err
	}
	name := moduleName
	if name == "" {
		name = pkg.Name
	}
	tree := generate(pkg, name)

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if dumpTree {
		return tsdecl.Dump(out, tree)
	}
	ctx := tsdecl.DefaultContext()
	ctx.IndentUnit = indentUnit
	ctx.ContinuationIndentUnit = indentUnit
	return tsdecl.Write(out, ctx, tree)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
