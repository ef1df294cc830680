package cmd

import (
	"fmt"
	"github.com/cottand/tinfer/frontend/ilerr"
	"github.com/cottand/tinfer/frontend/infer"
	"github.com/cottand/tinfer/internal/log"
	"github.com/cottand/tinfer/tinfer"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var InferCmd = &cobra.Command{
	Use:   "infer example-name|script.go",
	Short: "Infer the types of a built-in example or of the expression built by a Go script",
	Long: `Infer the types of every sub-expression of a program.

The program is either the name of a built-in example (see 'tinfer examples'),
or a Go file in package main declaring

	func Build(b *ast.Builder) ast.Expr

which is interpreted to build the expression tree.`,
	RunE:         runInfer,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	outputFormat *string
	logLevel     *int
	keying       *string
	crossCheck   *bool
	noColor      *bool
	debugErrors  *bool
	logSections  *[]string
)

func init() {
	outputFormat = InferCmd.Flags().StringP("output", "o", string(tinfer.FormatText), "output format: text or yaml")
	logLevel = InferCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
	keying = InferCmd.Flags().String("keying", infer.KeyByNode.String(), "what makes two expressions share a type placeholder: node or structure")
	crossCheck = InferCmd.Flags().Bool("crosscheck", false, "also infer the type with the poly Hindley-Milner engine and compare")
	noColor = InferCmd.Flags().Bool("no-color", false, "disable coloured output")
	debugErrors = InferCmd.Flags().Bool("debug-errors", false, "show where errors were raised")
	logSections = InferCmd.Flags().StringSlice("log-sections", nil, "additional log sections to show below warn level")
}

func runInfer(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))
	log.EnableSections(*logSections...)
	if *noColor {
		color.NoColor = true
	}
	ilerr.SetDebugPrinting(*debugErrors)

	format, err := tinfer.ParseFormat(*outputFormat)
	if err != nil {
		return err
	}
	k, ok := infer.ParseKeying(*keying)
	if !ok {
		return errors.Errorf("unknown keying %q, expected node or structure", *keying)
	}

	program, err := loadProgram(args[0])
	if err != nil {
		return err
	}

	report, err := tinfer.Run(program, tinfer.RunSettings{Keying: k, CrossCheck: *crossCheck})
	if err != nil {
		var ileErr ilerr.IleError
		if errors.As(err, &ileErr) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("%s failed to type:", program.Name), ilerr.FormatWithCode(ileErr))
		}
		return err
	}
	return report.Write(cmd.OutOrStdout(), format)
}

func loadProgram(target string) (tinfer.Program, error) {
	if !strings.HasSuffix(target, ".go") {
		program, ok := tinfer.LookupExample(target)
		if !ok {
			return tinfer.Program{}, errors.Errorf("no example named %q, see 'tinfer examples'", target)
		}
		return program, nil
	}

	path, err := filepath.Abs(target)
	if err != nil {
		return tinfer.Program{}, errors.Wrap(err, "could not get absolute path of target")
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return tinfer.Program{}, errors.Wrap(err, "could not read script")
	}
	return tinfer.LoadScript(filepath.Base(path), string(src), os.Stderr)
}
