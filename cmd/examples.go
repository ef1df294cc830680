package cmd

import (
	"fmt"
	"github.com/cottand/tinfer/frontend/ast"
	"github.com/cottand/tinfer/frontend/ilerr"
	"github.com/cottand/tinfer/tinfer"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"text/tabwriter"
)

var ExamplesCmd = &cobra.Command{
	Use:          "examples",
	Short:        "List the built-in example programs",
	RunE:         runExamples,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

var runAll *bool

func init() {
	runAll = ExamplesCmd.Flags().BoolP("run", "r", false, "infer every example and show its type or error")
}

func runExamples(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, p := range tinfer.Examples() {
		if !*runAll {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, ast.ExprString(p.Expr()), p.Description)
			continue
		}
		report, err := tinfer.Run(p, tinfer.RunSettings{})
		if err != nil {
			outcome := color.RedString(ilerr.CodeOf(err).String())
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, ast.ExprString(p.Expr()), outcome)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, ast.ExprString(p.Expr()), color.GreenString(report.Result.Type().String()))
	}
	return w.Flush()
}
