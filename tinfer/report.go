package tinfer

import (
	"fmt"
	"github.com/cottand/tinfer/frontend/ast"
	"github.com/cottand/tinfer/frontend/infer"
	"github.com/cottand/tinfer/util"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"io"
	"strings"
)

// Report is the outcome of running a Program.
type Report struct {
	Program    Program
	Result     *infer.Result
	CrossCheck *CrossCheck
}

type CrossCheck struct {
	Agrees   bool
	PolyType string
}

type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, "":
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.Errorf("unknown output format %q, expected one of: text, yaml", s)
	}
}

type reportDoc struct {
	Program       string            `yaml:"program"`
	Expr          string            `yaml:"expr"`
	Keying        string            `yaml:"keying"`
	Type          string            `yaml:"type"`
	Constraints   []string          `yaml:"constraints"`
	Substitutions []substitutionDoc `yaml:"substitutions"`
	Types         []typeDoc         `yaml:"types"`
	Unresolved    []string          `yaml:"unresolved,omitempty"`
	CrossCheck    *crossCheckDoc    `yaml:"crossCheck,omitempty"`
}

type substitutionDoc struct {
	Var string `yaml:"var"`
	Is  string `yaml:"is"`
}

type typeDoc struct {
	Expr string `yaml:"expr"`
	Type string `yaml:"type"`
}

type crossCheckDoc struct {
	Agrees   bool   `yaml:"agrees"`
	PolyType string `yaml:"polyType,omitempty"`
}

func (r *Report) doc() reportDoc {
	res := r.Result
	d := reportDoc{
		Program:    r.Program.Name,
		Expr:       ast.ExprString(res.Root),
		Keying:     res.Keying.String(),
		Type:       res.Type().String(),
		Unresolved: res.Unresolved(),
	}
	for _, c := range res.Constraints {
		d.Constraints = append(d.Constraints, c.String())
	}
	for _, s := range res.Substitutions {
		d.Substitutions = append(d.Substitutions, substitutionDoc{Var: s.Var.String(), Is: s.Is.String()})
	}
	for _, t := range res.Types() {
		d.Types = append(d.Types, typeDoc{Expr: ast.ExprString(t.Fst), Type: t.Snd.String()})
	}
	if r.CrossCheck != nil {
		d.CrossCheck = &crossCheckDoc{Agrees: r.CrossCheck.Agrees, PolyType: r.CrossCheck.PolyType}
	}
	return d
}

func (r *Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.doc()); err != nil {
			return errors.Wrap(err, "encoding report")
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, r.text())
		return err
	}
}

var heading = color.New(color.Bold, color.Underline).SprintFunc()

func (r *Report) text() string {
	d := r.doc()
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "%s %s\n", heading("program:"), d.Program)
	fmt.Fprintf(sb, "%s %s\n", heading("expr:"), d.Expr)
	fmt.Fprintf(sb, "%s %s\n", heading("type:"), color.GreenString(d.Type))

	sb.WriteString(heading("constraints:") + "\n")
	for _, c := range d.Constraints {
		fmt.Fprintf(sb, "  %s\n", c)
	}
	sb.WriteString(heading("substitutions:") + "\n")
	for _, s := range d.Substitutions {
		fmt.Fprintf(sb, "  %s := %s\n", s.Var, s.Is)
	}
	sb.WriteString(heading("types:") + "\n")
	for _, t := range d.Types {
		fmt.Fprintf(sb, "  %s : %s\n", t.Expr, t.Type)
	}
	if len(d.Unresolved) > 0 {
		fmt.Fprintf(sb, "%s %s\n", heading("unresolved:"), util.JoinString(d.Unresolved, ", "))
	}
	if d.CrossCheck != nil {
		status := color.GreenString("agrees")
		if !d.CrossCheck.Agrees {
			status = color.RedString("disagrees")
		}
		fmt.Fprintf(sb, "%s %s", heading("poly:"), status)
		if d.CrossCheck.PolyType != "" {
			fmt.Fprintf(sb, " (%s)", d.CrossCheck.PolyType)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
