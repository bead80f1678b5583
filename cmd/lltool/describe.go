package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	spec "github.com/nihei9/lltool/spec/grammar"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var describeFlags = struct {
	color *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "describe",
		Short:   "Print a report in a readable format",
		Example: `  lltool describe report.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDescribe,
	}
	describeFlags.color = cmd.Flags().Bool("color", false, "highlight headings with ANSI escape sequences")
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	report, err := readReport(args[0])
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), report, *describeFlags.color)
}

func readReport(path string) (*spec.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the report %s: %w", path, err)
	}
	defer f.Close()

	d, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	report := &spec.Report{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(d, report)
	default:
		err = json.Unmarshal(d, report)
	}
	if err != nil {
		return nil, fmt.Errorf("Cannot read the report %s: %w", path, err)
	}

	return report, nil
}

const reportTemplate = `{{ heading "Symbols" }}

{{ range .Symbols -}}
{{ printSymbol . }}
{{ end }}
{{ heading "Productions" }}

{{ range .Productions -}}
{{ printProduction . }}
{{ end }}
{{ heading "Nullable" }}

{{ printSymbols .Nullable }}

{{ heading "FIRST" }}

{{ range .First -}}
{{ printFirst . }}
{{ end }}
{{ heading "Components" }}
{{ range .Components }}
{{ subheading .Number }}

{{ printComponent . }}
{{ end }}`

func writeReport(w io.Writer, report *spec.Report, color bool) error {
	headingStyle := lipgloss.NewStyle()
	if color {
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI)
		headingStyle = r.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	}

	symText := func(id int) string {
		sym, ok := report.SymbolByID(id)
		if !ok {
			return fmt.Sprintf("?%v", id)
		}
		return sym.Text
	}

	symTexts := func(ids []int) string {
		texts := make([]string, len(ids))
		for i, id := range ids {
			texts[i] = symText(id)
		}
		return strings.Join(texts, ", ")
	}

	fns := template.FuncMap{
		"heading": func(title string) string {
			if !color {
				return "# " + title
			}
			return headingStyle.Render("# " + title)
		},
		"subheading": func(num int) string {
			title := fmt.Sprintf("## Component %v", num)
			if !color {
				return title
			}
			return headingStyle.Render(title)
		},
		"printSymbol": func(sym *spec.Symbol) string {
			var start string
			if report.StartSymbol != nil && *report.StartSymbol == sym.ID {
				start = " (start)"
			}
			return fmt.Sprintf("%4v %-12v %v%v", sym.ID, sym.Kind, sym.Text, start)
		},
		"printProduction": func(prod *spec.Production) string {
			var b strings.Builder
			for i, id := range prod.Driver {
				if i > 0 {
					b.WriteString(" ")
				}
				b.WriteString(symText(id))
			}
			b.WriteString(" →")
			if len(prod.Body) > 0 {
				for _, id := range prod.Body {
					fmt.Fprintf(&b, " %v", symText(id))
				}
			} else {
				b.WriteString(" ε")
			}
			return fmt.Sprintf("%4v %v", prod.ID, b.String())
		},
		"printSymbols": func(ids []int) string {
			return fmt.Sprintf("{%v}", symTexts(ids))
		},
		"printFirst": func(fst *spec.First) string {
			return fmt.Sprintf("%v: {%v}", symText(fst.Symbol), symTexts(fst.Terminals))
		},
		"printComponent": func(comp *spec.Component) string {
			var b strings.Builder
			fmt.Fprintf(&b, "members: %v\n", symTexts(comp.Members))
			if len(comp.DependsOn) > 0 {
				deps := make([]string, len(comp.DependsOn))
				for i, n := range comp.DependsOn {
					deps[i] = fmt.Sprintf("%v", n)
				}
				fmt.Fprintf(&b, "depends on: %v\n", strings.Join(deps, ", "))
			} else {
				fmt.Fprintf(&b, "depends on: -\n")
			}
			fmt.Fprintf(&b, "FIRST: {%v}", symTexts(comp.First))
			return b.String()
		},
	}

	tmpl, err := template.New("").Funcs(fns).Parse(reportTemplate)
	if err != nil {
		return err
	}

	err = tmpl.Execute(w, report)
	if err != nil {
		return err
	}

	return nil
}
