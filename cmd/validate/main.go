package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GriffinCanCode/mathops/internal/domain/layout"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() { fmt.Fprintln(stdout, "usage: validate [path]") }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	root := "."
	if fs.NArg() == 1 {
		root = fs.Arg(0)
	}
	if _, err := os.Stat(root); err != nil {
		fmt.Fprintln(stdout, "Error: Project path does not exist")
		return 1
	}

	fmt.Fprintf(stdout, "Validating template compliance in: %s\n", root)
	report, err := layout.Validate(root)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	printReport(stdout, report)
	if !report.OK() {
		return 1
	}
	return 0
}

func printReport(w io.Writer, r *layout.Report) {
	for _, s := range r.Sections {
		fmt.Fprintf(w, "\n%s\n", s.Title)
		for _, item := range s.Passed {
			fmt.Fprintf(w, "  ✓ %s\n", item)
		}
	}

	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\nVALIDATION RESULTS\n%s\n", rule, rule)

	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "\n❌ ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  • %s\n", e)
		}
	}
	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "\n⚠️  WARNINGS (%d):\n", len(r.Warnings))
		for _, warning := range r.Warnings {
			fmt.Fprintf(w, "  • %s\n", warning)
		}
	}

	switch {
	case len(r.Errors) == 0 && len(r.Warnings) == 0:
		fmt.Fprintln(w, "\n✓ All checks passed! Project follows template structure.")
	case len(r.Errors) == 0:
		fmt.Fprintln(w, "\n✓ No critical errors. Review warnings above.")
	default:
		fmt.Fprintln(w, "\n✗ Validation failed. Fix errors above.")
	}
}
