package main

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

type field struct {
	key   string
	value string
}

// result is what an operation prints under its labeled inputs.
type result interface {
	print(w io.Writer)
}

type scalar string

func (s scalar) print(w io.Writer) {
	fmt.Fprintf(w, "Result: %s\n", string(s))
}

type list []string

func (l list) print(w io.Writer) {
	fmt.Fprintf(w, "Result: [%s]\n", strings.Join(l, ", "))
	fmt.Fprintf(w, "Length: %d\n", len(l))
}

type dict []field

func (d dict) print(w io.Writer) {
	fmt.Fprintln(w, "Result:")
	for _, f := range d {
		fmt.Fprintf(w, "  %s: %s\n", f.key, f.value)
	}
}

// printResult writes the header, the labeled inputs, the result and a
// footer as wide as the header's operation name plus fifteen.
func printResult(w io.Writer, operation string, inputs []field, r result) {
	fmt.Fprintf(w, "\n=== %s OPERATION ===\n", strings.ToUpper(operation))
	for _, f := range inputs {
		fmt.Fprintf(w, "%s: %s\n", capitalize(f.key), f.value)
	}
	r.print(w)
	fmt.Fprintln(w, strings.Repeat("=", len(operation)+15))
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
