// Package layout validates that a project created from this template keeps
// its structure: the required files, a business logic package exposing the
// numeric operations, an API package built on gin, a flag based CLI and the
// expected tests.
//
// Go sources are inspected with go/parser, go.mod with x/mod/modfile and
// file sets are matched with doublestar globs.
//
// Example Usage:
//
//	report, err := layout.Validate(".")
//	if err == nil && !report.OK() {
//	    // print report.Errors
//	}
package layout
