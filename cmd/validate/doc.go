// Command validate checks that a project keeps the template structure.
//
// Usage:
//
//	validate [path]
//
// path defaults to the current directory. The command exits 1 when any
// error is found; warnings are printed but do not fail the run.
package main
