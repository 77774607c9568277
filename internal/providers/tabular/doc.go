// Package tabular loads, describes and reshapes small CSV and JSON tables.
//
// A Frame is a set of ordered, equally long columns whose types (int64,
// float64, bool, object) are inferred on load. Integer columns with
// missing cells widen to float64.
//
// Failures while parsing or validating arguments are value errors from
// the math common package; a missing input file is a *NotFoundError.
package tabular
