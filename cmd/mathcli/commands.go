package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
	"github.com/GriffinCanCode/mathops/internal/providers/math/operations"
	"github.com/GriffinCanCode/mathops/internal/providers/math/statistics"
	"github.com/GriffinCanCode/mathops/internal/providers/tabular"
)

type command struct {
	name    string
	args    string
	help    string
	minArgs int
	maxArgs int // -1 for unbounded
	run     func(args []string, w io.Writer) error
}

var commands = []command{
	{name: "square", args: "number", help: "Calculate square of a number", minArgs: 1, maxArgs: 1, run: runSquare},
	{name: "power", args: "base exponent", help: "Calculate base^exponent", minArgs: 2, maxArgs: 2, run: runPower},
	{name: "factorial", args: "number", help: "Calculate factorial", minArgs: 1, maxArgs: 1, run: runFactorial},
	{name: "fibonacci", args: "count", help: "Generate Fibonacci sequence", minArgs: 1, maxArgs: 1, run: runFibonacci},
	{name: "prime", args: "number", help: "Check if number is prime", minArgs: 1, maxArgs: 1, run: runPrime},
	{name: "stats", args: "numbers [numbers ...]", help: "Calculate statistics for numbers", minArgs: 1, maxArgs: -1, run: runStats},
	{name: "describe", args: "file", help: "Summarize a CSV or JSON data file", minArgs: 1, maxArgs: 1, run: runDescribe},
}

func lookup(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

// execute validates the argument count before running the command.
func (c command) execute(args []string, w io.Writer) error {
	pos, err := positionals(args)
	if err != nil {
		return err
	}
	if len(pos) < c.minArgs {
		missing := strings.Fields(c.args)[len(pos):c.minArgs]
		return &usageError{msg: "the following arguments are required: " + strings.Join(missing, ", ")}
	}
	if c.maxArgs >= 0 && len(pos) > c.maxArgs {
		return &usageError{msg: "unrecognized arguments: " + strings.Join(pos[c.maxArgs:], " ")}
	}
	return c.run(pos, w)
}

// positionals separates help requests from arguments. Everything else is
// positional so negative numbers are not mistaken for flags.
func positionals(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		switch arg {
		case "-h", "-help", "--help":
			return nil, flag.ErrHelp
		case "--":
			return append(out, args[i+1:]...), nil
		}
		out = append(out, arg)
	}
	return out, nil
}

// integerArg parses an argument declared as an integer. Failures are
// usage errors, like any other malformed command line.
func integerArg(name, raw string) (common.Number, error) {
	n, err := common.ParseInteger(raw)
	if err != nil {
		return common.Number{}, &usageError{msg: fmt.Sprintf("argument %s: invalid int value: '%s'", name, raw)}
	}
	return n, nil
}

func runSquare(args []string, w io.Writer) error {
	x, err := common.ParseNumber(args[0])
	if err != nil {
		return err
	}
	result, err := operations.Square(x)
	if err != nil {
		return err
	}
	printResult(w, "square", []field{{"input", x.String()}}, scalar(result.String()))
	return nil
}

func runPower(args []string, w io.Writer) error {
	base, err := common.ParseNumber(args[0])
	if err != nil {
		return err
	}
	exponent, err := common.ParseNumber(args[1])
	if err != nil {
		return err
	}
	result, err := operations.Power(base, exponent)
	if err != nil {
		return err
	}
	printResult(w, "power", []field{
		{"base", base.String()},
		{"exponent", exponent.String()},
	}, scalar(result.String()))
	return nil
}

func runFactorial(args []string, w io.Writer) error {
	n, err := integerArg("number", args[0])
	if err != nil {
		return err
	}
	result, err := operations.Factorial(n)
	if err != nil {
		return err
	}
	printResult(w, "factorial", []field{{"input", n.String()}}, scalar(result.String()))
	return nil
}

func runFibonacci(args []string, w io.Writer) error {
	n, err := integerArg("count", args[0])
	if err != nil {
		return err
	}
	sequence, err := operations.Fibonacci(n)
	if err != nil {
		return err
	}
	items := make([]string, len(sequence))
	for i, v := range sequence {
		items[i] = v.String()
	}
	printResult(w, "fibonacci", []field{{"count", n.String()}}, list(items))
	return nil
}

func runPrime(args []string, w io.Writer) error {
	n, err := integerArg("number", args[0])
	if err != nil {
		return err
	}
	prime, err := operations.IsPrime(n)
	if err != nil {
		return err
	}
	status := "is not prime"
	if prime {
		status = "is prime"
	}
	printResult(w, "prime check", []field{{"input", n.String()}}, scalar(n.String()+" "+status))
	return nil
}

func runStats(args []string, w io.Writer) error {
	numbers := make([]common.Number, 0, len(args))
	for _, arg := range args {
		n, err := common.ParseNumber(arg)
		if err != nil {
			return err
		}
		numbers = append(numbers, n)
	}
	summary, err := statistics.Calculate(numbers)
	if err != nil {
		return err
	}
	printResult(w, "statistics", []field{{"input_numbers", common.FormatList(numbers)}}, dict{
		{"count", fmt.Sprint(summary.Count)},
		{"mean", summary.Mean.String()},
		{"median", summary.Median.String()},
		{"min", summary.Min.String()},
		{"max", summary.Max.String()},
		{"sum", summary.Sum.String()},
	})
	return nil
}

func runDescribe(args []string, w io.Writer) error {
	frame, err := tabular.Load(args[0])
	if err != nil {
		return err
	}
	s := tabular.Summarize(frame)

	result := dict{
		{"row_count", fmt.Sprint(s.RowCount)},
		{"column_count", fmt.Sprint(s.ColumnCount)},
		{"columns", "[" + strings.Join(s.Columns, ", ") + "]"},
	}
	for _, name := range s.Columns {
		line := string(s.DTypes[name])
		if d, ok := s.NumericStats[name]; ok {
			line += ", " + describeLine(d)
		}
		if nulls := s.NullCounts[name]; nulls > 0 {
			line += fmt.Sprintf(", nulls=%d", nulls)
		}
		result = append(result, field{name, line})
	}
	printResult(w, "describe", []field{{"file", args[0]}}, result)
	return nil
}

func describeLine(d tabular.Describe) string {
	parts := []string{fmt.Sprintf("count=%d", d.Count)}
	for _, stat := range []struct {
		name  string
		value *float64
	}{
		{"mean", d.Mean}, {"std", d.Std}, {"min", d.Min}, {"25%", d.Q25},
		{"50%", d.Q50}, {"75%", d.Q75}, {"max", d.Max},
	} {
		value := "nan"
		if stat.value != nil {
			value = common.FormatFloat(*stat.value)
		}
		parts = append(parts, stat.name+"="+value)
	}
	return strings.Join(parts, ", ")
}
