package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/mathops/internal/infrastructure/logging"
)

const banner = `Mathematical Operations CLI
Demonstrating direct access to business logic functions
(The same functions used by the REST API)`

// usageError marks bad command line input. It exits with status 2.
type usageError struct {
	command string
	msg     string
}

func (e *usageError) Error() string {
	return e.msg
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fmt.Fprintln(stdout, banner)

	if len(args) == 0 {
		printHelp(stdout)
		return 1
	}

	global := flag.NewFlagSet("mathcli", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	verbose := global.Bool("verbose", false, "log progress to stderr")
	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printHelp(stdout)
			return 0
		}
		return reportUsage(stderr, &usageError{msg: err.Error()})
	}

	logger := logging.NewNop()
	if *verbose {
		logger = logging.NewWriter(stderr, "debug")
	}
	defer func() { _ = logger.Sync() }()

	rest := global.Args()
	if len(rest) == 0 {
		return reportUsage(stderr, &usageError{msg: "the following arguments are required: command"})
	}

	cmd, ok := lookup(rest[0])
	if !ok {
		return reportUsage(stderr, &usageError{msg: fmt.Sprintf("argument command: invalid choice: '%s'", rest[0])})
	}

	logger.Debug("Running command", zap.String("command", cmd.name), zap.Strings("args", rest[1:]))
	start := time.Now()

	err := cmd.execute(rest[1:], stdout)
	var uerr *usageError
	switch {
	case errors.Is(err, flag.ErrHelp):
		printCommandHelp(stdout, cmd)
		return 0
	case errors.As(err, &uerr):
		uerr.command = cmd.name
		return reportUsage(stderr, uerr)
	case err != nil:
		logger.Debug("Command failed", zap.String("command", cmd.name), zap.Error(err))
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	logger.Debug("Command finished", zap.String("command", cmd.name), zap.Duration("elapsed", time.Since(start)))
	return 0
}

func reportUsage(w io.Writer, err *usageError) int {
	prog := "mathcli"
	if err.command != "" {
		prog += " " + err.command
		if cmd, ok := lookup(err.command); ok {
			fmt.Fprintf(w, "usage: %s %s\n", prog, cmd.args)
		}
	} else {
		fmt.Fprintln(w, "usage: mathcli [-verbose] {square,power,factorial,fibonacci,prime,stats,describe} ...")
	}
	fmt.Fprintf(w, "%s: error: %s\n", prog, err.msg)
	return 2
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "usage: mathcli [-verbose] {square,power,factorial,fibonacci,prime,stats,describe} ...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Mathematical Operations CLI - Direct access to business logic")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available operations:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.help)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -h, -help  show this help message and exit")
	fmt.Fprintln(w, "  -verbose   log progress to stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	for _, example := range []string{
		"square 5", "power 2 8", "factorial 5", "fibonacci 10",
		"prime 17", "stats 1 2 3 4 5", "describe data.csv",
	} {
		fmt.Fprintf(w, "  mathcli %s\n", example)
	}
}

func printCommandHelp(w io.Writer, cmd command) {
	fmt.Fprintf(w, "usage: mathcli %s %s\n\n%s\n", cmd.name, cmd.args, cmd.help)
}
