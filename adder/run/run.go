// Package run implements the adder tool in a testable way.
package run

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexflint/go-arg"
	"github.com/toejough/callshape/internal/core"
)

// Run parses args, adds the two operands through core.InvokeChecked with the selected overflow policy, and writes
// the decimal sum followed by a newline to stdout.
func Run(args []string, stdout io.Writer) error {
	parsed, err := parseArgs(args, stdout)
	if errors.Is(err, arg.ErrHelp) {
		return nil
	}

	if err != nil {
		return err
	}

	policy, err := core.ParsePolicy(parsed.Overflow)
	if err != nil {
		return err
	}

	sum, err := core.InvokeChecked(core.Addition(policy), parsed.A, parsed.B)
	if err != nil {
		return fmt.Errorf("failed to add %d and %d: %w", parsed.A, parsed.B, err)
	}

	_, err = fmt.Fprintln(stdout, sum)
	if err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

// cliArgs defines the command-line arguments for the adder.
type cliArgs struct {
	A        int    `arg:"positional" default:"1111"  help:"first operand"`
	B        int    `arg:"positional" default:"2222"  help:"second operand"`
	Overflow string `arg:"--overflow" default:"fail"  help:"overflow policy: fail, wrap or saturate"`
}

// parseArgs parses command-line arguments into cliArgs. On --help, the usage is written to out and arg.ErrHelp is
// returned.
func parseArgs(args []string, out io.Writer) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{Program: "adder"}, &parsed)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if errors.Is(err, arg.ErrHelp) {
		parser.WriteHelp(out)

		return cliArgs{}, err
	}

	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return parsed, nil
}
