package main

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/calebcase/bigint/integer"
)

var signColor = color.New(color.FgYellow)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <a> <op> <b>",
		Short: "Evaluate a binary operation (+ - * / % << >> pow cmp)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}

			b, err := parseOperand(args[2])
			if err != nil {
				return err
			}

			result, err := evaluate(a, args[1], b)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newPowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow <base> <exp>",
		Short: "Raise base to a non-negative power",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseOperand(args[0])
			if err != nil {
				return err
			}

			exp, err := parseOperand(args[1])
			if err != nil {
				return err
			}

			result, err := evaluate(base, "pow", exp)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newNegCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neg <a>",
		Short: "Negate a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.Neg())
			return nil
		},
	}
}

// newStepCmd builds inc and dec. With --post the value of the expression
// (the operand before the step) is printed ahead of the updated operand.
func newStepCmd(name, short string, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " <a>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}

			old := a.Clone()

			if name == "inc" {
				a.Inc()
			} else {
				a.Dec()
			}

			if opts.cfg.Post {
				fmt.Fprintln(cmd.OutOrStdout(), old)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a)

			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.cfg.Post, "post", false, "print the value before the step as well")

	return cmd
}

func newBitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bits <a>",
		Short: "Dump the two's complement bytes of a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}

			sign, dump, _ := strings.Cut(a.Bits(), " ")
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", signColor.Sprint(sign), dump)

			return nil
		},
	}
}

func parseOperand(s string) (*integer.Int, error) {
	x, err := integer.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("operand %q: %w", s, err)
	}

	return x, nil
}

// evaluate applies op to a and b. Neither operand is modified.
func evaluate(a *integer.Int, op string, b *integer.Int) (*integer.Int, error) {
	switch op {
	case "+":
		return integer.Sum(a, b), nil
	case "-":
		return integer.Difference(a, b), nil
	case "*", "x":
		return integer.Product(a, b), nil
	case "/":
		return integer.Quotient(a, b)
	case "%":
		return integer.Rem(a, b)
	case "cmp":
		return integer.New(int64(integer.Compare(a, b))), nil
	case "<<", ">>", "pow":
		n, err := count(b)
		if err != nil {
			return nil, err
		}

		switch op {
		case "<<":
			return integer.ShiftLeft(a, n), nil
		case ">>":
			return integer.ShiftRight(a, n), nil
		}

		return integer.Pow(a, n), nil
	}

	return nil, fmt.Errorf("unknown operator %q", op)
}

// count converts a shift amount or exponent to uint.
func count(b *integer.Int) (uint, error) {
	v, err := b.Int64()
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", b, err)
	}

	n, err := safecast.Conv[uint](v)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", b, err)
	}

	return n, nil
}
