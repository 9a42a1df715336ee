// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/strnum/exact"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// widthFlags selects the integer type an exact command runs on.
type widthFlags struct {
	bits     int
	unsigned bool
	radix    int
}

func (f *widthFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.bits, "bits", 64, "operand width: 8, 16, 32 or 64")
	cmd.Flags().BoolVar(&f.unsigned, "unsigned", false, "use an unsigned type")
	cmd.Flags().IntVar(&f.radix, "radix", 10, "radix of the operands (2..36)")
}

var binaryOps = []struct {
	name  string
	short string
}{
	{"add", "a + b, failing on overflow"},
	{"sub", "a - b, failing on overflow"},
	{"mul", "a * b, failing on overflow"},
	{"div", "floor(a / b)"},
	{"mod", "a - floor(a / b) * b, with the sign of b"},
	{"udiv", "a / b with both bit patterns read as unsigned"},
	{"urem", "a mod b with both bit patterns read as unsigned"},
	{"ucmp", "compare a and b as unsigned: -1, 0 or 1"},
}

func (a *app) exactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exact",
		Short: "Overflow-checked integer arithmetic",
	}
	for _, op := range binaryOps {
		cmd.AddCommand(a.binaryCmd(op.name, op.short))
	}
	cmd.AddCommand(a.narrowCmd(), a.chainCmd())

	return cmd
}

func (a *app) binaryCmd(op, short string) *cobra.Command {
	var f widthFlags
	cmd := &cobra.Command{
		Use:   op + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Debug("exact", zap.String("op", op), zap.Strings("args", args),
				zap.Int("bits", f.bits), zap.Bool("unsigned", f.unsigned))
			out, err := dispatch(f, func(ev evaluator) (string, error) {
				return ev.binary(op, args[0], args[1])
			})
			if err != nil {
				return fmt.Errorf("exact %s: %w", op, err)
			}
			newPrinter(cmd.OutOrStdout()).line(out)

			return nil
		},
	}
	f.register(cmd)

	return cmd
}

func (a *app) narrowCmd() *cobra.Command {
	var unsigned bool
	cmd := &cobra.Command{
		Use:   "narrow <value> <bits>",
		Short: "Convert a 64-bit value to a narrower type, failing if it changes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("exact narrow: %w: bits %q", exact.ErrInvalidInput, args[1])
			}
			a.logger.Debug("exact", zap.String("op", "narrow"), zap.String("value", args[0]),
				zap.Int("bits", bits), zap.Bool("unsigned", unsigned))
			out, err := narrow(args[0], bits, unsigned)
			if err != nil {
				return fmt.Errorf("exact narrow: %w", err)
			}
			newPrinter(cmd.OutOrStdout()).line(out)

			return nil
		},
	}
	cmd.Flags().BoolVar(&unsigned, "unsigned", false, "narrow to an unsigned type")

	return cmd
}

func (a *app) chainCmd() *cobra.Command {
	var f widthFlags
	cmd := &cobra.Command{
		Use:   "chain <start> [<op> <value>]...",
		Short: "Apply add/sub/mul/div/mod left to right, stopping at the first failure",
		Example: `  strnum exact chain 7 mul 6 sub 2 div 4
  strnum exact chain 100 mul 3 --bits 8`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 == 0 {
				return fmt.Errorf("expected a start value followed by op/value pairs, got %d args", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Debug("exact", zap.String("op", "chain"), zap.Strings("args", args))
			out, err := dispatch(f, func(ev evaluator) (string, error) {
				return ev.chain(args)
			})
			if err != nil {
				return fmt.Errorf("exact chain: %w", err)
			}
			newPrinter(cmd.OutOrStdout()).line(out)

			return nil
		},
	}
	f.register(cmd)

	return cmd
}

// evaluator runs string-level operations on one concrete integer type.
type evaluator interface {
	binary(op, a, b string) (string, error)
	chain(args []string) (string, error)
}

type typed[T exact.Integer] struct {
	radix int
}

// dispatch picks the concrete type named by f and runs fn on it.
func dispatch(f widthFlags, fn func(evaluator) (string, error)) (string, error) {
	if f.radix < exact.MinRadix || f.radix > exact.MaxRadix {
		return "", fmt.Errorf("%w: radix %d", exact.ErrInvalidInput, f.radix)
	}
	var ev evaluator
	switch {
	case f.bits == 8 && f.unsigned:
		ev = typed[uint8]{f.radix}
	case f.bits == 16 && f.unsigned:
		ev = typed[uint16]{f.radix}
	case f.bits == 32 && f.unsigned:
		ev = typed[uint32]{f.radix}
	case f.bits == 64 && f.unsigned:
		ev = typed[uint64]{f.radix}
	case f.bits == 8:
		ev = typed[int8]{f.radix}
	case f.bits == 16:
		ev = typed[int16]{f.radix}
	case f.bits == 32:
		ev = typed[int32]{f.radix}
	case f.bits == 64:
		ev = typed[int64]{f.radix}
	default:
		return "", fmt.Errorf("%w: bits %d (want 8, 16, 32 or 64)", exact.ErrInvalidInput, f.bits)
	}

	return fn(ev)
}

// parse reads s as a T. Unsigned text goes through exact.ParseUnsigned;
// signed text is parsed as int64 and narrowed.
func (t typed[T]) parse(s string) (T, error) {
	if !exact.IsSigned[T]() {
		return exact.ParseUnsigned[T](s, t.radix)
	}
	v, err := strconv.ParseInt(s, t.radix, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", exact.ErrInvalidInput, s)
	}

	return exact.Narrow[T](v)
}

func (t typed[T]) binary(op, as, bs string) (string, error) {
	x, err := t.parse(as)
	if err != nil {
		return "", err
	}
	y, err := t.parse(bs)
	if err != nil {
		return "", err
	}

	var r T
	switch op {
	case "add":
		r, err = exact.Add(x, y)
	case "sub":
		r, err = exact.Subtract(x, y)
	case "mul":
		r, err = exact.Multiply(x, y)
	case "div":
		r, err = exact.FloorDiv(x, y)
	case "mod":
		r, err = exact.FloorMod(x, y)
	case "udiv":
		r, err = exact.DivideUnsigned(x, y)
	case "urem":
		r, err = exact.RemainderUnsigned(x, y)
	case "ucmp":
		return strconv.Itoa(exact.CompareUnsigned(x, y)), nil
	default:
		return "", fmt.Errorf("%w: unknown operation %q", exact.ErrInvalidInput, op)
	}
	if err != nil {
		return "", err
	}

	return fmt.Sprint(r), nil
}

func (t typed[T]) chain(args []string) (string, error) {
	start, err := t.parse(args[0])
	if err != nil {
		return "", err
	}
	acc := exact.NewAccumulator(start)
	for i := 1; i+1 < len(args); i += 2 {
		v, err := t.parse(args[i+1])
		if err != nil {
			return "", err
		}
		switch args[i] {
		case "add":
			acc.Add(v)
		case "sub":
			acc.Subtract(v)
		case "mul":
			acc.Multiply(v)
		case "div":
			acc.FloorDiv(v)
		case "mod":
			acc.FloorMod(v)
		default:
			return "", fmt.Errorf("%w: unknown operation %q", exact.ErrInvalidInput, args[i])
		}
	}
	r, err := acc.Result()
	if err != nil {
		return "", err
	}

	return fmt.Sprint(r), nil
}

// narrow parses value as int64 (or uint64 when it does not fit) and
// converts it to the requested width.
func narrow(value string, bits int, unsigned bool) (string, error) {
	if v, err := strconv.ParseInt(value, 10, 64); err == nil {
		return narrowFrom(v, bits, unsigned)
	}
	v, err := exact.ParseUnsigned[uint64](value, 10)
	if err != nil {
		return "", err
	}

	return narrowFrom(v, bits, unsigned)
}

func narrowFrom[F exact.Integer](v F, bits int, unsigned bool) (string, error) {
	var (
		out any
		err error
	)
	switch {
	case bits == 8 && unsigned:
		out, err = exact.Narrow[uint8](v)
	case bits == 16 && unsigned:
		out, err = exact.Narrow[uint16](v)
	case bits == 32 && unsigned:
		out, err = exact.Narrow[uint32](v)
	case bits == 64 && unsigned:
		out, err = exact.Narrow[uint64](v)
	case bits == 8:
		out, err = exact.Narrow[int8](v)
	case bits == 16:
		out, err = exact.Narrow[int16](v)
	case bits == 32:
		out, err = exact.Narrow[int32](v)
	case bits == 64:
		out, err = exact.Narrow[int64](v)
	default:
		return "", fmt.Errorf("%w: bits %d (want 8, 16, 32 or 64)", exact.ErrInvalidInput, bits)
	}
	if err != nil {
		return "", err
	}

	return fmt.Sprint(out), nil
}
