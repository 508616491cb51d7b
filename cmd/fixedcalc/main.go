// Command fixedcalc evaluates a single binary arithmetic expression
// over two fixed-point operands from the command line, letting the
// caller pick the rounding mode and precision policy exercised.
package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	fixed "github.com/oanda/libfixed"
	"github.com/oanda/libfixed/precision"
	"github.com/oanda/libfixed/rounding"
)

func init() {
	rootCmd.Flags().String("op", "add", "operation to perform: add, sub, mul, div, mod")
	rootCmd.Flags().String("rounding", "TO_NEAREST_HALF_TO_EVEN", "rounding mode applied when decimal places must be dropped")
	rootCmd.Flags().String("precision", "MAX_OPERAND_PLUS_2", "precision policy applied to mul/div results")
}

var rootCmd = &cobra.Command{
	Use:   "fixedcalc <a> <b>",
	Short: "evaluate a fixed-point arithmetic expression",
	Args:  cobra.ExactArgs(2),

	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := cmd.Flags().GetString("op")
		if err != nil {
			return err
		}
		roundingName, err := cmd.Flags().GetString("rounding")
		if err != nil {
			return err
		}
		precisionName, err := cmd.Flags().GetString("precision")
		if err != nil {
			return err
		}

		mode, err := parseRoundingMode(roundingName)
		if err != nil {
			return err
		}
		policy, err := parsePrecisionPolicy(precisionName)
		if err != nil {
			return err
		}

		a, err := fixed.NewFromString(args[0])
		if err != nil {
			return errors.Wrapf(err, "parsing first operand %q", args[0])
		}
		b, err := fixed.NewFromString(args[1])
		if err != nil {
			return errors.Wrapf(err, "parsing second operand %q", args[1])
		}

		a = a.WithRoundingMode(mode).WithMultPrecisionPolicy(policy).WithDivPrecisionPolicy(policy)
		b = b.WithRoundingMode(mode).WithMultPrecisionPolicy(policy).WithDivPrecisionPolicy(policy)

		result, err := evaluate(op, a, b)
		if err != nil {
			return errors.Wrapf(err, "evaluating %s", op)
		}

		log.WithFields(log.Fields{
			"op":        op,
			"rounding":  mode,
			"precision": policy,
		}).Debug("evaluated expression")

		cmd.Println(result.String())
		return nil
	},
}

func evaluate(op string, a, b fixed.Number) (fixed.Number, error) {
	switch strings.ToLower(op) {
	case "add":
		return a.Add(b)
	case "sub":
		return a.Sub(b)
	case "mul":
		return a.Mul(b)
	case "div":
		return a.Div(b)
	case "mod":
		return a.Mod(b)
	default:
		return fixed.Number{}, errors.Errorf("unknown operation %q", op)
	}
}

func parseRoundingMode(s string) (rounding.Mode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for m := rounding.Down; m.Valid(); m++ {
		if m.String() == normalized {
			return m, nil
		}
	}
	return 0, errors.Errorf("unknown rounding mode %q", s)
}

func parsePrecisionPolicy(s string) (precision.Policy, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for p := precision.MinOperandPlus0; p.Valid(); p++ {
		if p.String() == normalized {
			return p, nil
		}
	}
	return 0, errors.Errorf("unknown precision policy %q", s)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("fixedcalc failed")
		os.Exit(1)
	}
}
