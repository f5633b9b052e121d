package main

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tuneinsight/specfun/chebyshev"
	"github.com/tuneinsight/specfun/utils/bignum"
)

// fitPrec is the precision in bits of the fitting arithmetic.
const fitPrec = 256

var fitFunctions = map[string]func(x *big.Float) *big.Float{
	"exp":      bignum.Exp,
	"log":      bignum.Log,
	"cos":      bignum.Cos,
	"sin":      bignum.Sin,
	"sinh":     bignum.SinH,
	"tanh":     bignum.TanH,
	"log1pexp": bignum.Log1pExp,
	"logistic": bignum.Logistic,
}

// chebRecord is the output of the chebfit command.
type chebRecord struct {
	Function string    `json:"function" yaml:"function"`
	A        number   `json:"a" yaml:"a"`
	B        number   `json:"b" yaml:"b"`
	Coeffs   []number `json:"coeffs" yaml:"coeffs"`
}

func newChebfitCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "chebfit <func> <a> <b> <order>",
		Short: "Fit a Chebyshev series to a function in extended precision",
		Long: fmt.Sprintf(`Fit a Chebyshev series of the given order to a function on [a, b],
evaluating the function at the Chebyshev nodes with %d bits of precision.
The series uses the half-weighted c0 convention of the embedded tables.

Functions: %s`, fitPrec, strings.Join(fitNames(), ", ")),
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {

			f, ok := fitFunctions[args[0]]
			if !ok {
				return fmt.Errorf("unknown function %q", args[0])
			}

			ab, err := parseFloats(args[1:3])
			if err != nil {
				return err
			}

			if !(ab[0] < ab[1]) {
				return fmt.Errorf("invalid interval [%v, %v]", ab[0], ab[1])
			}

			if args[0] == "log" && ab[0] <= 0 {
				return fmt.Errorf("log is undefined on [%v, %v]", ab[0], ab[1])
			}

			order, err := parseInt(args[3], "order")
			if err != nil {
				return err
			}

			if order < 0 {
				return fmt.Errorf("order must be non-negative: %d", order)
			}

			s := chebyshev.Fit(f, ab[0], ab[1], order, fitPrec)

			rec := chebRecord{Function: args[0], A: number(s.A), B: number(s.B), Coeffs: numbers(s.Coeffs)}

			w := cmd.OutOrStdout()

			if cfg.Format == formatText {
				for i, c := range s.Coeffs {
					if _, err = fmt.Fprintf(w, "%3d % .17e\n", i, c); err != nil {
						return err
					}
				}
				return nil
			}

			return encode(w, cfg.Format, rec)
		},
	}
}

func fitNames() (names []string) {
	for name := range fitFunctions {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
