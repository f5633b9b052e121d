package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRootCmd(cfg config) *cobra.Command {

	root := &cobra.Command{
		Use:   "specfun",
		Short: "Evaluate special functions to near machine precision",
		Long: `Evaluate Fermi-Dirac integrals and hyperbolic Legendre functions,
accelerate series with the Levin u-transform, sample Poisson variates and
fit Chebyshev series in extended precision.

Results are reported according to the tier:
- checked: the value and its status
- strict: the value, and a non-zero exit status on any failure
- best-effort: the value only, with a diagnostic on failure`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.validate()
		},
	}

	root.PersistentFlags().StringVar(&cfg.Tier, "tier", cfg.Tier, "result tier: checked, strict or best-effort (env SPECFUN_TIER)")
	root.PersistentFlags().StringVar(&cfg.Format, "format", cfg.Format, "output format: text, json or yaml (env SPECFUN_FORMAT)")

	root.AddCommand(
		newFdCmd(&cfg),
		newFdInc0Cmd(&cfg),
		newH3dCmd(&cfg),
		newH3dArrayCmd(&cfg),
		newSumCmd(&cfg),
		newPoissonCmd(&cfg),
		newChebfitCmd(&cfg),
	)

	// Positional arguments may be negative numbers.
	for _, cmd := range root.Commands() {
		cmd.Flags().SetInterspersed(false)
	}

	return root
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseInt(arg, name string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}
