package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tuneinsight/specfun/fermidirac"
	"github.com/tuneinsight/specfun/legendre"
	"github.com/tuneinsight/specfun/result"
)

var fdOrders = map[string]struct {
	name string
	f    func(x float64) result.Result
}{
	"m1":    {"fermidirac.FM1", fermidirac.FM1E},
	"half":  {"fermidirac.FHalf", fermidirac.FHalfE},
	"3half": {"fermidirac.F3Half", fermidirac.F3HalfE},
}

func newFdCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "fd <order> <x>",
		Short: "Complete Fermi-Dirac integral F_j(x)",
		Long: `Complete Fermi-Dirac integral F_j(x) = 1/Gamma(j+1) int_0^inf t^j/(exp(t-x)+1) dt.
The order is m1, half, 3half or an integer.`,
		Example: `
# F_{1/2}(2)
specfun fd half 2

# F_3(-4) as JSON
specfun fd 3 -4 --format json
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {

			x, err := parseFloats(args[1:])
			if err != nil {
				return err
			}

			if o, ok := fdOrders[args[0]]; ok {
				return emit(cmd.OutOrStdout(), *cfg, o.name, x, o.f(x[0]))
			}

			j, err := parseInt(args[0], "order")
			if err != nil {
				return fmt.Errorf("order must be m1, half, 3half or an integer: %w", err)
			}

			return emit(cmd.OutOrStdout(), *cfg, "fermidirac.FInt", append([]float64{float64(j)}, x...), fermidirac.FIntE(j, x[0]))
		},
	}
}

func newFdInc0Cmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "fd-inc0 <x> <b>",
		Short: "Incomplete Fermi-Dirac integral F_0(x, b)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), *cfg, "fermidirac.FInc0", v, fermidirac.FInc0E(v[0], v[1]))
		},
	}
}

func newH3dCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "h3d <ell> <lambda> <eta>",
		Short: "Hyperbolic Legendre function H3d_ell(lambda, eta)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {

			ell, err := parseInt(args[0], "ell")
			if err != nil {
				return err
			}

			v, err := parseFloats(args[1:])
			if err != nil {
				return err
			}

			return emit(cmd.OutOrStdout(), *cfg, "legendre.H3d", append([]float64{float64(ell)}, v...), legendre.H3dE(ell, v[0], v[1]))
		},
	}
}

func newH3dArrayCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "h3d-array <lmax> <lambda> <eta>",
		Short: "Hyperbolic Legendre functions H3d_0, ..., H3d_lmax",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {

			lmax, err := parseInt(args[0], "lmax")
			if err != nil {
				return err
			}

			if lmax < 0 {
				return fmt.Errorf("lmax must be non-negative: %d", lmax)
			}

			v, err := parseFloats(args[1:])
			if err != nil {
				return err
			}

			out := make([]float64, lmax+1)
			st := legendre.H3dArray(lmax, v[0], v[1], out)

			rec := record{
				Function: "legendre.H3dArray",
				Args:     numbers(append([]float64{float64(lmax)}, v...)),
				Value:    number(out[lmax]),
				Values:   numbers(out),
				Status:   st.String(),
			}

			w := cmd.OutOrStdout()

			if cfg.Format == formatText {
				for l, h := range out {
					fmt.Fprintf(w, "%d %s\n", l, formatFloat(h))
				}
				if cfg.Tier != tierBestEffort {
					fmt.Fprintln(w, st)
				}
			} else if err := encode(w, cfg.Format, rec); err != nil {
				return err
			}

			switch {
			case st == result.Success:
				return nil
			case cfg.Tier == tierStrict:
				return &result.Error{Func: rec.Function, Status: st, Val: out[lmax]}
			case cfg.Tier == tierBestEffort:
				result.BestEffort(rec.Function, result.Result{Val: out[lmax], Status: st})
			}

			return nil
		},
	}
}
