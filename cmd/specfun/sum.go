package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tuneinsight/specfun/levin"
)

// sumRecord is the output of the sum command.
type sumRecord struct {
	Sum       number `json:"sum" yaml:"sum"`
	SumPlain  number `json:"sum_plain" yaml:"sum_plain"`
	AbsErr    number `json:"abs_err" yaml:"abs_err"`
	TermsUsed int    `json:"terms_used" yaml:"terms_used"`
	Digits    number `json:"digits" yaml:"digits"`
}

func newSumCmd(cfg *config) *cobra.Command {

	var trunc bool

	cmd := &cobra.Command{
		Use:   "sum <terms...>",
		Short: "Accelerate a series with the Levin u-transform",
		Example: `
# log(2) from the first terms of its alternating series
specfun sum 1 -0.5 0.3333333333333333 -0.25 0.2 -0.16666666666666666

# truncation error estimate only
specfun sum --trunc 1 0.25 0.1111111111111111 0.0625
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			terms, err := parseFloats(args)
			if err != nil {
				return err
			}

			var est levin.Estimate
			if trunc {
				est, err = levin.NewTruncWorkspace(len(terms)).Accel(terms)
			} else {
				est, err = levin.NewWorkspace(len(terms)).Accel(terms)
			}
			if err != nil {
				return fmt.Errorf("accelerate: %w", err)
			}

			rec := sumRecord{
				Sum:       number(est.Sum),
				SumPlain:  number(est.SumPlain),
				AbsErr:    number(est.AbsErr),
				TermsUsed: est.TermsUsed,
				Digits:    number(est.DigitsCorrect()),
			}

			w := cmd.OutOrStdout()

			if cfg.Format == formatText {
				_, err = fmt.Fprintf(w, "sum      = %s\nsum_plain = %s\nabs_err  = %.3g\nterms    = %d\n",
					formatFloat(est.Sum), formatFloat(est.SumPlain), est.AbsErr, est.TermsUsed)
				return err
			}

			return encode(w, cfg.Format, rec)
		},
	}

	cmd.Flags().BoolVar(&trunc, "trunc", false, "estimate the truncation error only, in linear storage")

	return cmd
}
