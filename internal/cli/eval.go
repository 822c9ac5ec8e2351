// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	p := &PipelineOptions{}
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate an operation on a histogram",
		Example: `  histalg eval --dataset h.json --project y --slice x=0:2
  histalg eval --dataset h.json --derive shape --block cat`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pl, err := loadPipeline(rootOpts, *p)
			if err != nil {
				return err
			}
			res, b, err := pl.evaluate()
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), EvalOutput{
				BinningOutput: binningOutput(pl.op.Key(), pl.op.PlotText(), pl.labels, b),
				Dataset:       pl.hist.Key(),
				Values:        res.Values,
				Cov:           rows(res.Cov),
			})
		},
	}
	p.bind(cmd)

	return cmd
}

// NewBinningCommand creates the binning command.
func NewBinningCommand(rootOpts *RootOptions) *cobra.Command {
	p := &PipelineOptions{}
	cmd := &cobra.Command{
		Use:   "binning",
		Short: "Print the binning an operation produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pl, err := loadPipeline(rootOpts, *p)
			if err != nil {
				return err
			}
			b, err := pl.cache.Binning(pl.op, pl.hist)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), binningOutput(pl.op.Key(), pl.op.PlotText(), pl.labels, b))
		},
	}
	p.bind(cmd)

	return cmd
}
