// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssrothman/simon-mpl-util/plotprep"
)

// NameOptions holds the output naming flags.
type NameOptions struct {
	Prefix string
	Folder string
	Norm   string
	LogC   bool
}

func (n *NameOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&n.Prefix, "prefix", "", "output file prefix")
	f.StringVar(&n.Folder, "folder", "", "output folder")
	f.StringVar(&n.Norm, "norm", string(plotprep.NormNone), "matrix normalization (none|ax1|ax2|correl)")
	f.BoolVar(&n.LogC, "logc", false, "logarithmic color scale")
}

func (n *NameOptions) path(cutKey, datasetKey string, norm plotprep.Norm) string {
	if n.Folder == "" {
		return plotprep.OutputName(n.Prefix, cutKey, datasetKey, norm, n.LogC)
	}

	return plotprep.OutputPath(n.Folder, n.Prefix, cutKey, datasetKey, norm, n.LogC)
}

// NewMatrixCommand creates the matrix command.
func NewMatrixCommand(rootOpts *RootOptions) *cobra.Command {
	p := &PipelineOptions{}
	n := &NameOptions{}
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Normalize the matrix of a result for display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			norm, err := plotprep.ParseNorm(n.Norm)
			if err != nil {
				return err
			}
			pl, err := loadPipeline(rootOpts, *p)
			if err != nil {
				return err
			}
			res, _, err := pl.evaluate()
			if err != nil {
				return err
			}
			if !res.HasCov() {
				return fmt.Errorf("%s: result of %s has no matrix", pl.hist.Key(), pl.op.Key())
			}
			m, err := plotprep.Normalize(res.Cov, norm, pl.hist.QuantityType())
			if err != nil {
				return err
			}
			cs := plotprep.ScaleFor(m, nil, n.LogC)

			return writeJSON(cmd.OutOrStdout(), MatrixOutput{
				Name: n.path(pl.op.Key(), pl.hist.Key(), norm),
				Norm: string(norm),
				Scale: ScaleOutput{
					Diverging: cs.Diverging,
					Log:       cs.Log,
					VMin:      cs.VMin,
					VMax:      cs.VMax,
					LinThresh: cs.LinThresh,
				},
				Matrix: rows(m),
			})
		},
	}
	p.bind(cmd)
	n.bind(cmd)

	return cmd
}

// NewNameCommand creates the name command.
func NewNameCommand(rootOpts *RootOptions) *cobra.Command {
	p := &PipelineOptions{}
	n := &NameOptions{}
	cmd := &cobra.Command{
		Use:   "name",
		Short: "Print the output file name of a plot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			norm, err := plotprep.ParseNorm(n.Norm)
			if err != nil {
				return err
			}
			op, err := BuildOperation(*p, rootOpts.Config)
			if err != nil {
				return err
			}
			h, err := loadDataset(rootOpts, p.Dataset)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n.path(op.Key(), h.Key(), norm))

			return err
		},
	}
	p.bind(cmd)
	n.bind(cmd)

	return cmd
}
