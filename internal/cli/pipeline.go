// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/dataset"
	"github.com/ssrothman/simon-mpl-util/derived"
	"github.com/ssrothman/simon-mpl-util/evalcache"
	"github.com/ssrothman/simon-mpl-util/labels"
	"github.com/ssrothman/simon-mpl-util/operation"
)

// Derive names the derived quantity applied on top of the base operation.
const (
	DeriveNone    = ""
	DeriveDensity = "density"
	DeriveShape   = "shape"
	DeriveCorrel  = "correl"
	DeriveCov     = "cov"
)

// PipelineOptions selects a dataset and the operation applied to it.
type PipelineOptions struct {
	Dataset string
	Project []string
	Slice   []string // axis=low:high
	Derive  string
	Block   []string
	Radial  []string
}

func (p *PipelineOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&p.Dataset, "dataset", "", "histogram document (.json, .yaml)")
	f.StringSliceVar(&p.Project, "project", nil, "axes to integrate over")
	f.StringArrayVar(&p.Slice, "slice", nil, "axis=low:high restriction (repeatable, inf allowed)")
	f.StringVar(&p.Derive, "derive", DeriveNone, "derived quantity (density|shape|correl|cov)")
	f.StringSliceVar(&p.Block, "block", nil, "block axes for --derive shape")
	f.StringSliceVar(&p.Radial, "radial", nil, "radial axes for --derive density")
	_ = cmd.MarkFlagRequired("dataset")
}

// ParseSlice parses "axis=low:high".
func ParseSlice(s string) (string, binning.Range, error) {
	name, bounds, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return "", binning.Range{}, fmt.Errorf("slice %q: want axis=low:high", s)
	}
	lo, hi, ok := strings.Cut(bounds, ":")
	if !ok {
		return "", binning.Range{}, fmt.Errorf("slice %q: want axis=low:high", s)
	}
	low, err := dataset.ParseEdge(lo)
	if err != nil {
		return "", binning.Range{}, fmt.Errorf("slice %q: %w", s, err)
	}
	high, err := dataset.ParseEdge(hi)
	if err != nil {
		return "", binning.Range{}, fmt.Errorf("slice %q: %w", s, err)
	}

	return strings.TrimSpace(name), binning.Range{Low: float64(low), High: float64(high)}, nil
}

// BuildOperation assembles the operation the options describe.
func BuildOperation(p PipelineOptions, cfg Config) (operation.Operation, error) {
	edges := make(map[string]binning.Range, len(p.Slice))
	for _, s := range p.Slice {
		name, r, err := ParseSlice(s)
		if err != nil {
			return nil, err
		}
		if _, dup := edges[name]; dup {
			return nil, fmt.Errorf("slice: axis %q given twice", name)
		}
		edges[name] = r
	}

	var base operation.Operation
	switch {
	case len(p.Project) > 0 && len(edges) > 0:
		base = operation.NewProjectAndSlice(p.Project, edges)
	case len(p.Project) > 0:
		base = operation.NewProjection(p.Project...)
	case len(edges) > 0:
		base = operation.NewSlice(edges)
	default:
		base = operation.NewNoop()
	}

	var (
		op  operation.Operation
		err error
	)
	switch p.Derive {
	case DeriveNone:
		return base, nil
	case DeriveDensity:
		radial := slices.Concat(cfg.Radial, p.Radial)
		opts := []derived.DensityOption{derived.WithRadialAxes(radial...)}
		for axis, c := range cfg.Clip {
			opts = append(opts, derived.WithClip(axis, float64(c.Low), float64(c.High)))
		}
		op, err = derived.NewDensity(base, opts...)
	case DeriveShape:
		op, err = derived.NewBlockNormalize(base, p.Block...)
	case DeriveCorrel:
		op, err = derived.NewCorrelationFromCovariance(base)
	case DeriveCov:
		op, err = derived.NewCovarianceOnly(base)
	default:
		return nil, fmt.Errorf("unknown --derive %q: must be one of density, shape, correl, cov", p.Derive)
	}
	if err != nil {
		return nil, err
	}

	return op, nil
}

// pipeline is a loaded dataset with its operation.
type pipeline struct {
	hist   *dataset.Histogram
	op     operation.Operation
	cache  *evalcache.Cache
	labels labels.Lookup
}

func loadPipeline(opts *RootOptions, p PipelineOptions) (*pipeline, error) {
	op, err := BuildOperation(p, opts.Config)
	if err != nil {
		return nil, err
	}
	h, err := loadDataset(opts, p.Dataset)
	if err != nil {
		return nil, err
	}

	return &pipeline{
		hist:   h,
		op:     op,
		cache:  evalcache.New(evalcache.WithLogger(opts.Logger)),
		labels: labels.NewTable(opts.Config.Labels),
	}, nil
}

func loadDataset(opts *RootOptions, path string) (*dataset.Histogram, error) {
	h, err := dataset.Load(path, opts.Config.datasetOptions()...)
	if err != nil {
		return nil, err
	}
	opts.Logger.Info("dataset.loaded", "path", path, "key", h.Key(), "binning", h.Binning().String(), "quantity", h.QuantityType().String())

	return h, nil
}

func (p *pipeline) evaluate() (operation.Result, *binning.ArbitraryBinning, error) {
	res, err := p.cache.Evaluate(p.op, p.hist)
	if err != nil {
		return operation.Result{}, nil, err
	}
	b, err := p.cache.Binning(p.op, p.hist)
	if err != nil {
		return operation.Result{}, nil, err
	}

	return res, b, nil
}
