// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/matrix"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath resolves the format from a file extension
// (.json, .yaml, .yml).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Edge is a bin edge that also accepts and renders the strings "inf",
// "+inf" and "-inf" (and the YAML forms ".inf", "-.inf").
type Edge float64

// ParseEdge parses a numeric edge or one of the infinity spellings.
func ParseEdge(s string) (Edge, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch t {
	case ".inf", "+.inf":
		return Edge(math.Inf(1)), nil
	case "-.inf":
		return Edge(math.Inf(-1)), nil
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("edge %q: %w", s, ErrDecode)
	}

	return Edge(v), nil
}

// MarshalJSON renders infinities as "inf"/"-inf" strings.
func (e Edge) MarshalJSON() ([]byte, error) {
	switch f := float64(e); {
	case math.IsInf(f, 1):
		return []byte(`"inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-inf"`), nil
	default:
		return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
	}
}

// UnmarshalJSON accepts a JSON number or string.
func (e *Edge) UnmarshalJSON(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if unq, err := strconv.Unquote(s); err == nil {
		s = unq
	}
	v, err := ParseEdge(s)
	if err != nil {
		return err
	}
	*e = v

	return nil
}

// UnmarshalYAML accepts a YAML scalar.
func (e *Edge) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: edge must be a scalar: %w", node.Line, ErrDecode)
	}
	v, err := ParseEdge(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*e = v

	return nil
}

// AxisDocument is the serialized form of one axis.
type AxisDocument struct {
	Name  string `json:"name" yaml:"name"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// Document is the serialized form of a Histogram.
type Document struct {
	Key      string         `json:"key" yaml:"key"`
	Quantity string         `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Axes     []AxisDocument `json:"axes" yaml:"axes"`
	Values   []float64      `json:"values" yaml:"values"`
	Cov      [][]float64    `json:"cov,omitempty" yaml:"cov,omitempty"`
}

// AxisDocuments converts a binning to its serialized axes.
func AxisDocuments(b *binning.ArbitraryBinning) []AxisDocument {
	out := make([]AxisDocument, 0, b.Nax())
	for _, ax := range b.Axes() {
		src := ax.Edges()
		edges := make([]Edge, len(src))
		for i, e := range src {
			edges[i] = Edge(e)
		}
		out = append(out, AxisDocument{Name: ax.Name(), Edges: edges})
	}

	return out
}

// Histogram builds and validates the histogram a document describes.
func (d *Document) Histogram(opts ...Option) (*Histogram, error) {
	axes := make([]binning.Axis, 0, len(d.Axes))
	for _, ad := range d.Axes {
		edges := make([]float64, len(ad.Edges))
		for i, e := range ad.Edges {
			edges[i] = float64(e)
		}
		ax, err := binning.NewAxis(ad.Name, edges...)
		if err != nil {
			return nil, err
		}
		axes = append(axes, ax)
	}
	b, err := binning.New(axes...)
	if err != nil {
		return nil, err
	}
	q, err := ParseQuantityType(d.Quantity)
	if err != nil {
		return nil, err
	}

	all := []Option{WithQuantityType(q)}
	if len(d.Cov) > 0 {
		cov, err := denseFromRows(d.Cov)
		if err != nil {
			return nil, err
		}
		all = append(all, WithCov(cov))
	}

	return New(d.Key, b, d.Values, append(all, opts...)...)
}

// denseFromRows packs a rectangular [][]float64.
func denseFromRows(rows [][]float64) (*matrix.Dense, error) {
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("cov row %d has %d entries, want %d: %w", i, len(row), c, ErrDecode)
		}
		data = append(data, row...)
	}

	return matrix.NewDenseFrom(r, c, data)
}

// Decode reads one document from r and builds the histogram.
// Unknown fields are rejected in both formats.
func Decode(r io.Reader, format Format, opts ...Option) (*Histogram, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, datasetErrorf(opDecode, fmt.Errorf("%w: %w", ErrDecode, err))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, datasetErrorf(opDecode, fmt.Errorf("%w: %w", ErrDecode, err))
		}
	default:
		return nil, datasetErrorf(opDecode, fmt.Errorf("%q: %w", format, ErrUnknownFormat))
	}

	h, err := doc.Histogram(opts...)
	if err != nil {
		return nil, datasetErrorf(opDecode, err)
	}

	return h, nil
}

// Load reads a histogram document from path; the format follows the
// file extension.
func Load(path string, opts ...Option) (*Histogram, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, datasetErrorf(opLoad, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, datasetErrorf(opLoad, err)
	}

	return Decode(bytes.NewReader(data), format, opts...)
}

// Encode writes h as an indented JSON document.
func Encode(w io.Writer, h *Histogram) error {
	doc := Document{
		Key:      h.key,
		Quantity: h.qtype.String(),
		Axes:     AxisDocuments(h.binning),
		Values:   h.Values(),
	}
	if h.cov != nil {
		doc.Cov = make([][]float64, h.cov.Rows())
		for i := range doc.Cov {
			doc.Cov[i] = h.cov.Row(i)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
