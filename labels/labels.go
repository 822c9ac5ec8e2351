// SPDX-License-Identifier: MIT

// Package labels resolves axis names to display strings. Lookups are
// read-only values handed to whoever builds captions; there is no global
// table.
package labels

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/ssrothman/simon-mpl-util/binning"
)

// ErrLoad is returned when a label file cannot be read or decoded.
var ErrLoad = errors.New("labels: load failed")

// Lookup maps an axis name to its display label.
type Lookup interface {
	Label(axis string) string
}

// Table is a map-backed Lookup. Unknown axes render as their own name.
// The zero value is an empty table.
type Table struct {
	labels map[string]string
}

var _ Lookup = Table{}

// NewTable copies m; keys are NFC-normalized like axis names.
func NewTable(m map[string]string) Table {
	t := Table{labels: make(map[string]string, len(m))}
	for k, v := range m {
		t.labels[norm.NFC.String(k)] = v
	}

	return t
}

// Label returns the label for axis, or axis itself.
func (t Table) Label(axis string) string {
	if l, ok := t.labels[norm.NFC.String(axis)]; ok {
		return l
	}

	return axis
}

// Map returns a copy of the table contents.
func (t Table) Map() map[string]string { return maps.Clone(t.labels) }

type tableFile struct {
	Labels map[string]string `yaml:"labels"`
}

// LoadTable reads a YAML file of the form
//
//	labels:
//	  pt: "$p_T$ [GeV]"
//
// Unknown top-level keys are rejected.
func LoadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var doc tableFile
	if err := dec.Decode(&doc); err != nil {
		return Table{}, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	return NewTable(doc.Labels), nil
}

// AxisLabel builds the x-axis caption of a histogram on b: the label of
// its only axis, or the labels of all axes joined by "@" followed by
// " bin index" when the bins are flattened. A binning without axes gets
// an empty caption.
func AxisLabel(l Lookup, b *binning.ArbitraryBinning) string {
	names := b.AxisNames()
	switch len(names) {
	case 0:
		return ""
	case 1:
		return l.Label(names[0])
	}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = l.Label(n)
	}

	return strings.Join(parts, "@") + " bin index"
}
