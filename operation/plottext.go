// SPDX-License-Identifier: MIT

package operation

import (
	"math"
	"strconv"
	"strings"
)

// plotText holds an optional caption override.
type plotText struct {
	override *string
}

// SetPlotText replaces the generated caption.
func (p *plotText) SetPlotText(text string) { p.override = &text }

// ClearPlotText restores the generated caption.
func (p *plotText) ClearPlotText() { p.override = nil }

func (p *plotText) text(auto func() string) string {
	if p.override != nil {
		return *p.override
	}

	return auto()
}

// FormatEdge renders an edge the way captions and keys print numbers:
// shortest round-trip digits, always with a fractional part in fixed
// notation ("1.0", "0.25"), exponent notation outside [1e-4, 1e16)
// ("1e-05"), and "inf"/"-inf".
func FormatEdge(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	if a := math.Abs(v); a == 0 || (a >= 1e-4 && a < 1e16) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	return strconv.FormatFloat(v, 'e', -1, 64)
}
