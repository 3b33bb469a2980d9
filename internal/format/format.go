/*
 * MIT License
 *
 * Copyright (c) 2026 Nguyen Thanh Phuong
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package format renders derived metrics as status-line text. All
// formatting is pure: the same metric and options always produce the
// same string.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/statbar/statbar/pkg/metrics"
)

// Display policy: 1024-based units chosen as the largest where the
// value is at least 1.0, two decimal places for sizes and rates, one
// for percentages. Metrics are joined with two spaces.
const (
	separator  = "  "
	rateSuffix = "/s"

	// fitWidth bounds a width-fitted value plus its unit.
	fitWidth      = 6
	fitValueWidth = fitWidth - 2
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

var textLabels = map[metrics.Kind]string{
	metrics.RateDown:     "DOWN ",
	metrics.RateUp:       "UP ",
	metrics.CPUPercent:   "CPU ",
	metrics.MemPercent:   "MEM ",
	metrics.MemUsedBytes: "MEM ",
}

var iconGlyphs = map[metrics.Kind]string{
	metrics.RateDown:     "↓ ",
	metrics.RateUp:       "↑ ",
	metrics.CPUPercent:   "⚙ ",
	metrics.MemPercent:   "▣ ",
	metrics.MemUsedBytes: "▣ ",
}

// Formatter renders DerivedMetrics according to fixed display options.
type Formatter struct {
	WithIcons bool // glyph prefixes instead of text labels
	FixLength bool // width-fitted values instead of fixed two decimals
}

// PrettySize scales a byte quantity to the largest 1024-based unit
// where the value stays at or above 1.0, so 1023 bytes prints in B and
// 1024 bytes prints as 1.00KB.
func (f Formatter) PrettySize(v float64) string {
	unit := 0
	for unit < len(sizeUnits)-1 && v >= 1024.0 {
		v /= 1024.0
		unit++
	}

	if f.FixLength {
		return FitWidth(v, fitValueWidth) + sizeUnits[unit]
	}
	return fmt.Sprintf("%.2f%s", v, sizeUnits[unit])
}

// FitWidth formats v into at most width characters: full-precision
// decimals are truncated to fit, trailing zeros and a dangling decimal
// point are trimmed, and an integer part that alone fills the width is
// kept whole.
func FitWidth(v float64, width int) string {
	s := strconv.FormatFloat(v, 'f', width, 64)

	if dot := strings.IndexByte(s, '.'); dot >= 0 && dot+1 >= width {
		return s[:dot]
	}
	if len(s) > width {
		s = s[:width]
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")

	return s
}

// Format renders a single metric with its label or icon prefix.
func (f Formatter) Format(m metrics.DerivedMetric) string {
	switch m.Kind {
	case metrics.RateDown, metrics.RateUp:
		return f.prefix(m.Kind) + f.PrettySize(m.Value) + rateSuffix
	case metrics.CPUPercent, metrics.MemPercent:
		return f.prefix(m.Kind) + f.percent(m.Value)
	case metrics.MemUsedBytes, metrics.MemTotalBytes:
		return f.prefix(m.Kind) + f.PrettySize(m.Value)
	default:
		return ""
	}
}

// Line joins the metrics of one cycle into a single display line.
// An adjacent MemUsedBytes/MemTotalBytes pair renders as one
// "used/total" segment.
func (f Formatter) Line(derived []metrics.DerivedMetric) string {
	parts := make([]string, 0, len(derived))

	for i := 0; i < len(derived); i++ {
		m := derived[i]
		if m.Kind == metrics.MemUsedBytes && i+1 < len(derived) && derived[i+1].Kind == metrics.MemTotalBytes {
			parts = append(parts, f.prefix(m.Kind)+f.PrettySize(m.Value)+"/"+f.PrettySize(derived[i+1].Value))
			i++
			continue
		}
		parts = append(parts, f.Format(m))
	}

	return strings.Join(parts, separator)
}

func (f Formatter) percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func (f Formatter) prefix(kind metrics.Kind) string {
	if f.WithIcons {
		return iconGlyphs[kind]
	}
	return textLabels[kind]
}
