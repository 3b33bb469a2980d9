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

package metrics

// Elapsed returns the fractional seconds between two snapshots,
// measured on the monotonic clock.
func Elapsed(prev, curr Snapshot) float64 {
	return curr.Timestamp.Sub(prev.Timestamp).Seconds()
}

// CounterRate computes a per-second rate from two readings of a
// cumulative counter.
// A non-positive elapsed duration (clock anomaly or sub-resolution
// interval) yields a zero rate, never a division by zero. A counter
// that went backwards (wraparound or source reset) also yields zero,
// never a negative rate or an underflow.
func CounterRate(prev, curr uint64, elapsedSec float64) float64 {
	if elapsedSec <= 0 {
		return 0.0
	}
	if curr < prev {
		return 0.0
	}
	return float64(curr-prev) / elapsedSec
}

// CalculateCPUPercent calculates CPU utilization percentage from two
// snapshots of the cumulative tick accumulators.
// Formula: 100 * ΔBusy / ΔTotal, with ΔTotal floored at one tick so
// the division stays defined when no time has passed at tick
// resolution. The result is clamped to [0, 100].
func CalculateCPUPercent(prev, curr *Snapshot) float64 {
	deltaBusy := curr.CPUBusy - prev.CPUBusy
	deltaTotal := curr.CPUTotal - prev.CPUTotal

	if deltaBusy < 0 {
		deltaBusy = 0
	}
	if deltaTotal < 1 {
		deltaTotal = 1
	}

	return clampPercent(100.0 * deltaBusy / deltaTotal)
}

// CalculateMemoryPercent calculates memory utilization from a single
// snapshot's instantaneous readings.
// Formula: (Used / Total) × 100, clamped to [0, 100]. A zero total
// yields zero rather than a fault.
func CalculateMemoryPercent(used, total uint64) float64 {
	if total == 0 {
		return 0.0
	}
	return clampPercent(float64(used) / float64(total) * 100.0)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0.0
	}
	if v > 100 {
		return 100.0
	}
	return v
}
