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

import "time"

// Snapshot is one point-in-time reading of the host counters.
// A Snapshot is never mutated after creation; callers hold at most
// the previous and the current one.
type Snapshot struct {
	Timestamp time.Time // carries Go's monotonic clock reading
	RxBytes   uint64    // cumulative bytes received, may wrap
	TxBytes   uint64    // cumulative bytes sent, may wrap
	CPUBusy   float64   // cumulative non-idle CPU ticks
	CPUTotal  float64   // cumulative CPU ticks across all states
	MemUsed   uint64    // bytes in use, instantaneous
	MemTotal  uint64    // total physical memory in bytes
}

// Kind identifies what a DerivedMetric measures and how it is displayed.
type Kind int

const (
	RateDown Kind = iota // bytes per second received
	RateUp               // bytes per second sent
	CPUPercent
	MemPercent
	MemUsedBytes
	MemTotalBytes
)

// DerivedMetric is a computed value ready for display. Rates are in
// bytes per second, percentages in [0, 100], absolutes in bytes.
// It is produced from one or two Snapshots and consumed immediately.
type DerivedMetric struct {
	Kind  Kind
	Value float64
}
