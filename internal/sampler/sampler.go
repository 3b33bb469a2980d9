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

// Package sampler turns raw counter readings into derived metrics.
package sampler

import (
	"context"
	"time"

	"github.com/statbar/statbar/internal/config"
	"github.com/statbar/statbar/pkg/metrics"
)

// DefaultSampleDelay separates the two snapshots of a single-shot
// cycle when no interval is configured.
var DefaultSampleDelay = 1 * time.Second

// Source provides the point-in-time readings a Snapshot is built from.
// All counters are cumulative except memory, which is instantaneous.
type Source interface {
	Network() (rx, tx uint64, err error)
	CPU() (busy, total float64, err error)
	Memory() (used, total uint64, err error)
	Now() time.Time
}

// Sampler assembles Snapshots from a Source and derives display
// metrics from snapshot pairs.
type Sampler struct {
	source Source
	modes  config.Modes
}

// New creates a sampler reading from the given source.
func New(source Source, modes config.Modes) *Sampler {
	return &Sampler{
		source: source,
		modes:  modes,
	}
}

// Take reads one Snapshot, probing only the metric families the active
// modes need.
func (s *Sampler) Take() (metrics.Snapshot, error) {
	snap := metrics.Snapshot{
		Timestamp: s.source.Now(),
	}

	if s.modes.Net {
		rx, tx, err := s.source.Network()
		if err != nil {
			return metrics.Snapshot{}, err
		}
		snap.RxBytes = rx
		snap.TxBytes = tx
	}

	if s.modes.CPU {
		busy, total, err := s.source.CPU()
		if err != nil {
			return metrics.Snapshot{}, err
		}
		snap.CPUBusy = busy
		snap.CPUTotal = total
	}

	if s.modes.Mem {
		used, total, err := s.source.Memory()
		if err != nil {
			return metrics.Snapshot{}, err
		}
		snap.MemUsed = used
		snap.MemTotal = total
	}

	return snap, nil
}

// Derive computes the display metrics for the active modes from a
// snapshot pair. Rate metrics difference the pair; memory comes from
// the current snapshot alone. The result order is the fixed display
// order: down, up, cpu, mem.
func (s *Sampler) Derive(prev, curr metrics.Snapshot) []metrics.DerivedMetric {
	elapsed := metrics.Elapsed(prev, curr)

	derived := make([]metrics.DerivedMetric, 0, 4)

	if s.modes.Net {
		derived = append(derived,
			metrics.DerivedMetric{Kind: metrics.RateDown, Value: metrics.CounterRate(prev.RxBytes, curr.RxBytes, elapsed)},
			metrics.DerivedMetric{Kind: metrics.RateUp, Value: metrics.CounterRate(prev.TxBytes, curr.TxBytes, elapsed)},
		)
	}

	if s.modes.CPU {
		derived = append(derived,
			metrics.DerivedMetric{Kind: metrics.CPUPercent, Value: metrics.CalculateCPUPercent(&prev, &curr)},
		)
	}

	if s.modes.Mem {
		if s.modes.MemDetail {
			derived = append(derived,
				metrics.DerivedMetric{Kind: metrics.MemUsedBytes, Value: float64(curr.MemUsed)},
				metrics.DerivedMetric{Kind: metrics.MemTotalBytes, Value: float64(curr.MemTotal)},
			)
		} else {
			derived = append(derived,
				metrics.DerivedMetric{Kind: metrics.MemPercent, Value: metrics.CalculateMemoryPercent(curr.MemUsed, curr.MemTotal)},
			)
		}
	}

	return derived
}

// SampleOnce produces one reading without a prior snapshot: two
// snapshots separated by delay, then a Derive over the pair. This is
// the single-shot path; repeating mode supplies its own previous
// snapshot instead. A non-positive delay falls back to
// DefaultSampleDelay. When no selected mode needs a delta, a single
// snapshot suffices and no delay is taken.
func (s *Sampler) SampleOnce(ctx context.Context, delay time.Duration) ([]metrics.DerivedMetric, error) {
	if delay <= 0 {
		delay = DefaultSampleDelay
	}

	prev, err := s.Take()
	if err != nil {
		return nil, err
	}

	if !s.needsDelta() {
		return s.Derive(prev, prev), nil
	}

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	curr, err := s.Take()
	if err != nil {
		return nil, err
	}

	return s.Derive(prev, curr), nil
}

// needsDelta reports whether any active mode differences two snapshots.
func (s *Sampler) needsDelta() bool {
	return s.modes.Net || s.modes.CPU
}
