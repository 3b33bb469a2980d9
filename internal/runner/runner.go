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

// Package runner drives the sampling loop: one cycle in single-shot
// mode, one line per tick in repeating mode.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/statbar/statbar/internal/config"
	"github.com/statbar/statbar/internal/format"
	"github.com/statbar/statbar/internal/sampler"
	"github.com/statbar/statbar/pkg/metrics"
)

// Runner is the loop controller. A zero interval selects single-shot
// mode; a positive interval repeats until the context is cancelled or
// the configured line count is reached.
type Runner struct {
	sampler   *sampler.Sampler
	formatter format.Formatter
	interval  time.Duration
	count     int
	out       io.Writer
	logger    *slog.Logger
}

// New creates a runner writing status lines to out.
func New(s *sampler.Sampler, f format.Formatter, cfg *config.Config, out io.Writer, logger *slog.Logger) *Runner {
	return &Runner{
		sampler:   s,
		formatter: f,
		interval:  cfg.Interval,
		count:     cfg.Count,
		out:       out,
		logger:    logger,
	}
}

// Run executes the configured mode. In single-shot mode a source
// failure is returned to the caller; in repeating mode it only ends on
// context cancellation or after count lines.
func (r *Runner) Run(ctx context.Context) error {
	if r.interval <= 0 {
		return r.runSingleShot(ctx)
	}
	return r.runRepeating(ctx)
}

// runSingleShot performs exactly one sampling cycle and emits one line.
// The sampler takes its own paired snapshots for the rate metrics.
func (r *Runner) runSingleShot(ctx context.Context) error {
	derived, err := r.sampler.SampleOnce(ctx, r.interval)
	if err != nil {
		return err
	}
	return r.emit(derived)
}

// runRepeating takes a snapshot per tick and emits a line once a
// previous snapshot exists. The first tick only establishes the
// baseline and emits nothing. A failed probe skips the cycle and keeps
// the previous snapshot, so the line resumes on the next good tick.
// Only the single most recent snapshot is retained.
func (r *Runner) runRepeating(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	var previous *metrics.Snapshot
	emitted := 0

	for {
		current, err := r.sampler.Take()
		if err != nil {
			r.logger.Warn("Metric source unavailable, skipping cycle", "error", err)
		} else {
			if previous != nil {
				if err := r.emit(r.sampler.Derive(*previous, current)); err != nil {
					return err
				}
				emitted++
				if r.count > 0 && emitted >= r.count {
					return nil
				}
			}
			snapshot := current
			previous = &snapshot
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (r *Runner) emit(derived []metrics.DerivedMetric) error {
	if _, err := fmt.Fprintln(r.out, r.formatter.Line(derived)); err != nil {
		return fmt.Errorf("failed to write status line: %w", err)
	}
	return nil
}
