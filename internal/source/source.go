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

// Package source reads raw host counters through gopsutil. It is the
// only package that touches platform APIs; everything above it works
// on plain values.
package source

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

// Dependency injection points for testing
var (
	netIOCounters = net.IOCounters
	cpuTimes      = cpu.Times
	virtualMemory = mem.VirtualMemory
)

// Loopback and virtual interfaces are skipped by default so they do
// not inflate host throughput.
var defaultExcludePrefixes = []string{"lo", "docker", "bridge", "veth"}

// UnavailableError reports that a probe of the underlying platform API
// failed and no snapshot can be produced this cycle.
type UnavailableError struct {
	Probe string // "network", "cpu" or "memory"
	Err   error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("metric source unavailable: %s: %v", e.Probe, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// System is the gopsutil-backed metric source.
type System struct {
	includeInterfaces []string // Interfaces to monitor (empty = all)
	excludeInterfaces []string // Interfaces to exclude
}

// NewSystem creates a metric source reading live host counters.
// includeInterfaces: interface names to monitor (empty = all physical)
// excludeInterfaces: interface names to exclude
func NewSystem(includeInterfaces, excludeInterfaces []string) *System {
	return &System{
		includeInterfaces: includeInterfaces,
		excludeInterfaces: excludeInterfaces,
	}
}

// Network returns cumulative received/sent byte counters summed across
// the monitored interfaces.
func (s *System) Network() (rx, tx uint64, err error) {
	counters, err := netIOCounters(true)
	if err != nil {
		return 0, 0, &UnavailableError{Probe: "network", Err: err}
	}

	for _, counter := range counters {
		if !s.shouldMonitor(counter.Name) {
			continue
		}
		rx += counter.BytesRecv
		tx += counter.BytesSent
	}

	return rx, tx, nil
}

// CPU returns the cumulative busy and total tick accumulators,
// aggregated across all CPUs.
func (s *System) CPU() (busy, total float64, err error) {
	times, err := cpuTimes(false)
	if err != nil {
		return 0, 0, &UnavailableError{Probe: "cpu", Err: err}
	}
	if len(times) == 0 {
		return 0, 0, &UnavailableError{Probe: "cpu", Err: errors.New("no CPU time stats available")}
	}

	t := times[0]
	total = t.User + t.System + t.Idle + t.Iowait + t.Irq + t.Softirq + t.Steal
	busy = total - t.Idle - t.Iowait

	return busy, total, nil
}

// Memory returns instantaneous used and total physical memory in bytes.
func (s *System) Memory() (used, total uint64, err error) {
	vmStat, err := virtualMemory()
	if err != nil {
		return 0, 0, &UnavailableError{Probe: "memory", Err: err}
	}
	return vmStat.Used, vmStat.Total, nil
}

// Now returns the current time; time.Time carries the monotonic clock
// reading, so differences between calls are strictly non-decreasing.
func (s *System) Now() time.Time {
	return time.Now()
}

// shouldMonitor checks if an interface counts toward host throughput.
// Exclude filters take priority; an explicit include list overrides
// the default virtual-interface skip.
func (s *System) shouldMonitor(interfaceName string) bool {
	for _, excluded := range s.excludeInterfaces {
		if excluded == interfaceName {
			return false
		}
	}

	if len(s.includeInterfaces) > 0 {
		for _, included := range s.includeInterfaces {
			if included == interfaceName {
				return true
			}
		}
		return false
	}

	for _, prefix := range defaultExcludePrefixes {
		if strings.HasPrefix(interfaceName, prefix) {
			return false
		}
	}

	return true
}
