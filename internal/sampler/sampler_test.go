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

package sampler

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/statbar/statbar/internal/config"
	"github.com/statbar/statbar/pkg/metrics"
)

// fakeSource scripts successive readings per probe. Each call to a
// probe advances its own cursor; the last reading repeats.
type fakeSource struct {
	times    []time.Time
	rx, tx   []uint64
	busy     []float64
	total    []float64
	memUsed  uint64
	memTotal uint64
	netErr   error

	timeCalls, netCalls, cpuCalls int
}

func (f *fakeSource) Network() (uint64, uint64, error) {
	if f.netErr != nil {
		return 0, 0, f.netErr
	}
	i := f.netCalls
	if i >= len(f.rx) {
		i = len(f.rx) - 1
	}
	f.netCalls++
	return f.rx[i], f.tx[i], nil
}

func (f *fakeSource) CPU() (float64, float64, error) {
	i := f.cpuCalls
	if i >= len(f.busy) {
		i = len(f.busy) - 1
	}
	f.cpuCalls++
	return f.busy[i], f.total[i], nil
}

func (f *fakeSource) Memory() (uint64, uint64, error) {
	return f.memUsed, f.memTotal, nil
}

func (f *fakeSource) Now() time.Time {
	i := f.timeCalls
	if i >= len(f.times) {
		i = len(f.times) - 1
	}
	f.timeCalls++
	return f.times[i]
}

func scriptedTimes(n int, step time.Duration) []time.Time {
	base := time.Now()
	times := make([]time.Time, n)
	for i := range times {
		times[i] = base.Add(time.Duration(i) * step)
	}
	return times
}

func TestSamplerTake(t *testing.T) {
	src := &fakeSource{
		times:    scriptedTimes(1, time.Second),
		rx:       []uint64{1000},
		tx:       []uint64{500},
		busy:     []float64{50},
		total:    []float64{100},
		memUsed:  4096,
		memTotal: 8192,
	}

	s := New(src, config.Modes{Net: true, CPU: true, Mem: true})
	snap, err := s.Take()
	if err != nil {
		t.Fatalf("Take() error = %v", err)
	}

	if snap.RxBytes != 1000 || snap.TxBytes != 500 {
		t.Errorf("Take() network = (%d, %d), want (1000, 500)", snap.RxBytes, snap.TxBytes)
	}
	if snap.CPUBusy != 50 || snap.CPUTotal != 100 {
		t.Errorf("Take() cpu = (%v, %v), want (50, 100)", snap.CPUBusy, snap.CPUTotal)
	}
	if snap.MemUsed != 4096 || snap.MemTotal != 8192 {
		t.Errorf("Take() memory = (%d, %d), want (4096, 8192)", snap.MemUsed, snap.MemTotal)
	}
}

func TestSamplerTakeSkipsUnselectedProbes(t *testing.T) {
	src := &fakeSource{
		times:  scriptedTimes(1, time.Second),
		netErr: errors.New("must not be called"),
	}

	s := New(src, config.Modes{Mem: true})
	if _, err := s.Take(); err != nil {
		t.Fatalf("Take() error = %v, network probe should not run in mem mode", err)
	}
}

func TestSamplerDerive(t *testing.T) {
	base := time.Now()
	prev := metrics.Snapshot{
		Timestamp: base,
		RxBytes:   1000, TxBytes: 2000,
		CPUBusy: 50, CPUTotal: 100,
	}
	curr := metrics.Snapshot{
		Timestamp: base.Add(1 * time.Second),
		RxBytes:   2000, TxBytes: 2512,
		CPUBusy: 80, CPUTotal: 150,
		MemUsed: 512 * 1024 * 1024, MemTotal: 1024 * 1024 * 1024,
	}

	s := New(&fakeSource{}, config.Modes{Net: true, CPU: true, Mem: true})
	derived := s.Derive(prev, curr)

	if len(derived) != 4 {
		t.Fatalf("Derive() returned %d metrics, want 4", len(derived))
	}

	want := []struct {
		kind  metrics.Kind
		value float64
	}{
		{metrics.RateDown, 1000.0},
		{metrics.RateUp, 512.0},
		{metrics.CPUPercent, 60.0},
		{metrics.MemPercent, 50.0},
	}

	for i, w := range want {
		if derived[i].Kind != w.kind {
			t.Errorf("Derive()[%d].Kind = %v, want %v", i, derived[i].Kind, w.kind)
		}
		if math.Abs(derived[i].Value-w.value) > 0.00001 {
			t.Errorf("Derive()[%d].Value = %v, want %v", i, derived[i].Value, w.value)
		}
	}
}

func TestSamplerDeriveMemDetail(t *testing.T) {
	curr := metrics.Snapshot{
		Timestamp: time.Now(),
		MemUsed:   4 * 1024 * 1024 * 1024,
		MemTotal:  16 * 1024 * 1024 * 1024,
	}

	s := New(&fakeSource{}, config.Modes{Mem: true, MemDetail: true})
	derived := s.Derive(curr, curr)

	if len(derived) != 2 {
		t.Fatalf("Derive() returned %d metrics, want 2", len(derived))
	}
	if derived[0].Kind != metrics.MemUsedBytes || derived[1].Kind != metrics.MemTotalBytes {
		t.Errorf("Derive() kinds = (%v, %v), want (MemUsedBytes, MemTotalBytes)", derived[0].Kind, derived[1].Kind)
	}
	if derived[0].Value != float64(curr.MemUsed) || derived[1].Value != float64(curr.MemTotal) {
		t.Errorf("Derive() values = (%v, %v), want raw byte counts", derived[0].Value, derived[1].Value)
	}
}

func TestSamplerSampleOnce(t *testing.T) {
	src := &fakeSource{
		times: scriptedTimes(2, 2*time.Second),
		rx:    []uint64{1000, 3000},
		tx:    []uint64{500, 500},
	}

	s := New(src, config.Modes{Net: true})
	derived, err := s.SampleOnce(context.Background(), 1*time.Millisecond)
	if err != nil {
		t.Fatalf("SampleOnce() error = %v", err)
	}

	if len(derived) != 2 {
		t.Fatalf("SampleOnce() returned %d metrics, want 2", len(derived))
	}
	// Scripted timestamps are 2s apart regardless of the real delay.
	if math.Abs(derived[0].Value-1000.0) > 0.00001 {
		t.Errorf("SampleOnce() down rate = %v, want 1000", derived[0].Value)
	}
	if math.Abs(derived[1].Value-0.0) > 0.00001 {
		t.Errorf("SampleOnce() up rate = %v, want 0", derived[1].Value)
	}
	if src.netCalls != 2 {
		t.Errorf("SampleOnce() probed the network %d times, want 2", src.netCalls)
	}
}

func TestSamplerSampleOnceMemOnlySkipsDelay(t *testing.T) {
	src := &fakeSource{
		times:    scriptedTimes(1, time.Second),
		memUsed:  100,
		memTotal: 200,
	}

	s := New(src, config.Modes{Mem: true})

	start := time.Now()
	derived, err := s.SampleOnce(context.Background(), 5*time.Second)
	if err != nil {
		t.Fatalf("SampleOnce() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("SampleOnce() slept %v for a delta-free mode", elapsed)
	}
	if len(derived) != 1 || derived[0].Kind != metrics.MemPercent {
		t.Fatalf("SampleOnce() = %v, want single MemPercent", derived)
	}
	if math.Abs(derived[0].Value-50.0) > 0.00001 {
		t.Errorf("SampleOnce() mem percent = %v, want 50", derived[0].Value)
	}
}

func TestSamplerSampleOnceSourceError(t *testing.T) {
	src := &fakeSource{
		times:  scriptedTimes(1, time.Second),
		netErr: errors.New("interface enumeration failed"),
	}

	s := New(src, config.Modes{Net: true})
	if _, err := s.SampleOnce(context.Background(), 1*time.Millisecond); err == nil {
		t.Error("SampleOnce() error = nil, want source error")
	}
}

func TestSamplerSampleOnceCancelled(t *testing.T) {
	src := &fakeSource{
		times: scriptedTimes(2, time.Second),
		rx:    []uint64{0, 0},
		tx:    []uint64{0, 0},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(src, config.Modes{Net: true})
	if _, err := s.SampleOnce(ctx, 10*time.Second); !errors.Is(err, context.Canceled) {
		t.Errorf("SampleOnce() error = %v, want context.Canceled", err)
	}
}
