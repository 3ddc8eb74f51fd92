// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package workpool sizes and runs the bounded goroutine pool that the
// HTTP server uses to run multiple transforms concurrently without
// outrunning available memory (spec.md §5).
package workpool

import (
	"runtime"

	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
)

// bytesPerTransform is a conservative estimate of the peak float32
// working set for one transform at the MaxEdge resolution: roughly a
// dozen full-size Planes alive at the ink-map/auto-tune peak plus the
// input RGB buffer.
const bytesPerTransform = (12*4 + 3) * 1024 * 1024

// Size picks a worker count bounded by both CPU threads and available
// memory, mirroring the teacher's batch-sizing loop: start from
// GOMAXPROCS, then shrink until the concurrent working set fits in
// physical memory.
func Size() int {
	threads := runtime.GOMAXPROCS(0)
	total := memory.TotalMemory()
	if total == 0 {
		return threads
	}
	byMemory := int(total / bytesPerTransform)
	if byMemory < 1 {
		byMemory = 1
	}
	if byMemory < threads {
		return byMemory
	}
	return threads
}

// SupportsAVX2 reports whether the running CPU has the AVX2 feature, for
// diagnostic reporting parity with the teacher's SIMD-gated code paths.
// The engine itself is scalar; this is informational only.
func SupportsAVX2() bool {
	return cpuid.CPU.AVX2()
}

// Pool runs a bounded number of concurrent jobs, capped at Size().
type Pool struct {
	sem chan struct{}
}

// New returns a Pool sized by Size().
func New() *Pool {
	return &Pool{sem: make(chan struct{}, Size())}
}

// NewSized returns a Pool with an explicit worker cap, for tests and for
// callers that want to override the automatic sizing.
func NewSized(n int) *Pool {
	if n < 1 {
		n = 1
	}
	return &Pool{sem: make(chan struct{}, n)}
}

// Go runs fn once a slot is free, blocking the caller until then. Callers
// coordinate completion themselves, e.g. via a sync.WaitGroup, matching
// the teacher's semaphore-channel pattern.
func (p *Pool) Go(fn func()) {
	p.sem <- struct{}{}
	go func() {
		defer func() { <-p.sem }()
		fn()
	}()
}

// Run blocks until a slot is free, then runs fn in the calling goroutine
// and releases the slot before returning. Unlike Go, it does not spawn a
// new goroutine: it's for callers that already have their own goroutine
// (e.g. one per HTTP request) and just need to cap how many run their
// CPU-heavy section at once.
func (p *Pool) Run(fn func()) {
	p.sem <- struct{}{}
	defer func() { <-p.sem }()
	fn()
}

// Cap reports the pool's concurrency limit.
func (p *Pool) Cap() int {
	return cap(p.sem)
}
