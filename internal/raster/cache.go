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

package raster

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// AnalysisKey content-addresses one Analyze call: same source bytes, same
// dimensions and same preset id always hash to the same key, so a server
// fronting many requests for the same source image under one preset
// across frames can skip re-running stages 1-5. Because estimateForeground
// weighs its center prior by the preset's CenterBias (spec.md §4.5/§6),
// Analyze's result depends on the preset too, so the key must as well —
// a cache keyed on image bytes alone would silently serve one preset's
// foreground mask to a request for another.
type AnalysisKey uint64

// NewAnalysisKey hashes the raw decoded RGB buffer, its dimensions and the
// preset id that will be passed to Analyze.
func NewAnalysisKey(rgb *RGB, presetID string) AnalysisKey {
	h := xxhash.New()
	var dims [8]byte
	binary.LittleEndian.PutUint32(dims[0:4], uint32(rgb.W))
	binary.LittleEndian.PutUint32(dims[4:8], uint32(rgb.H))
	h.Write(dims[:])
	h.Write(rgb.Pix)
	h.Write([]byte(presetID))
	return AnalysisKey(h.Sum64())
}

// AnalysisCache memoizes Analyze results behind an AnalysisKey. It is
// safe for concurrent use from the HTTP server's goroutine-per-request
// handlers.
type AnalysisCache struct {
	mu      sync.RWMutex
	entries map[AnalysisKey]*Analysis
}

// NewAnalysisCache returns an empty cache.
func NewAnalysisCache() *AnalysisCache {
	return &AnalysisCache{entries: make(map[AnalysisKey]*Analysis)}
}

// Get returns the cached Analysis for key, if present.
func (c *AnalysisCache) Get(key AnalysisKey) (*Analysis, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.entries[key]
	return a, ok
}

// Put stores an Analysis under key.
func (c *AnalysisCache) Put(key AnalysisKey, a *Analysis) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = a
}

// Len reports the number of cached entries.
func (c *AnalysisCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
